package query

import (
	"cmp"
	"strings"
	"time"

	"backoffice/internal/format"
	"backoffice/internal/model"

	"github.com/shopspring/decimal"
)

// Default page sizes of the two list views
const (
	TransactionPageSize = 10
	MerchantPageSize    = 20
)

// DefaultTransactionSort is the transaction view's initial ordering, newest first.
// Any value ParseSortKey does not know, such as "none", keeps input order.
const DefaultTransactionSort = SortPaymentAt

// TransactionPageSizes are the page sizes the transaction view offers
var TransactionPageSizes = []int{10, 20, 30}

// TransactionSpec reads payments. Zone-less timestamps are interpreted in loc.
func TransactionSpec(loc *time.Location) Spec[model.Transaction] {
	return Spec[model.Transaction]{
		Status:    func(t model.Transaction) string { return t.Status },
		Secondary: func(t model.Transaction) string { return t.PayType },
		SearchFields: []func(model.Transaction) string{
			func(t model.Transaction) string { return t.PaymentCode },
			func(t model.Transaction) string { return t.MchtCode },
		},
		Aliases: map[string][]string{
			model.PaymentStatusFailed: {model.PaymentStatusFailed, model.PaymentStatusFail},
		},
		CountKeys: []string{
			model.PaymentStatusSuccess,
			model.PaymentStatusFailed,
			model.PaymentStatusCancelled,
			model.PaymentStatusPending,
		},
		SortKeys: map[SortKey]func(a, b model.Transaction) int{
			SortAmount: func(a, b model.Transaction) int {
				return format.ParseAmount(string(a.Amount)).Cmp(format.ParseAmount(string(b.Amount)))
			},
			SortPaymentAt: func(a, b model.Transaction) int {
				return cmp.Compare(format.EpochMillis(a.PaymentAt, loc), format.EpochMillis(b.PaymentAt, loc))
			},
		},
		Amount: func(t model.Transaction) decimal.Decimal { return format.ParseAmount(string(t.Amount)) },
	}
}

// MerchantSpec reads merchants. The merchant list has no sort toggle and is
// always ordered by merchant code.
func MerchantSpec() Spec[model.Merchant] {
	return Spec[model.Merchant]{
		Status: func(m model.Merchant) string { return m.Status },
		SearchFields: []func(model.Merchant) string{
			func(m model.Merchant) string { return m.MchtCode },
			func(m model.Merchant) string { return m.MchtName },
		},
		CountKeys: []string{model.MerchantStatusActive, model.MerchantStatusInactive},
		FixedOrder: func(a, b model.Merchant) int {
			return strings.Compare(a.MchtCode, b.MchtCode)
		},
	}
}

// NewTransactionEngine is the engine behind the transaction view
func NewTransactionEngine(loc *time.Location) *Engine[model.Transaction] {
	return NewEngine(TransactionSpec(loc))
}

// NewMerchantEngine is the engine behind the merchant view
func NewMerchantEngine() *Engine[model.Merchant] {
	return NewEngine(MerchantSpec())
}
