package query

import (
	"testing"
	"time"

	"backoffice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(code, mcht, amount, payType, status, at string) model.Transaction {
	return model.Transaction{
		PaymentCode: code,
		MchtCode:    mcht,
		Amount:      model.Amount(amount),
		Currency:    "KRW",
		PayType:     payType,
		Status:      status,
		PaymentAt:   at,
	}
}

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		tx("PAY-001", "MCHT-A", "5000", "ONLINE", "SUCCESS", "2025-11-01T10:00:00Z"),
		tx("PAY-002", "MCHT-B", "1200", "VACT", "FAIL", "2025-11-03T09:00:00Z"),
		tx("PAY-003", "MCHT-A", "9000", "ONLINE", "FAILED", "2025-11-02T12:00:00Z"),
		tx("PAY-004", "MCHT-C", "1200", "BILLING", "CANCELLED", "2025-11-04T08:00:00Z"),
		tx("PAY-005", "mcht-b", "abc", "OFFLINE", "PENDING", "garbage"),
	}
}

func codes(items []model.Transaction) []string {
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.PaymentCode)
	}
	return out
}

func TestApply_NoFiltersKeepsInputOrder(t *testing.T) {
	engine := NewTransactionEngine(time.UTC)
	input := sampleTransactions()

	res := engine.Apply(input, Query{Status: All, Secondary: All, Page: 1, PageSize: 10})

	assert.Equal(t, []string{"PAY-001", "PAY-002", "PAY-003", "PAY-004", "PAY-005"}, codes(res.Items))
	assert.Equal(t, 5, res.TotalItems)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, "PAY-001", input[0].PaymentCode, "input must not be reordered")
}

func TestApply_FailedMatchesBothSpellings(t *testing.T) {
	engine := NewTransactionEngine(time.UTC)

	res := engine.Apply(sampleTransactions(), Query{Status: "FAILED", Page: 1, PageSize: 10})

	assert.Equal(t, []string{"PAY-002", "PAY-003"}, codes(res.Items))
	assert.Equal(t, 2, res.StatusCounts["FAILED"])
	_, hasRaw := res.StatusCounts["FAIL"]
	assert.False(t, hasRaw)
}

func TestApply_StatusCountsCoverFilteredSet(t *testing.T) {
	engine := NewTransactionEngine(time.UTC)

	res := engine.Apply(sampleTransactions(), Query{Page: 1, PageSize: 2})

	require.Len(t, res.Items, 2)
	assert.Equal(t, map[string]int{"SUCCESS": 1, "FAILED": 2, "CANCELLED": 1, "PENDING": 1}, res.StatusCounts)
	assert.Equal(t, "16400", res.TotalAmount.String())
}

func TestApply_SecondaryFilter(t *testing.T) {
	engine := NewTransactionEngine(time.UTC)

	res := engine.Apply(sampleTransactions(), Query{Secondary: "ONLINE", Page: 1, PageSize: 10})

	assert.Equal(t, []string{"PAY-001", "PAY-003"}, codes(res.Items))
	assert.Equal(t, 0, res.StatusCounts["CANCELLED"])
}

func TestApply_SearchIsTrimmedAndCaseInsensitive(t *testing.T) {
	engine := NewTransactionEngine(time.UTC)

	res := engine.Apply(sampleTransactions(), Query{Search: "  MCHT-b ", Page: 1, PageSize: 10})
	assert.Equal(t, []string{"PAY-002", "PAY-005"}, codes(res.Items))

	res = engine.Apply(sampleTransactions(), Query{Search: "pay-004", Page: 1, PageSize: 10})
	assert.Equal(t, []string{"PAY-004"}, codes(res.Items))

	res = engine.Apply(sampleTransactions(), Query{Search: "   ", Page: 1, PageSize: 10})
	assert.Equal(t, 5, res.TotalItems)
}

func TestApply_SortByAmount(t *testing.T) {
	engine := NewTransactionEngine(time.UTC)

	desc := engine.Apply(sampleTransactions(), Query{SortKey: SortAmount, SortOrder: Desc, Page: 1, PageSize: 10})
	assert.Equal(t, []string{"PAY-003", "PAY-001", "PAY-002", "PAY-004", "PAY-005"}, codes(desc.Items))

	asc := engine.Apply(sampleTransactions(), Query{SortKey: SortAmount, SortOrder: Asc, Page: 1, PageSize: 10})
	assert.Equal(t, []string{"PAY-005", "PAY-002", "PAY-004", "PAY-001", "PAY-003"}, codes(asc.Items))
}

func TestApply_SortByPaymentAtPutsUnparseableFirstAscending(t *testing.T) {
	engine := NewTransactionEngine(time.UTC)

	asc := engine.Apply(sampleTransactions(), Query{SortKey: SortPaymentAt, SortOrder: Asc, Page: 1, PageSize: 10})
	assert.Equal(t, []string{"PAY-005", "PAY-001", "PAY-003", "PAY-002", "PAY-004"}, codes(asc.Items))

	desc := engine.Apply(sampleTransactions(), Query{SortKey: SortPaymentAt, SortOrder: Desc, Page: 1, PageSize: 10})
	assert.Equal(t, []string{"PAY-004", "PAY-002", "PAY-003", "PAY-001", "PAY-005"}, codes(desc.Items))
}

func TestApply_Pagination(t *testing.T) {
	engine := NewTransactionEngine(time.UTC)

	res := engine.Apply(sampleTransactions(), Query{Page: 2, PageSize: 2})
	assert.Equal(t, []string{"PAY-003", "PAY-004"}, codes(res.Items))
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 2, res.CurrentPage)

	last := engine.Apply(sampleTransactions(), Query{Page: 3, PageSize: 2})
	assert.Equal(t, []string{"PAY-005"}, codes(last.Items))
}

func TestApply_OutOfRangePage(t *testing.T) {
	engine := NewTransactionEngine(time.UTC)

	res := engine.Apply(sampleTransactions(), Query{Page: 9, PageSize: 2})

	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Equal(t, 5, res.TotalItems)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 3, res.CurrentPage)
}

func TestApply_EmptyInput(t *testing.T) {
	engine := NewTransactionEngine(time.UTC)

	res := engine.Apply(nil, Query{Page: 1, PageSize: 10})

	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.TotalItems)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, 0, res.StatusCounts["SUCCESS"])
}

func TestApply_DefaultsInvalidPaging(t *testing.T) {
	engine := NewTransactionEngine(time.UTC)

	res := engine.Apply(sampleTransactions(), Query{Page: 0, PageSize: 0})

	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, 20, res.PageSize)
	assert.Len(t, res.Items, 5)
}

func TestApply_IsIdempotent(t *testing.T) {
	engine := NewTransactionEngine(time.UTC)
	input := sampleTransactions()
	before := sampleTransactions()
	q := Query{
		Status:    "FAILED",
		Secondary: All,
		Search:    "pay",
		SortKey:   SortPaymentAt,
		SortOrder: Desc,
		Page:      1,
		PageSize:  1,
	}

	first := engine.Apply(input, q)
	second := engine.Apply(input, q)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"PAY-002"}, codes(first.Items))
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, before, input)
}

func TestApply_MerchantsAlwaysSortedByCode(t *testing.T) {
	engine := NewMerchantEngine()
	merchants := []model.Merchant{
		{MchtCode: "M-03", MchtName: "Cafe Blue", Status: "ACTIVE"},
		{MchtCode: "M-01", MchtName: "Book Store", Status: "INACTIVE"},
		{MchtCode: "M-02", MchtName: "blue Mart", Status: "ACTIVE"},
	}

	res := engine.Apply(merchants, Query{SortKey: SortAmount, SortOrder: Desc, Page: 1, PageSize: 20})
	require.Len(t, res.Items, 3)
	assert.Equal(t, "M-01", res.Items[0].MchtCode)
	assert.Equal(t, "M-02", res.Items[1].MchtCode)
	assert.Equal(t, "M-03", res.Items[2].MchtCode)
	assert.Equal(t, map[string]int{"ACTIVE": 2, "INACTIVE": 1}, res.StatusCounts)

	blue := engine.Apply(merchants, Query{Status: "ACTIVE", Search: "BLUE", Page: 1, PageSize: 20})
	require.Len(t, blue.Items, 2)
	assert.Equal(t, "M-02", blue.Items[0].MchtCode)
	assert.True(t, blue.TotalAmount.IsZero())
}

func TestParseSortKeyAndOrder(t *testing.T) {
	assert.Equal(t, SortAmount, ParseSortKey("amount"))
	assert.Equal(t, SortPaymentAt, ParseSortKey("paymentAt"))
	assert.Equal(t, SortNone, ParseSortKey("mchtName"))
	assert.Equal(t, SortNone, ParseSortKey("none"))
	assert.Equal(t, Asc, ParseSortOrder("ASC"))
	assert.Equal(t, Desc, ParseSortOrder(""))
}
