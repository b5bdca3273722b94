package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/format"
	"backoffice/internal/gateway"
	"backoffice/internal/logger"
	"backoffice/internal/model"
	"backoffice/internal/query"
)

// --- DTOs ---

type TransactionDetail struct {
	Transaction  model.Transaction `json:"transaction"`
	AmountLabel  string            `json:"amount_label"`
	StatusLabel  string            `json:"status_label"`
	PayTypeLabel string            `json:"pay_type_label"`
	Merchant     *model.Merchant   `json:"merchant,omitempty"`
}

// --- Interface ---

type TransactionService interface {
	List(ctx context.Context, q query.Query) (query.PageResult[model.Transaction], error)
	Detail(ctx context.Context, paymentCode string) (TransactionDetail, error)
}

// --- Implementation ---

type transactionService struct {
	payments  PaymentSource
	merchants MerchantSource
	engine    *query.Engine[model.Transaction]
}

func NewTransactionService(payments PaymentSource, merchants MerchantSource, loc *time.Location) TransactionService {
	return &transactionService{
		payments:  payments,
		merchants: merchants,
		engine:    query.NewTransactionEngine(loc),
	}
}

func (s *transactionService) List(ctx context.Context, q query.Query) (query.PageResult[model.Transaction], error) {
	payments, err := s.payments.ListPayments(ctx)
	if err != nil {
		return query.PageResult[model.Transaction]{}, fmt.Errorf("failed to list payments: %w", err)
	}
	return s.engine.Apply(payments, q), nil
}

func (s *transactionService) Detail(ctx context.Context, paymentCode string) (TransactionDetail, error) {
	payments, err := s.payments.ListPayments(ctx)
	if err != nil {
		return TransactionDetail{}, fmt.Errorf("failed to list payments: %w", err)
	}

	var found *model.Transaction
	for i := range payments {
		if payments[i].PaymentCode == paymentCode {
			found = &payments[i]
			break
		}
	}
	if found == nil {
		return TransactionDetail{}, fmt.Errorf("payment %s: %w", paymentCode, ErrTransactionNotFound)
	}

	detail := TransactionDetail{
		Transaction:  *found,
		AmountLabel:  format.FormatAmount(format.ParseAmount(string(found.Amount)), found.Currency),
		StatusLabel:  format.StatusLabel(found.Status),
		PayTypeLabel: format.PayTypeLabel(found.PayType),
	}

	// the merchant brief is optional, the detail still renders without it
	merchant, err := s.merchants.MerchantDetail(ctx, found.MchtCode)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).
			Str("payment_code", paymentCode).
			Str("mcht_code", found.MchtCode).
			Bool("not_found", errors.Is(err, gateway.ErrNotFound)).
			Msg("Merchant brief unavailable for transaction detail")
		return detail, nil
	}
	brief := merchant.Brief()
	detail.Merchant = &brief
	return detail, nil
}
