package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/aggregate"
	"backoffice/internal/format"
	"backoffice/internal/gateway"
	"backoffice/internal/model"
	"backoffice/internal/query"
	"backoffice/pkg/fanout"
)

// RecentMerchantPayments is how many payments the merchant detail lists.
const RecentMerchantPayments = 10

// paymentStatusOrder is the slice order of every status chart.
var paymentStatusOrder = []string{
	model.PaymentStatusSuccess,
	model.PaymentStatusFailed,
	model.PaymentStatusCancelled,
	model.PaymentStatusPending,
}

// --- DTOs ---

type MerchantDetailResponse struct {
	Merchant    model.MerchantDetail     `json:"merchant"`
	StatusLabel string                   `json:"status_label"`
	Statistics  model.MerchantStatistics `json:"statistics"`
}

// --- Interface ---

type MerchantService interface {
	List(ctx context.Context, q query.Query) (query.PageResult[model.Merchant], error)
	Detail(ctx context.Context, mchtCode string) (MerchantDetailResponse, error)
}

// --- Implementation ---

type merchantService struct {
	merchants MerchantSource
	payments  PaymentSource
	engine    *query.Engine[model.Merchant]
	txEngine  *query.Engine[model.Transaction]
	loc       *time.Location
}

func NewMerchantService(merchants MerchantSource, payments PaymentSource, loc *time.Location) MerchantService {
	return &merchantService{
		merchants: merchants,
		payments:  payments,
		engine:    query.NewMerchantEngine(),
		txEngine:  query.NewTransactionEngine(loc),
		loc:       loc,
	}
}

func (s *merchantService) List(ctx context.Context, q query.Query) (query.PageResult[model.Merchant], error) {
	merchants, err := s.merchants.ListMerchants(ctx)
	if err != nil {
		return query.PageResult[model.Merchant]{}, fmt.Errorf("failed to list merchants: %w", err)
	}
	return s.engine.Apply(merchants, q), nil
}

func (s *merchantService) Detail(ctx context.Context, mchtCode string) (MerchantDetailResponse, error) {
	var detail model.MerchantDetail
	var payments []model.Transaction

	err := fanout.Join(ctx,
		fanout.Fetch(&detail, func(ctx context.Context) (model.MerchantDetail, error) {
			return s.merchants.MerchantDetail(ctx, mchtCode)
		}),
		fanout.Fetch(&payments, s.payments.ListPayments),
	)
	if errors.Is(err, gateway.ErrNotFound) {
		return MerchantDetailResponse{}, fmt.Errorf("merchant %s: %w", mchtCode, ErrMerchantNotFound)
	}
	if err != nil {
		return MerchantDetailResponse{}, fmt.Errorf("failed to load merchant detail: %w", err)
	}

	own := make([]model.Transaction, 0)
	for _, p := range payments {
		if p.MchtCode == mchtCode {
			own = append(own, p)
		}
	}

	return MerchantDetailResponse{
		Merchant:    detail,
		StatusLabel: format.MerchantStatusLabel(detail.Status),
		Statistics:  s.statistics(own),
	}, nil
}

func (s *merchantService) statistics(payments []model.Transaction) model.MerchantStatistics {
	counts := make(map[string]int, len(paymentStatusOrder))
	for _, status := range paymentStatusOrder {
		counts[status] = 0
	}
	for _, p := range payments {
		counts[s.txEngine.LogicalStatus(p.Status)]++
	}

	total := aggregate.Sum(payments)
	return model.MerchantStatistics{
		TotalAmount:        total,
		TotalAmountLabel:   format.FormatAmount(total, "KRW"),
		TotalCount:         len(payments),
		StatusCounts:       counts,
		StatusDistribution: aggregate.Distribution(payments, s.logicalStatus, paymentStatusOrder, true),
		DailySuccessAmount: aggregate.BucketByDay(payments, isSuccess, s.loc),
		RecentPayments:     aggregate.Recent(payments, RecentMerchantPayments, s.loc),
	}
}

func (s *merchantService) logicalStatus(t model.Transaction) string {
	return s.txEngine.LogicalStatus(t.Status)
}

func isSuccess(t model.Transaction) bool {
	return t.Status == model.PaymentStatusSuccess
}
