package service

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/aggregate"
	"backoffice/internal/format"
	"backoffice/internal/model"
	"backoffice/internal/query"
	"backoffice/pkg/fanout"
)

// RecentDashboardTransactions is how many payments the dashboard lists.
const RecentDashboardTransactions = 5

// --- Interface ---

type DashboardService interface {
	Overview(ctx context.Context, rng aggregate.Range) (model.DashboardOverview, error)
}

// --- Implementation ---

type dashboardService struct {
	payments  PaymentSource
	merchants MerchantSource
	txEngine  *query.Engine[model.Transaction]
	loc       *time.Location
	now       func() time.Time
}

func NewDashboardService(payments PaymentSource, merchants MerchantSource, loc *time.Location) DashboardService {
	return newDashboardService(payments, merchants, loc, time.Now)
}

func newDashboardService(payments PaymentSource, merchants MerchantSource, loc *time.Location, now func() time.Time) *dashboardService {
	return &dashboardService{
		payments:  payments,
		merchants: merchants,
		txEngine:  query.NewTransactionEngine(loc),
		loc:       loc,
		now:       now,
	}
}

func (s *dashboardService) Overview(ctx context.Context, rng aggregate.Range) (model.DashboardOverview, error) {
	var payments []model.Transaction
	var merchants []model.Merchant

	err := fanout.Join(ctx,
		fanout.Fetch(&payments, s.payments.ListPayments),
		fanout.Fetch(&merchants, s.merchants.ListMerchants),
	)
	if err != nil {
		return model.DashboardOverview{}, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	windowed := aggregate.Window(payments, rng, s.now(), s.loc)
	daily := aggregate.BucketByDay(windowed, nil, s.loc)
	total := aggregate.Sum(windowed)

	return model.DashboardOverview{
		Range:            string(rng),
		TotalAmount:      total,
		TotalAmountLabel: format.FormatAmount(total, "KRW"),
		TotalCount:       len(windowed),
		MerchantCount:    len(merchants),
		StatusDistribution: aggregate.Distribution(windowed, func(t model.Transaction) string {
			return s.txEngine.LogicalStatus(t.Status)
		}, paymentStatusOrder, false),
		DailyAmounts:       daily,
		DailyCounts:        daily,
		AmountTrend:        aggregate.Trend(aggregate.Amounts(daily)),
		CountTrend:         aggregate.Trend(aggregate.Counts(daily)),
		RecentTransactions: aggregate.Recent(windowed, RecentDashboardTransactions, s.loc),
	}, nil
}
