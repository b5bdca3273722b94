package service

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/gateway"
	"backoffice/internal/model"
	"backoffice/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchantService_List(t *testing.T) {
	gw := &fakeGateway{merchants: []model.Merchant{
		{MchtCode: "M-2", MchtName: "Beta", Status: "INACTIVE"},
		{MchtCode: "M-1", MchtName: "Alpha", Status: "ACTIVE"},
	}}
	svc := NewMerchantService(gw, gw, time.UTC)

	res, err := svc.List(context.Background(), query.Query{Page: 1, PageSize: 20})

	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "M-1", res.Items[0].MchtCode)
	assert.Equal(t, map[string]int{"ACTIVE": 1, "INACTIVE": 1}, res.StatusCounts)
}

func TestMerchantService_Detail(t *testing.T) {
	gw := &fakeGateway{
		payments: samplePayments(),
		details:  map[string]model.MerchantDetail{"M-1": {MchtCode: "M-1", MchtName: "Cafe", Status: "ACTIVE"}},
	}
	svc := NewMerchantService(gw, gw, time.UTC)

	res, err := svc.Detail(context.Background(), "M-1")

	require.NoError(t, err)
	assert.Equal(t, "Cafe", res.Merchant.MchtName)
	assert.Equal(t, "운영 중", res.StatusLabel)

	stats := res.Statistics
	assert.Equal(t, "7000", stats.TotalAmount.String())
	assert.Equal(t, "7,000 원", stats.TotalAmountLabel)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, map[string]int{"SUCCESS": 2, "FAILED": 1, "CANCELLED": 0, "PENDING": 0}, stats.StatusCounts)

	require.Len(t, stats.StatusDistribution, 2)
	assert.Equal(t, "SUCCESS", stats.StatusDistribution[0].Key)
	assert.Equal(t, "FAILED", stats.StatusDistribution[1].Key)

	require.Len(t, stats.DailySuccessAmount, 2)
	assert.Equal(t, "2025-11-01", stats.DailySuccessAmount[0].DateKey)
	assert.Equal(t, "2025-11-03", stats.DailySuccessAmount[1].DateKey)
	assert.Equal(t, "4000", stats.DailySuccessAmount[1].TotalAmount.String())

	require.Len(t, stats.RecentPayments, 3)
	assert.Equal(t, "PAY-4", stats.RecentPayments[0].PaymentCode)
}

func TestMerchantService_DetailNotFound(t *testing.T) {
	gw := &fakeGateway{payments: samplePayments()}
	svc := NewMerchantService(gw, gw, time.UTC)

	_, err := svc.Detail(context.Background(), "M-404")

	assert.ErrorIs(t, err, ErrMerchantNotFound)
}

func TestMerchantService_DetailFailsTogether(t *testing.T) {
	gw := &fakeGateway{
		paymentsErr: gateway.ErrTransport,
		details:     map[string]model.MerchantDetail{"M-1": {MchtCode: "M-1"}},
	}
	svc := NewMerchantService(gw, gw, time.UTC)

	_, err := svc.Detail(context.Background(), "M-1")

	assert.ErrorIs(t, err, gateway.ErrTransport)
	assert.NotErrorIs(t, err, ErrMerchantNotFound)
}
