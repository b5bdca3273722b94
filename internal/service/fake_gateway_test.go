package service

import (
	"context"
	"sync/atomic"

	"backoffice/internal/gateway"
	"backoffice/internal/model"
)

type fakeGateway struct {
	payments    []model.Transaction
	merchants   []model.Merchant
	details     map[string]model.MerchantDetail
	codes       map[string][]model.CodeItem
	ping        gateway.PingResult
	paymentsErr error
	merchantErr error
	detailErr   error
	codesErr    error
	pingErr     error

	paymentCalls atomic.Int32
}

var (
	_ PaymentSource  = (*fakeGateway)(nil)
	_ MerchantSource = (*fakeGateway)(nil)
	_ CodeSource     = (*fakeGateway)(nil)
	_ HealthProber   = (*fakeGateway)(nil)
)

func (f *fakeGateway) ListPayments(ctx context.Context) ([]model.Transaction, error) {
	f.paymentCalls.Add(1)
	if f.paymentsErr != nil {
		return nil, f.paymentsErr
	}
	return f.payments, nil
}

func (f *fakeGateway) ListMerchants(ctx context.Context) ([]model.Merchant, error) {
	if f.merchantErr != nil {
		return nil, f.merchantErr
	}
	return f.merchants, nil
}

func (f *fakeGateway) MerchantDetail(ctx context.Context, mchtCode string) (model.MerchantDetail, error) {
	if f.detailErr != nil {
		return model.MerchantDetail{}, f.detailErr
	}
	d, ok := f.details[mchtCode]
	if !ok {
		return model.MerchantDetail{}, gateway.ErrNotFound
	}
	return d, nil
}

func (f *fakeGateway) PaymentStatusCodes(ctx context.Context) ([]model.CodeItem, error) {
	return f.codeTable("status")
}

func (f *fakeGateway) PaymentTypeCodes(ctx context.Context) ([]model.CodeItem, error) {
	return f.codeTable("type")
}

func (f *fakeGateway) MerchantStatusCodes(ctx context.Context) ([]model.CodeItem, error) {
	return f.codeTable("mcht")
}

func (f *fakeGateway) codeTable(name string) ([]model.CodeItem, error) {
	if f.codesErr != nil && name == "type" {
		return nil, f.codesErr
	}
	return f.codes[name], nil
}

func (f *fakeGateway) Ping(ctx context.Context) (gateway.PingResult, error) {
	return f.ping, f.pingErr
}

func tx(code, mcht, amount, status, at string) model.Transaction {
	return model.Transaction{
		PaymentCode: code,
		MchtCode:    mcht,
		Amount:      model.Amount(amount),
		Currency:    "KRW",
		PayType:     model.PayTypeOnline,
		Status:      status,
		PaymentAt:   at,
	}
}

func samplePayments() []model.Transaction {
	return []model.Transaction{
		tx("PAY-1", "M-1", "1000", "SUCCESS", "2025-11-01T10:00:00Z"),
		tx("PAY-2", "M-1", "2000", "FAIL", "2025-11-02T10:00:00Z"),
		tx("PAY-3", "M-2", "3000", "SUCCESS", "2025-11-03T10:00:00Z"),
		tx("PAY-4", "M-1", "4000", "SUCCESS", "2025-11-03T11:00:00Z"),
		tx("PAY-5", "M-3", "500", "PENDING", "2025-11-09T10:00:00Z"),
	}
}
