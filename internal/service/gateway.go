package service

import (
	"context"
	"errors"

	"backoffice/internal/gateway"
	"backoffice/internal/model"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrMerchantNotFound    = errors.New("merchant not found")
	ErrInvalidForm         = errors.New("invalid merchant form")
)

// PaymentSource lists payments.
type PaymentSource interface {
	ListPayments(ctx context.Context) ([]model.Transaction, error)
}

// MerchantSource lists and looks up merchants.
type MerchantSource interface {
	ListMerchants(ctx context.Context) ([]model.Merchant, error)
	MerchantDetail(ctx context.Context, mchtCode string) (model.MerchantDetail, error)
}

// CodeSource serves the common code tables.
type CodeSource interface {
	PaymentStatusCodes(ctx context.Context) ([]model.CodeItem, error)
	PaymentTypeCodes(ctx context.Context) ([]model.CodeItem, error)
	MerchantStatusCodes(ctx context.Context) ([]model.CodeItem, error)
}

// HealthProber probes the upstream health endpoint.
type HealthProber interface {
	Ping(ctx context.Context) (gateway.PingResult, error)
}
