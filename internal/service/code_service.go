package service

import (
	"context"
	"fmt"

	"backoffice/internal/model"
	"backoffice/pkg/fanout"
)

type CodeService interface {
	All(ctx context.Context) (model.CodeTables, error)
}

type codeService struct {
	codes CodeSource
}

func NewCodeService(codes CodeSource) CodeService {
	return &codeService{codes: codes}
}

// All loads the three tables together; one failure fails the whole view.
func (s *codeService) All(ctx context.Context) (model.CodeTables, error) {
	var tables model.CodeTables
	err := fanout.Join(ctx,
		fanout.Fetch(&tables.PaymentStatus, s.codes.PaymentStatusCodes),
		fanout.Fetch(&tables.PaymentType, s.codes.PaymentTypeCodes),
		fanout.Fetch(&tables.MerchantStatus, s.codes.MerchantStatusCodes),
	)
	if err != nil {
		return model.CodeTables{}, fmt.Errorf("failed to load common codes: %w", err)
	}
	return tables, nil
}
