package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"backoffice/internal/model"

	"github.com/google/uuid"
)

const (
	FormModeCreate = "create"
	FormModeEdit   = "edit"
)

// --- DTOs ---

type MerchantDraft struct {
	DraftID uuid.UUID          `json:"draft_id"`
	Mode    string             `json:"mode"`
	Form    model.MerchantForm `json:"form"`
}

type MerchantFormResult struct {
	DraftID     uuid.UUID          `json:"draft_id"`
	Mode        string             `json:"mode"`
	Form        model.MerchantForm `json:"form"`
	Persisted   bool               `json:"persisted"`
	Message     string             `json:"message"`
	SubmittedAt time.Time          `json:"submitted_at"`
}

// --- Interface ---

// MerchantFormService backs the mock create and edit screens. Submissions are
// validated and echoed back; nothing is stored or sent upstream.
type MerchantFormService interface {
	NewDraft(ctx context.Context) MerchantDraft
	EditDraft(ctx context.Context, mchtCode string) MerchantDraft
	SubmitCreate(ctx context.Context, form model.MerchantForm) (MerchantFormResult, error)
	SubmitUpdate(ctx context.Context, mchtCode string, form model.MerchantForm) (MerchantFormResult, error)
}

// --- Implementation ---

type merchantFormService struct {
	now func() time.Time
}

func NewMerchantFormService() MerchantFormService {
	return &merchantFormService{now: time.Now}
}

func (s *merchantFormService) NewDraft(_ context.Context) MerchantDraft {
	return MerchantDraft{
		DraftID: uuid.New(),
		Mode:    FormModeCreate,
		Form: model.MerchantForm{
			Status:          model.MerchantStatusActive,
			SettlementCycle: model.SettlementDaily,
		},
	}
}

func (s *merchantFormService) EditDraft(_ context.Context, mchtCode string) MerchantDraft {
	return MerchantDraft{
		DraftID: uuid.New(),
		Mode:    FormModeEdit,
		Form: model.MerchantForm{
			MchtCode:        mchtCode,
			Name:            fmt.Sprintf("Mock 가맹점 (%s)", mchtCode),
			Status:          model.MerchantStatusActive,
			ContactEmail:    "mock-merchant@example.com",
			ContactPhone:    "010-0000-0000",
			SettlementCycle: model.SettlementDaily,
			Memo:            "가맹점 정보 수정 UX를 위한 Mock 데이터입니다.",
		},
	}
}

func (s *merchantFormService) SubmitCreate(_ context.Context, form model.MerchantForm) (MerchantFormResult, error) {
	form = normalizeForm(form)
	if err := validateForm(form); err != nil {
		return MerchantFormResult{}, err
	}
	return s.echo(FormModeCreate, form), nil
}

func (s *merchantFormService) SubmitUpdate(_ context.Context, mchtCode string, form model.MerchantForm) (MerchantFormResult, error) {
	form = normalizeForm(form)
	if form.MchtCode == "" {
		form.MchtCode = mchtCode
	}
	if form.MchtCode != mchtCode {
		return MerchantFormResult{}, fmt.Errorf("%w: mchtCode cannot be changed", ErrInvalidForm)
	}
	if err := validateForm(form); err != nil {
		return MerchantFormResult{}, err
	}
	return s.echo(FormModeEdit, form), nil
}

func (s *merchantFormService) echo(mode string, form model.MerchantForm) MerchantFormResult {
	return MerchantFormResult{
		DraftID:     uuid.New(),
		Mode:        mode,
		Form:        form,
		Persisted:   false,
		Message:     "mock submission accepted, no data was changed",
		SubmittedAt: s.now().UTC(),
	}
}

// --- Validation helpers ---

var validMerchantStatuses = map[string]bool{
	model.MerchantStatusActive:   true,
	model.MerchantStatusInactive: true,
	model.MerchantStatusPending:  true,
}

var validSettlementCycles = map[string]bool{
	model.SettlementDaily:   true,
	model.SettlementWeekly:  true,
	model.SettlementMonthly: true,
}

func normalizeForm(form model.MerchantForm) model.MerchantForm {
	form.MchtCode = strings.TrimSpace(form.MchtCode)
	form.Name = strings.TrimSpace(form.Name)
	form.ContactEmail = strings.TrimSpace(form.ContactEmail)
	form.ContactPhone = strings.TrimSpace(form.ContactPhone)
	if form.Status == "" {
		form.Status = model.MerchantStatusActive
	}
	if form.SettlementCycle == "" {
		form.SettlementCycle = model.SettlementDaily
	}
	return form
}

func validateForm(form model.MerchantForm) error {
	if form.MchtCode == "" {
		return fmt.Errorf("%w: mchtCode is required", ErrInvalidForm)
	}
	if form.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidForm)
	}
	if !validMerchantStatuses[form.Status] {
		return fmt.Errorf("%w: status must be one of: ACTIVE, INACTIVE, PENDING", ErrInvalidForm)
	}
	if !validSettlementCycles[form.SettlementCycle] {
		return fmt.Errorf("%w: settlementCycle must be one of: DAILY, WEEKLY, MONTHLY", ErrInvalidForm)
	}
	if form.ContactEmail != "" {
		if _, err := mail.ParseAddress(form.ContactEmail); err != nil {
			return fmt.Errorf("%w: contactEmail is not a valid address", ErrInvalidForm)
		}
	}
	return nil
}
