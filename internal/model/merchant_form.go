package model

// SettlementCycle enum constants
const (
	SettlementDaily   = "DAILY"
	SettlementWeekly  = "WEEKLY"
	SettlementMonthly = "MONTHLY"
)

// MerchantForm is the mock create/edit form. It is never persisted or sent upstream.
type MerchantForm struct {
	MchtCode        string `json:"mchtCode"`
	Name            string `json:"name" binding:"required"`
	BizNo           string `json:"bizNo,omitempty"`
	Status          string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE PENDING"`
	ContactEmail    string `json:"contactEmail,omitempty"`
	ContactPhone    string `json:"contactPhone,omitempty"`
	SettlementCycle string `json:"settlementCycle,omitempty" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY"`
	Memo            string `json:"memo,omitempty"`
}
