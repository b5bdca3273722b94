package model

// MerchantStatus enum constants
const (
	MerchantStatusActive   = "ACTIVE"
	MerchantStatusInactive = "INACTIVE"
	MerchantStatusPending  = "PENDING"
)

// Merchant is a row of /merchants/list
type Merchant struct {
	MchtCode string `json:"mchtCode"`
	MchtName string `json:"mchtName"`
	Status   string `json:"status"`
}

// MerchantDetail is returned by /merchants/details/{mchtCode}.
// Optional fields may be absent depending on the merchant.
type MerchantDetail struct {
	MchtCode  string `json:"mchtCode"`
	MchtName  string `json:"mchtName"`
	Status    string `json:"status"`
	Category  string `json:"category,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Brief narrows a detail down to what the transaction detail view shows
func (d MerchantDetail) Brief() Merchant {
	return Merchant{MchtCode: d.MchtCode, MchtName: d.MchtName, Status: d.Status}
}
