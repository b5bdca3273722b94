package model

// CodeItem is one entry of a common code table (payment status, pay type, merchant status)
type CodeItem struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CodeTables groups the three reference tables served together
type CodeTables struct {
	PaymentStatus  []CodeItem `json:"payment_status"`
	PaymentType    []CodeItem `json:"payment_type"`
	MerchantStatus []CodeItem `json:"merchant_status"`
}
