package model

import (
	"bytes"
	"encoding/json"
)

// PaymentStatus enum constants
const (
	PaymentStatusSuccess   = "SUCCESS"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusFail      = "FAIL" // legacy spelling still returned by the upstream API
	PaymentStatusCancelled = "CANCELLED"
	PaymentStatusPending   = "PENDING"
)

// PayType enum constants
const (
	PayTypeOnline  = "ONLINE"
	PayTypeOffline = "OFFLINE"
	PayTypeVACT    = "VACT"
	PayTypeBilling = "BILLING"
)

// Amount keeps the upstream decimal text as-is. The API sends amounts as strings,
// but bare JSON numbers are accepted as well.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(b)
	return nil
}

// Transaction is a single payment as returned by /payments/list
type Transaction struct {
	PaymentCode string `json:"paymentCode"`
	MchtCode    string `json:"mchtCode"`
	Amount      Amount `json:"amount"`
	Currency    string `json:"currency"`
	PayType     string `json:"payType"`
	Status      string `json:"status"`
	PaymentAt   string `json:"paymentAt"`
}

// RecordTime returns the raw payment timestamp
func (t Transaction) RecordTime() string { return t.PaymentAt }

// RecordAmount returns the raw payment amount
func (t Transaction) RecordAmount() string { return string(t.Amount) }
