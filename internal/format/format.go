// Package format holds the parsing and display helpers shared by the list
// engine, the aggregator and the views.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateKeyLayout is the calendar day layout used for buckets.
const DateKeyLayout = "2006-01-02"

// layouts without zone information are read in the reporting location
var zonedLayouts = []string{time.RFC3339Nano, time.RFC3339}
var localLayouts = []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02 15:04:05", DateKeyLayout}

var printer = message.NewPrinter(language.Korean)

// ParseAmount parses an upstream decimal string. Blank or invalid input is zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseTimestamp parses an ISO-8601 timestamp. Values carrying a zone keep it;
// values without one are interpreted in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// EpochMillis returns the timestamp in epoch milliseconds, 0 when unparseable.
func EpochMillis(s string, loc *time.Location) int64 {
	t, ok := ParseTimestamp(s, loc)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

// DateKey returns the calendar day of t in loc as YYYY-MM-DD.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateKeyLayout)
}

// ShortDateKey trims a YYYY-MM-DD key to MM-DD for chart axes.
func ShortDateKey(key string) string {
	if len(key) == len(DateKeyLayout) {
		return key[5:]
	}
	return key
}

// FormatAmount renders an amount with thousands separators. KRW is shown in won.
func FormatAmount(d decimal.Decimal, currency string) string {
	var n string
	if d.IsInteger() {
		n = printer.Sprintf("%d", d.IntPart())
	} else {
		n = printer.Sprintf("%.2f", d.InexactFloat64())
	}
	switch currency {
	case "KRW", "":
		return n + " 원"
	default:
		return n + " " + currency
	}
}

// StatusLabel is the display label of a payment status.
func StatusLabel(status string) string {
	switch status {
	case "SUCCESS":
		return "성공"
	case "FAILED", "FAIL":
		return "실패"
	case "CANCELLED":
		return "취소"
	case "PENDING":
		return "대기"
	default:
		return status
	}
}

// PayTypeLabel is the display label of a pay type.
func PayTypeLabel(payType string) string {
	switch payType {
	case "ONLINE":
		return "온라인 결제"
	case "OFFLINE":
		return "오프라인 결제"
	case "VACT":
		return "가상계좌"
	case "BILLING":
		return "정기결제"
	default:
		return payType
	}
}

// MerchantStatusLabel is the display label of a merchant status.
func MerchantStatusLabel(status string) string {
	switch status {
	case "ACTIVE":
		return "운영 중"
	case "INACTIVE":
		return "중지"
	case "PENDING":
		return "대기"
	default:
		return status
	}
}
