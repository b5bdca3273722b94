// Package aggregate groups time-stamped records into daily buckets and
// derives trends, windows and distributions for the dashboard charts.
package aggregate

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"backoffice/internal/format"
	"backoffice/internal/model"

	"github.com/shopspring/decimal"
)

// Record is anything with a raw timestamp and a raw amount.
type Record interface {
	RecordTime() string
	RecordAmount() string
}

// Range selects the reporting window.
type Range string

const (
	RangeAll Range = "ALL"
	Range7D  Range = "7D"
)

const windowSpan = 7 * 24 * time.Hour

// Trend labels
const (
	LabelInsufficient = "insufficient data"
	LabelNoChange     = "no change"
	LabelFullRise     = "+100%"
)

// ParseRange maps a request value to a Range, defaulting to RangeAll.
func ParseRange(s string) Range {
	if strings.EqualFold(strings.TrimSpace(s), string(Range7D)) {
		return Range7D
	}
	return RangeAll
}

// Window keeps the records inside rng. RangeAll returns records untouched;
// Range7D keeps timestamps in [now-7d, now] and drops unparseable ones.
func Window[T Record](records []T, rng Range, now time.Time, loc *time.Location) []T {
	if rng != Range7D {
		return records
	}
	from := now.Add(-windowSpan)
	out := make([]T, 0, len(records))
	for _, r := range records {
		t, ok := format.ParseTimestamp(r.RecordTime(), loc)
		if !ok || t.Before(from) || t.After(now) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// BucketByDay sums and counts the records accepted by keep per calendar day in
// loc. Only days with at least one record get a bucket. Buckets are ascending.
// A nil keep accepts every record.
func BucketByDay[T Record](records []T, keep func(T) bool, loc *time.Location) []model.Bucket {
	byDay := make(map[string]*model.Bucket)
	for _, r := range records {
		if keep != nil && !keep(r) {
			continue
		}
		t, ok := format.ParseTimestamp(r.RecordTime(), loc)
		if !ok {
			continue
		}
		key := format.DateKey(t, loc)
		b, exists := byDay[key]
		if !exists {
			b = &model.Bucket{DateKey: key, TotalAmount: decimal.Zero}
			byDay[key] = b
		}
		b.TotalAmount = b.TotalAmount.Add(format.ParseAmount(r.RecordAmount()))
		b.Count++
	}

	buckets := make([]model.Bucket, 0, len(byDay))
	for _, b := range byDay {
		buckets = append(buckets, *b)
	}
	slices.SortFunc(buckets, func(a, b model.Bucket) int { return strings.Compare(a.DateKey, b.DateKey) })
	return buckets
}

// Amounts selects the bucket totals as a numeric series.
func Amounts(buckets []model.Bucket) []float64 {
	out := make([]float64, len(buckets))
	for i, b := range buckets {
		out[i] = b.TotalAmount.InexactFloat64()
	}
	return out
}

// Counts selects the bucket counts as a numeric series.
func Counts(buckets []model.Bucket) []float64 {
	out := make([]float64, len(buckets))
	for i, b := range buckets {
		out[i] = float64(b.Count)
	}
	return out
}

// Trend compares the last two values of an ordered series.
func Trend(values []float64) model.Trend {
	if len(values) < 2 {
		return model.Trend{Direction: model.TrendFlat, Label: LabelInsufficient}
	}
	prev, last := values[len(values)-2], values[len(values)-1]
	if prev == 0 {
		if last == 0 {
			return model.Trend{Direction: model.TrendFlat, Label: LabelNoChange}
		}
		return model.Trend{Direction: model.TrendUp, Label: LabelFullRise}
	}

	rate := (last - prev) / prev * 100
	if math.Abs(rate) < 0.1 {
		return model.Trend{Direction: model.TrendFlat, Label: LabelNoChange}
	}
	direction := model.TrendDown
	if rate > 0 {
		direction = model.TrendUp
	}
	return model.Trend{Direction: direction, Label: rateLabel(rate)}
}

// rateLabel renders a signed percentage with one decimal, halves rounded away from zero.
func rateLabel(rate float64) string {
	label := decimal.NewFromFloat(rate).StringFixed(1) + "%"
	if rate > 0 {
		return "+" + label
	}
	return label
}

// Sum totals the amounts of all records. Unparseable amounts count as zero.
func Sum[T Record](records []T) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(format.ParseAmount(r.RecordAmount()))
	}
	return total
}

// Recent returns the n newest records. Unparseable timestamps sort as the epoch.
func Recent[T Record](records []T, n int, loc *time.Location) []T {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(format.EpochMillis(b.RecordTime(), loc), format.EpochMillis(a.RecordTime(), loc))
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []T{}
	}
	return sorted
}

// Distribution counts records per key for a pie chart. Keys listed in order
// come first, the rest follow in first-seen order. With dropZero, empty
// slices are omitted.
func Distribution[T any](records []T, key func(T) string, order []string, dropZero bool) []model.Slice {
	counts := make(map[string]int)
	var extra []string
	for _, r := range records {
		k := key(r)
		if _, seen := counts[k]; !seen && !slices.Contains(order, k) {
			extra = append(extra, k)
		}
		counts[k]++
	}

	out := make([]model.Slice, 0, len(order)+len(extra))
	for _, k := range append(slices.Clone(order), extra...) {
		if dropZero && counts[k] == 0 {
			continue
		}
		out = append(out, model.Slice{Key: k, Label: format.StatusLabel(k), Value: counts[k]})
	}
	return out
}
