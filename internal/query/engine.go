// Package query implements the client-side list pipeline shared by the
// transaction and merchant views: filter, search, sort, count and paginate.
package query

import (
	"slices"
	"strings"

	"backoffice/pkg/pagination"

	"github.com/shopspring/decimal"
)

// All is the sentinel filter value that lets every record through.
const All = "ALL"

// SortKey names a sortable column.
type SortKey string

const (
	SortNone      SortKey = ""
	SortAmount    SortKey = "amount"
	SortPaymentAt SortKey = "paymentAt"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// ParseSortKey maps a request value to a SortKey. "none" and unknown values mean input order.
func ParseSortKey(s string) SortKey {
	switch strings.TrimSpace(s) {
	case "amount":
		return SortAmount
	case "paymentAt", "payment_at":
		return SortPaymentAt
	default:
		return SortNone
	}
}

// ParseSortOrder maps a request value to a SortOrder, descending unless "asc".
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(Asc)) {
		return Asc
	}
	return Desc
}

// Query is one request against a record list.
type Query struct {
	Status    string
	Secondary string
	Search    string
	SortKey   SortKey
	SortOrder SortOrder
	Page      int
	PageSize  int
}

// PageResult is the requested page plus aggregates over the whole filtered set.
type PageResult[T any] struct {
	Items        []T             `json:"items"`
	TotalItems   int             `json:"total_items"`
	TotalPages   int             `json:"total_pages"`
	CurrentPage  int             `json:"current_page"`
	PageSize     int             `json:"page_size"`
	StatusCounts map[string]int  `json:"status_counts"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// Spec describes how the engine reads one record type.
type Spec[T any] struct {
	Status       func(T) string
	Secondary    func(T) string // nil disables the secondary filter
	SearchFields []func(T) string

	// Aliases maps a logical status to the raw statuses it stands for.
	Aliases map[string][]string
	// CountKeys are always present in StatusCounts, even at zero.
	CountKeys []string

	SortKeys map[SortKey]func(a, b T) int
	// FixedOrder, when set, replaces user sorting entirely.
	FixedOrder func(a, b T) int

	Amount func(T) decimal.Decimal // nil leaves TotalAmount at zero
}

// Engine applies queries to record lists. It holds no state between calls.
type Engine[T any] struct {
	spec    Spec[T]
	logical map[string]string
}

// NewEngine builds an engine for spec.
func NewEngine[T any](spec Spec[T]) *Engine[T] {
	logical := make(map[string]string)
	for name, raws := range spec.Aliases {
		for _, raw := range raws {
			logical[raw] = name
		}
	}
	return &Engine[T]{spec: spec, logical: logical}
}

// LogicalStatus folds a raw status into its logical bucket.
func (e *Engine[T]) LogicalStatus(raw string) string {
	if name, ok := e.logical[raw]; ok {
		return name
	}
	return raw
}

// Apply runs the pipeline. records is never modified.
func (e *Engine[T]) Apply(records []T, q Query) PageResult[T] {
	filtered := make([]T, 0, len(records))
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, r := range records {
		if e.matchStatus(r, q.Status) && e.matchSecondary(r, q.Secondary) && e.matchSearch(r, needle) {
			filtered = append(filtered, r)
		}
	}

	e.sort(filtered, q)

	counts := make(map[string]int, len(e.spec.CountKeys))
	for _, k := range e.spec.CountKeys {
		counts[k] = 0
	}
	total := decimal.Zero
	for _, r := range filtered {
		if e.spec.Status != nil {
			counts[e.LogicalStatus(e.spec.Status(r))]++
		}
		if e.spec.Amount != nil {
			total = total.Add(e.spec.Amount(r))
		}
	}

	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = pagination.DefaultLimit
	}
	page := q.Page
	if page < 1 {
		page = pagination.DefaultPage
	}
	totalPages := pagination.TotalPages(len(filtered), pageSize)
	start, end := pagination.Bounds(page, pageSize, len(filtered))

	items := make([]T, end-start)
	copy(items, filtered[start:end])

	return PageResult[T]{
		Items:        items,
		TotalItems:   len(filtered),
		TotalPages:   totalPages,
		CurrentPage:  pagination.Clamp(page, totalPages),
		PageSize:     pageSize,
		StatusCounts: counts,
		TotalAmount:  total,
	}
}

func (e *Engine[T]) matchStatus(r T, filter string) bool {
	if filter == "" || filter == All || e.spec.Status == nil {
		return true
	}
	status := e.spec.Status(r)
	if raws, ok := e.spec.Aliases[filter]; ok {
		return slices.Contains(raws, status)
	}
	return status == filter
}

func (e *Engine[T]) matchSecondary(r T, filter string) bool {
	if filter == "" || filter == All || e.spec.Secondary == nil {
		return true
	}
	return e.spec.Secondary(r) == filter
}

func (e *Engine[T]) matchSearch(r T, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range e.spec.SearchFields {
		if strings.Contains(strings.ToLower(field(r)), needle) {
			return true
		}
	}
	return false
}

func (e *Engine[T]) sort(records []T, q Query) {
	if e.spec.FixedOrder != nil {
		slices.SortStableFunc(records, e.spec.FixedOrder)
		return
	}
	cmp, ok := e.spec.SortKeys[q.SortKey]
	if !ok {
		return
	}
	if q.SortOrder == Asc {
		slices.SortStableFunc(records, cmp)
		return
	}
	slices.SortStableFunc(records, func(a, b T) int { return cmp(b, a) })
}
