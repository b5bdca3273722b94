package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	MinLimit     = 1
)

// Params holds validated pagination parameters
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// New builds normalized params for a page and page size
func New(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < MinLimit {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Parse extracts and validates page/page_size from query parameters.
// When prev_page_size is sent and differs from page_size the page resets to 1.
func Parse(c *gin.Context, defaultLimit int) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultLimit)))
	if limit < MinLimit {
		limit = defaultLimit
	}

	p := New(page, limit)
	if prev := c.Query("prev_page_size"); prev != "" {
		if prevLimit, err := strconv.Atoi(prev); err == nil && prevLimit != p.Limit {
			p = New(DefaultPage, p.Limit)
		}
	}
	return p
}

// TotalPages is ceil(total/limit), never less than 1
func TotalPages(total, limit int) int {
	if limit < 1 || total <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

// Clamp keeps page within [1, totalPages]
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Bounds returns the [start, end) slice indices of a page over total items.
// Out-of-range pages yield an empty window.
func Bounds(page, limit, total int) (int, int) {
	start := (page - 1) * limit
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}
