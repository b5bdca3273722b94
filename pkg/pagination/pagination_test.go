package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "page=3&page_size=30", 3, 30},
		{"negative page", "page=-2&page_size=20", 1, 20},
		{"zero size falls back", "page=2&page_size=0", 2, 10},
		{"capped size", "page_size=500", 1, MaxLimit},
		{"garbage", "page=x&page_size=y", 1, 10},
		{"size change resets page", "page=3&page_size=20&prev_page_size=10", 1, 20},
		{"same size keeps page", "page=3&page_size=10&prev_page_size=10", 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(contextWithQuery(tt.query), 10)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, (tt.wantPage-1)*tt.wantLimit, p.Offset)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 2, TotalPages(25, 20))
}

func TestClampAndBounds(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 3))
	assert.Equal(t, 3, Clamp(9, 3))
	assert.Equal(t, 2, Clamp(2, 3))

	start, end := Bounds(3, 10, 25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = Bounds(5, 10, 25)
	assert.Equal(t, start, end)
}
