package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(logger.NewWithWriter(buf)), RequestLogger(), Recovery())
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, c.Writer.Header().Get(RequestIDHeader))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	buf := &bytes.Buffer{}
	w := httptest.NewRecorder()
	newRouter(buf).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
	assert.Contains(t, buf.String(), id)
	assert.Contains(t, buf.String(), `"path":"/ok"`)
}

func TestRequestID_Propagated(t *testing.T) {
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()

	newRouter(&bytes.Buffer{}).ServeHTTP(w, req)

	assert.Equal(t, id, w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	buf := &bytes.Buffer{}
	w := httptest.NewRecorder()
	newRouter(buf).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
	assert.Contains(t, buf.String(), "Recovered from panic")
}
