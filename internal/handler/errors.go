package handler

import (
	"errors"
	"net/http"

	"backoffice/internal/gateway"
	"backoffice/internal/logger"
	"backoffice/internal/service"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// Per-view messages shown when the upstream API cannot be loaded
const (
	msgLoadTransactions   = "could not load transactions"
	msgLoadTransaction    = "could not load transaction detail"
	msgLoadMerchants      = "could not load merchants"
	msgLoadMerchant       = "could not load merchant detail"
	msgLoadDashboard      = "could not load dashboard"
	msgLoadCommonCodes    = "could not load common codes"
	msgLoadHealth         = "could not load health status"
	msgTransactionMissing = "transaction not found"
	msgMerchantMissing    = "merchant not found"
)

// respondError maps a service error to the response envelope.
func respondError(c *gin.Context, err error, loadMessage string) {
	status := http.StatusInternalServerError
	message := loadMessage

	switch {
	case errors.Is(err, service.ErrTransactionNotFound):
		status, message = http.StatusNotFound, msgTransactionMissing
	case errors.Is(err, service.ErrMerchantNotFound):
		status, message = http.StatusNotFound, msgMerchantMissing
	case errors.Is(err, service.ErrInvalidForm):
		status, message = http.StatusBadRequest, err.Error()
	case gateway.IsUpstreamFailure(err):
		status = http.StatusBadGateway
	}

	log := logger.FromContext(c.Request.Context())
	event := log.Error()
	if status < http.StatusInternalServerError {
		event = log.Warn()
	}
	event.Err(err).Int("status", status).Msg(message)
	c.JSON(status, response.Error(status, message))
}
