package handler

import (
	"net/http"

	"backoffice/internal/service"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type CodeHandler struct {
	codeService service.CodeService
}

func NewCodeHandler(codeService service.CodeService) *CodeHandler {
	return &CodeHandler{codeService: codeService}
}

func (h *CodeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/common-codes", h.GetCommonCodes)
}

// @Summary      Get common codes
// @Description  Payment status, payment type and merchant status tables
// @Tags         common-codes
// @Produce      json
// @Success      200  {object}  response.Response{data=model.CodeTables}
// @Failure      502  {object}  response.Response
// @Router       /api/common-codes [get]
func (h *CodeHandler) GetCommonCodes(c *gin.Context) {
	tables, err := h.codeService.All(c.Request.Context())
	if err != nil {
		respondError(c, err, msgLoadCommonCodes)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tables))
}
