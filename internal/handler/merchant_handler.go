package handler

import (
	"net/http"

	"backoffice/internal/query"
	"backoffice/internal/service"
	"backoffice/pkg/pagination"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type MerchantHandler struct {
	merchantService service.MerchantService
	formService     service.MerchantFormService
}

func NewMerchantHandler(merchantService service.MerchantService, formService service.MerchantFormService) *MerchantHandler {
	return &MerchantHandler{merchantService: merchantService, formService: formService}
}

func (h *MerchantHandler) RegisterRoutes(router *gin.RouterGroup) {
	merchants := router.Group("/api/merchants")
	{
		merchants.GET("", h.ListMerchants)
		merchants.POST("", h.CreateMerchant)
		merchants.GET("/new", h.NewMerchantForm)
		merchants.GET("/:mchtCode", h.GetMerchant)
		merchants.PUT("/:mchtCode", h.UpdateMerchant)
		merchants.GET("/:mchtCode/edit", h.EditMerchantForm)
	}
}

// ListMerchants returns one page of merchants ordered by merchant code
// @Summary      List merchants
// @Tags         merchants
// @Produce      json
// @Param        status          query     string  false  "ALL, ACTIVE, INACTIVE"
// @Param        search          query     string  false  "Substring of merchant code or name"
// @Param        page            query     int     false  "Page number (default: 1)"
// @Param        page_size       query     int     false  "Items per page (default: 20)"
// @Param        prev_page_size  query     int     false  "Page size the client showed before; a change resets to page 1"
// @Success      200  {object}  response.Response{data=query.PageResult[model.Merchant]}
// @Failure      502  {object}  response.Response
// @Router       /api/merchants [get]
func (h *MerchantHandler) ListMerchants(c *gin.Context) {
	p := pagination.Parse(c, query.MerchantPageSize)
	q := query.Query{
		Status:   c.DefaultQuery("status", query.All),
		Search:   c.Query("search"),
		Page:     p.Page,
		PageSize: p.Limit,
	}

	res, err := h.merchantService.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, msgLoadMerchants)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, res, res.CurrentPage, res.PageSize, res.TotalItems, res.TotalPages))
}

// GetMerchant returns a merchant with its payment statistics
// @Summary      Get merchant
// @Tags         merchants
// @Produce      json
// @Param        mchtCode  path  string  true  "Merchant code"
// @Success      200  {object}  response.Response{data=service.MerchantDetailResponse}
// @Failure      404  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /api/merchants/{mchtCode} [get]
func (h *MerchantHandler) GetMerchant(c *gin.Context) {
	detail, err := h.merchantService.Detail(c.Request.Context(), c.Param("mchtCode"))
	if err != nil {
		respondError(c, err, msgLoadMerchant)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, detail))
}
