package handler

import (
	"net/http"

	"backoffice/internal/model"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// NewMerchantForm returns an empty mock create form with defaults
// @Summary      New merchant form (mock)
// @Tags         merchant-forms
// @Produce      json
// @Success      200  {object}  response.Response{data=service.MerchantDraft}
// @Router       /api/merchants/new [get]
func (h *MerchantHandler) NewMerchantForm(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.formService.NewDraft(c.Request.Context())))
}

// EditMerchantForm returns a mock edit form prefilled for the merchant code
// @Summary      Edit merchant form (mock)
// @Tags         merchant-forms
// @Produce      json
// @Param        mchtCode  path  string  true  "Merchant code"
// @Success      200  {object}  response.Response{data=service.MerchantDraft}
// @Router       /api/merchants/{mchtCode}/edit [get]
func (h *MerchantHandler) EditMerchantForm(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.formService.EditDraft(c.Request.Context(), c.Param("mchtCode"))))
}

// CreateMerchant validates and echoes a mock create submission. Nothing is stored.
// @Summary      Submit merchant create form (mock)
// @Tags         merchant-forms
// @Accept       json
// @Produce      json
// @Param        payload  body  model.MerchantForm  true  "Merchant form"
// @Success      200  {object}  response.Response{data=service.MerchantFormResult}
// @Failure      400  {object}  response.Response
// @Router       /api/merchants [post]
func (h *MerchantHandler) CreateMerchant(c *gin.Context) {
	var form model.MerchantForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.formService.SubmitCreate(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, "could not submit merchant form")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// UpdateMerchant validates and echoes a mock edit submission. Nothing is stored.
// @Summary      Submit merchant edit form (mock)
// @Tags         merchant-forms
// @Accept       json
// @Produce      json
// @Param        mchtCode  path  string              true  "Merchant code"
// @Param        payload   body  model.MerchantForm  true  "Merchant form"
// @Success      200  {object}  response.Response{data=service.MerchantFormResult}
// @Failure      400  {object}  response.Response
// @Router       /api/merchants/{mchtCode} [put]
func (h *MerchantHandler) UpdateMerchant(c *gin.Context) {
	var form model.MerchantForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.formService.SubmitUpdate(c.Request.Context(), c.Param("mchtCode"), form)
	if err != nil {
		respondError(c, err, "could not submit merchant form")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
