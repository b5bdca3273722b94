package handler

import (
	"net/http"

	"backoffice/internal/format"
	"backoffice/internal/model"
	"backoffice/internal/query"
	"backoffice/internal/service"
	"backoffice/pkg/pagination"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type TransactionListData struct {
	Items            []model.Transaction `json:"items"`
	StatusCounts     map[string]int      `json:"status_counts"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	TotalAmountLabel string              `json:"total_amount_label"`
	PageSizes        []int               `json:"page_sizes"`
}

type TransactionHandler struct {
	transactionService service.TransactionService
}

func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

func (h *TransactionHandler) RegisterRoutes(router *gin.RouterGroup) {
	transactions := router.Group("/api/transactions")
	{
		transactions.GET("", h.ListTransactions)
		transactions.GET("/:paymentCode", h.GetTransaction)
	}
}

// ListTransactions returns one page of payments with filter, search and sort applied
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Param        status          query     string  false  "ALL, SUCCESS, FAILED, CANCELLED, PENDING (FAILED also matches FAIL)"
// @Param        pay_type        query     string  false  "ALL, ONLINE, OFFLINE, VACT, BILLING"
// @Param        search          query     string  false  "Substring of payment code or merchant code"
// @Param        sort            query     string  false  "amount, paymentAt or none for input order (default: paymentAt)"
// @Param        order           query     string  false  "asc or desc (default: desc)"
// @Param        page            query     int     false  "Page number (default: 1)"
// @Param        page_size       query     int     false  "Items per page (default: 10)"
// @Param        prev_page_size  query     int     false  "Page size the client showed before; a change resets to page 1"
// @Success      200  {object}  response.Response{data=TransactionListData}
// @Failure      502  {object}  response.Response
// @Router       /api/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	p := pagination.Parse(c, query.TransactionPageSize)
	q := query.Query{
		Status:    c.DefaultQuery("status", query.All),
		Secondary: c.DefaultQuery("pay_type", query.All),
		Search:    c.Query("search"),
		SortKey:   query.ParseSortKey(c.DefaultQuery("sort", string(query.DefaultTransactionSort))),
		SortOrder: query.ParseSortOrder(c.Query("order")),
		Page:      p.Page,
		PageSize:  p.Limit,
	}

	res, err := h.transactionService.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, msgLoadTransactions)
		return
	}

	data := TransactionListData{
		Items:            res.Items,
		StatusCounts:     res.StatusCounts,
		TotalAmount:      res.TotalAmount,
		TotalAmountLabel: format.FormatAmount(res.TotalAmount, "KRW"),
		PageSizes:        query.TransactionPageSizes,
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, data, res.CurrentPage, res.PageSize, res.TotalItems, res.TotalPages))
}

// GetTransaction returns one payment with its merchant brief
// @Summary      Get transaction
// @Tags         transactions
// @Produce      json
// @Param        paymentCode  path  string  true  "Payment code"
// @Success      200  {object}  response.Response{data=service.TransactionDetail}
// @Failure      404  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /api/transactions/{paymentCode} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	detail, err := h.transactionService.Detail(c.Request.Context(), c.Param("paymentCode"))
	if err != nil {
		respondError(c, err, msgLoadTransaction)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, detail))
}
