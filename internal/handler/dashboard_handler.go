package handler

import (
	"net/http"

	"backoffice/internal/aggregate"
	"backoffice/internal/service"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/dashboard", h.GetDashboard)
}

// @Summary      Get dashboard overview
// @Description  Totals, status distribution, daily amount and count series with trends, and the latest payments
// @Tags         dashboard
// @Produce      json
// @Param        range  query  string  false  "ALL (default) or 7D"
// @Success      200  {object}  response.Response{data=model.DashboardOverview}
// @Failure      502  {object}  response.Response
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	overview, err := h.dashboardService.Overview(c.Request.Context(), aggregate.ParseRange(c.Query("range")))
	if err != nil {
		respondError(c, err, msgLoadDashboard)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, overview))
}
