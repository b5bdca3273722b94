package handler

import (
	"net/http"
	"strconv"

	"backoffice/internal/service"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthService service.HealthService
}

func NewHealthHandler(healthService service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	health := router.Group("/api/system/health")
	{
		health.GET("", h.GetHealth)
		health.POST("/check", h.CheckHealth)
		health.GET("/history", h.GetHealthHistory)
	}
}

// GetHealth returns the last recorded upstream check
// @Summary      Get upstream health
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response{data=model.HealthCheck}
// @Router       /api/system/health [get]
func (h *HealthHandler) GetHealth(c *gin.Context) {
	latest, err := h.healthService.Latest(c.Request.Context())
	if err != nil {
		respondError(c, err, msgLoadHealth)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, latest))
}

// CheckHealth probes the upstream now
// @Summary      Run upstream health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response{data=model.HealthCheck}
// @Router       /api/system/health/check [post]
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	check, err := h.healthService.Check(c.Request.Context())
	if err != nil {
		respondError(c, err, msgLoadHealth)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, check))
}

// GetHealthHistory returns recent checks, newest first
// @Summary      List upstream health checks
// @Tags         system
// @Produce      json
// @Param        limit  query  int  false  "Number of checks (default: 20, max: 100)"
// @Success      200  {object}  response.Response{data=[]model.HealthCheck}
// @Router       /api/system/health/history [get]
func (h *HealthHandler) GetHealthHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	checks, err := h.healthService.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, msgLoadHealth)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, checks))
}
