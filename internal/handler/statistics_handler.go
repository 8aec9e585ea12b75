package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/lxh0508/elerp/internal/middleware"
	"github.com/lxh0508/elerp/internal/model"
	"github.com/lxh0508/elerp/internal/service"
	"github.com/lxh0508/elerp/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/statistics/orders", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.GetOrderStatistics)
}

// GetOrderStatistics aggregates order totals per currency over a date range
// @Summary      Order statistics
// @Tags         statistics
// @Security     BearerAuth
// @Produce      json
// @Param        date_start  query     int  false  "Inclusive lower date bound (epoch)"
// @Param        date_end    query     int  false  "Inclusive upper date bound (epoch)"
// @Success      200         {object}  response.Response{data=model.OrderStatisticsResponse}
// @Failure      400         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Router       /api/statistics/orders [get]
func (h *StatisticsHandler) GetOrderStatistics(c *gin.Context) {
	dateStart, err := epochQuery(c, "date_start")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	dateEnd, err := epochQuery(c, "date_end")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	stats, err := h.statisticsService.GetOrderStatistics(c.Request.Context(), dateStart, dateEnd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to compute statistics: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}

func epochQuery(c *gin.Context, name string) (int64, error) {
	v := c.Query(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", name, v)
	}
	return n, nil
}
