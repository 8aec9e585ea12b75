package handler

import (
	"net/http"
	"strconv"

	"github.com/lxh0508/elerp/internal/middleware"
	"github.com/lxh0508/elerp/internal/model"
	"github.com/lxh0508/elerp/internal/service"
	"github.com/lxh0508/elerp/pkg/response"

	"github.com/gin-gonic/gin"
)

type OrderStatusHandler struct {
	statusService service.OrderStatusService
}

func NewOrderStatusHandler(statusService service.OrderStatusService) *OrderStatusHandler {
	return &OrderStatusHandler{statusService: statusService}
}

func (h *OrderStatusHandler) RegisterRoutes(router *gin.RouterGroup) {
	statuses := router.Group("/api/order-statuses")
	{
		statuses.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.CreateOrderStatus)
		statuses.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.ListOrderStatuses)
		statuses.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.DeleteOrderStatus)
	}
}

// CreateOrderStatus creates a new order status category
// @Summary      Create order status
// @Tags         order-statuses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateOrderStatusRequest  true  "Create Order Status Payload"
// @Success      201      {object}  response.Response{data=model.OrderStatus}
// @Failure      400      {object}  response.Response
// @Router       /api/order-statuses [post]
func (h *OrderStatusHandler) CreateOrderStatus(c *gin.Context) {
	var req service.CreateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID := c.GetInt64("userID")
	status, err := h.statusService.CreateOrderStatus(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, status))
}

// ListOrderStatuses returns the full order status list
// @Summary      List order statuses
// @Tags         order-statuses
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.OrderStatus}
// @Failure      500  {object}  response.Response
// @Router       /api/order-statuses [get]
func (h *OrderStatusHandler) ListOrderStatuses(c *gin.Context) {
	statuses, err := h.statusService.ListOrderStatuses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve order statuses: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, statuses))
}

// DeleteOrderStatus removes an order status
// @Summary      Delete order status
// @Tags         order-statuses
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Order Status ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/order-statuses/{id} [delete]
func (h *OrderStatusHandler) DeleteOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid order status ID"))
		return
	}

	if err := h.statusService.DeleteOrderStatus(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Order status deleted successfully"))
}
