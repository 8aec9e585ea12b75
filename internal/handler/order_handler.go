package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lxh0508/elerp/internal/middleware"
	"github.com/lxh0508/elerp/internal/model"
	"github.com/lxh0508/elerp/internal/query"
	"github.com/lxh0508/elerp/internal/service"
	"github.com/lxh0508/elerp/pkg/pagination"
	"github.com/lxh0508/elerp/pkg/response"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/api/orders")
	{
		orders.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.SearchOrders)
		orders.GET("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff), h.GetOrder)
		orders.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.CreateOrder)
		orders.PUT("/:id/payment-status", middleware.RequireRole(model.RoleAdmin, model.RoleManager), h.UpdatePaymentStatus)
		orders.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.DeleteOrder)
	}
}

// SearchOrders lists orders matching an optional filter/sort request
// @Summary      Search orders
// @Description  Retrieves orders matching the given filters, sorted and paginated
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id                        query  int     false  "Order id"
// @Param        created_by_user_id        query  int     false  "Creator user id"
// @Param        updated_by_user_id        query  int     false  "Updater user id"
// @Param        fuzzy                     query  string  false  "Free-text match over id and joined names"
// @Param        warehouse_ids             query  string  false  "Comma-separated warehouse ids"
// @Param        person_related_id         query  int     false  "Related person id"
// @Param        person_in_charge_id       query  int     false  "Person in charge id"
// @Param        order_payment_status      query  string  false  "Comma-separated payment statuses"
// @Param        order_type                query  string  false  "Order type"
// @Param        order_category_id         query  int     false  "Order category id"
// @Param        currency                  query  string  false  "Currency code"
// @Param        date_start                query  int     false  "Inclusive lower date bound (epoch)"
// @Param        date_end                  query  int     false  "Inclusive upper date bound (epoch)"
// @Param        last_updated_date_start   query  int     false  "Inclusive lower last-updated bound (epoch)"
// @Param        last_updated_date_end     query  int     false  "Inclusive upper last-updated bound (epoch)"
// @Param        sorters                   query  string  false  "Comma-separated sort tokens, field[:direction]"
// @Param        reverse                   query  string  false  "Comma-separated field identifiers to negate"
// @Param        page                      query  int     false  "Page number (default 1)"
// @Param        limit                     query  int     false  "Items per page (default 20)"
// @Success      200  {object}  response.Response{data=object}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/orders [get]
func (h *OrderHandler) SearchOrders(c *gin.Context) {
	filter, err := parseOrderFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	p := pagination.Parse(c)
	orders, total, err := h.orderService.SearchOrders(c.Request.Context(), filter, p.Page, p.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve orders: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Paged(http.StatusOK, orders, p.Meta(total)))
}

// GetOrder returns a single order with its items
// @Summary      Get order
// @Description  Retrieves one order by id, including line items
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.Response{data=model.Order}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid order ID"))
		return
	}

	order, err := h.orderService.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}

// CreateOrder creates a new order with its line items
// @Summary      Create order
// @Description  Creates an order header and its items in one transaction
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateOrderRequest  true  "Create Order Payload"
// @Success      201      {object}  response.Response{data=model.Order}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID := c.GetInt64("userID")
	order, err := h.orderService.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, order))
}

// UpdatePaymentStatus updates an order's payment status and settled amount
// @Summary      Update order payment status
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                                 true  "Order ID"
// @Param        payload  body      service.UpdatePaymentStatusRequest  true  "Payment Status Payload"
// @Success      200      {object}  response.Response{data=model.Order}
// @Failure      400      {object}  response.Response
// @Router       /api/orders/{id}/payment-status [put]
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid order ID"))
		return
	}

	var req service.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID := c.GetInt64("userID")
	order, err := h.orderService.UpdatePaymentStatus(c.Request.Context(), userID, id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}

// DeleteOrder removes an order and its items
// @Summary      Delete order
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid order ID"))
		return
	}

	userID := c.GetInt64("userID")
	if err := h.orderService.DeleteOrder(c.Request.Context(), userID, id); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Order deleted successfully"))
}

// parseOrderFilter decodes the recognized query parameters into an
// OrderFilter. Multi-value parameters accept both repeated keys and
// comma-separated lists. Unknown sort columns, reverse identifiers and
// enum values fail the request here so nothing unvetted reaches the
// condition compiler.
func parseOrderFilter(c *gin.Context) (*query.OrderFilter, error) {
	f := &query.OrderFilter{}
	var err error

	if f.ID, err = int64Query(c, "id"); err != nil {
		return nil, err
	}
	if f.CreatedByUserID, err = int64Query(c, "created_by_user_id"); err != nil {
		return nil, err
	}
	if f.UpdatedByUserID, err = int64Query(c, "updated_by_user_id"); err != nil {
		return nil, err
	}
	if v := c.Query("fuzzy"); v != "" {
		f.Fuzzy = &v
	}
	for _, raw := range multiQuery(c, "warehouse_ids") {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid warehouse_ids value %q", raw)
		}
		f.WarehouseIDs = append(f.WarehouseIDs, id)
	}
	if f.PersonRelatedID, err = int64Query(c, "person_related_id"); err != nil {
		return nil, err
	}
	if f.PersonInChargeID, err = int64Query(c, "person_in_charge_id"); err != nil {
		return nil, err
	}
	for _, raw := range multiQuery(c, "order_payment_status") {
		status := model.OrderPaymentStatus(raw)
		if !status.Valid() {
			return nil, fmt.Errorf("invalid order_payment_status value %q", raw)
		}
		f.OrderPaymentStatus = append(f.OrderPaymentStatus, status)
	}
	if v := c.Query("order_type"); v != "" {
		orderType := model.OrderType(v)
		if !orderType.Valid() {
			return nil, fmt.Errorf("invalid order_type %q", v)
		}
		f.OrderType = &orderType
	}
	if f.OrderCategoryID, err = int64Query(c, "order_category_id"); err != nil {
		return nil, err
	}
	if v := c.Query("currency"); v != "" {
		currency := model.OrderCurrency(v)
		if !currency.Valid() {
			return nil, fmt.Errorf("invalid currency %q", v)
		}
		f.Currency = &currency
	}
	if f.DateStart, err = int64Query(c, "date_start"); err != nil {
		return nil, err
	}
	if f.DateEnd, err = int64Query(c, "date_end"); err != nil {
		return nil, err
	}
	if f.LastUpdatedDateStart, err = int64Query(c, "last_updated_date_start"); err != nil {
		return nil, err
	}
	if f.LastUpdatedDateEnd, err = int64Query(c, "last_updated_date_end"); err != nil {
		return nil, err
	}
	for _, token := range multiQuery(c, "sorters") {
		if err := query.ValidateSortToken(token); err != nil {
			return nil, err
		}
		f.Sorters = append(f.Sorters, token)
	}
	if fields := multiQuery(c, "reverse"); len(fields) > 0 {
		f.Reverse = make(query.Reverse, len(fields))
		for _, field := range fields {
			if err := query.ValidateReverseField(field); err != nil {
				return nil, err
			}
			f.Reverse[field] = true
		}
	}

	return f, nil
}

// int64Query reads an optional numeric query parameter; absent means nil.
func int64Query(c *gin.Context, name string) (*int64, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q", name, v)
	}
	return &n, nil
}

// multiQuery collects a multi-value parameter from repeated keys and
// comma-separated lists. Empty entries are dropped, so "?warehouse_ids="
// reads as absent.
func multiQuery(c *gin.Context, name string) []string {
	var values []string
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}
