package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lxh0508/elerp/internal/model"
	"github.com/lxh0508/elerp/internal/query"
	"github.com/lxh0508/elerp/internal/repository"
	ws "github.com/lxh0508/elerp/internal/websocket"
)

// DTOs
type OrderItemRequest struct {
	SKUID     int64   `json:"sku_id" binding:"required"`
	Quantity  int64   `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Exchanged bool    `json:"exchanged"`
}

type CreateOrderRequest struct {
	OrderType          string             `json:"order_type" binding:"required"`
	Currency           string             `json:"currency"`
	OrderPaymentStatus string             `json:"order_payment_status"`
	WarehouseID        int64              `json:"warehouse_id" binding:"required"`
	PersonRelatedID    int64              `json:"person_related_id" binding:"required"`
	PersonInChargeID   int64              `json:"person_in_charge_id" binding:"required"`
	OrderCategoryID    int64              `json:"order_category_id"`
	FromGuestOrderID   int64              `json:"from_guest_order_id"`
	Description        string             `json:"description"`
	Items              []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdatePaymentStatusRequest struct {
	OrderPaymentStatus string  `json:"order_payment_status" binding:"required"`
	TotalAmountSettled float64 `json:"total_amount_settled" binding:"min=0"`
}

// Websocket Payload
type OrderEvent struct {
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data"`
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID int64, req CreateOrderRequest) (*model.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*model.Order, error)
	SearchOrders(ctx context.Context, filter *query.OrderFilter, page, limit int) ([]model.Order, int64, error)
	UpdatePaymentStatus(ctx context.Context, userID, id int64, req UpdatePaymentStatusRequest) (*model.Order, error)
	DeleteOrder(ctx context.Context, userID, id int64) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	hub       *ws.Hub
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		hub:       hub,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, userID int64, req CreateOrderRequest) (*model.Order, error) {
	orderType := model.OrderType(req.OrderType)
	if !orderType.Valid() {
		return nil, fmt.Errorf("invalid order_type %q", req.OrderType)
	}

	currency := model.DefaultCurrency
	if req.Currency != "" {
		currency = model.OrderCurrency(req.Currency)
		if !currency.Valid() {
			return nil, fmt.Errorf("invalid currency %q", req.Currency)
		}
	}

	paymentStatus := model.DefaultPaymentStatus
	if req.OrderPaymentStatus != "" {
		paymentStatus = model.OrderPaymentStatus(req.OrderPaymentStatus)
		if !paymentStatus.Valid() {
			return nil, fmt.Errorf("invalid order_payment_status %q", req.OrderPaymentStatus)
		}
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	var totalAmount float64
	for _, item := range req.Items {
		items = append(items, model.OrderItem{
			SKUID:     item.SKUID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Exchanged: item.Exchanged,
		})
		totalAmount += float64(item.Quantity) * item.Price
	}

	now := time.Now().Unix()
	order := &model.Order{
		CreatedByUserID:    userID,
		UpdatedByUserID:    userID,
		Date:               now,
		LastUpdatedDate:    now,
		PersonInChargeID:   req.PersonInChargeID,
		OrderCategoryID:    req.OrderCategoryID,
		FromGuestOrderID:   req.FromGuestOrderID,
		Currency:           currency,
		Items:              items,
		TotalAmount:        totalAmount,
		OrderPaymentStatus: paymentStatus,
		WarehouseID:        req.WarehouseID,
		PersonRelatedID:    req.PersonRelatedID,
		Description:        req.Description,
		OrderType:          orderType,
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.orderRepo.Create(txCtx, order); err != nil {
			return err
		}
		return s.audit(txCtx, userID, model.ActionCreateOrder, order)
	})
	if err != nil {
		return nil, err
	}

	s.broadcast(ws.EventOrderCreated, order)
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.orderRepo.FindByIDWithItems(ctx, id)
	if err != nil {
		return nil, errors.New("order not found")
	}
	return order, nil
}

func (s *orderService) SearchOrders(ctx context.Context, filter *query.OrderFilter, page, limit int) ([]model.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	total, err := s.orderRepo.CountSearch(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	orders, err := s.orderRepo.Search(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (s *orderService) UpdatePaymentStatus(ctx context.Context, userID, id int64, req UpdatePaymentStatusRequest) (*model.Order, error) {
	status := model.OrderPaymentStatus(req.OrderPaymentStatus)
	if !status.Valid() {
		return nil, fmt.Errorf("invalid order_payment_status %q", req.OrderPaymentStatus)
	}

	order, err := s.orderRepo.FindByIDWithItems(ctx, id)
	if err != nil {
		return nil, errors.New("order not found")
	}
	if req.TotalAmountSettled > order.TotalAmount {
		return nil, errors.New("settled amount exceeds order total")
	}

	now := time.Now().Unix()
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.orderRepo.UpdatePaymentStatus(txCtx, id, status, req.TotalAmountSettled, userID, now); err != nil {
			return err
		}
		return s.audit(txCtx, userID, model.ActionUpdatePayment, order)
	})
	if err != nil {
		return nil, err
	}

	order.OrderPaymentStatus = status
	order.TotalAmountSettled = req.TotalAmountSettled
	order.UpdatedByUserID = userID
	order.LastUpdatedDate = now

	s.broadcast(ws.EventOrderPaymentUpdated, order)
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, userID, id int64) error {
	order, err := s.orderRepo.FindByIDWithItems(ctx, id)
	if err != nil {
		return errors.New("order not found")
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.orderRepo.Delete(txCtx, id); err != nil {
			return err
		}
		return s.audit(txCtx, userID, model.ActionDeleteOrder, order)
	})
	if err != nil {
		return err
	}

	s.broadcast(ws.EventOrderDeleted, order)
	return nil
}

func (s *orderService) audit(ctx context.Context, userID int64, action string, order *model.Order) error {
	details, _ := json.Marshal(map[string]interface{}{
		"order_type":           order.OrderType,
		"warehouse_id":         order.WarehouseID,
		"total_amount":         order.TotalAmount,
		"order_payment_status": order.OrderPaymentStatus,
	})
	return s.auditRepo.Log(ctx, &model.AuditLog{
		UserID:   &userID,
		Action:   action,
		EntityID: fmt.Sprintf("%d", order.ID),
		Details:  string(details),
	})
}

// broadcast pushes an order event to connected clients. The hub may be nil
// in tests.
func (s *orderService) broadcast(event string, order *model.Order) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(OrderEvent{
		Event: event,
		Data: map[string]interface{}{
			"id":                   order.ID,
			"order_type":           order.OrderType,
			"order_payment_status": order.OrderPaymentStatus,
			"total_amount":         order.TotalAmount,
			"warehouse_id":         order.WarehouseID,
		},
	})
	if err != nil {
		return
	}
	s.hub.Broadcast <- payload
}
