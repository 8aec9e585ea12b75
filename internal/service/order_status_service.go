package service

import (
	"context"
	"errors"

	"github.com/lxh0508/elerp/internal/model"
	"github.com/lxh0508/elerp/internal/repository"
)

type CreateOrderStatusRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type OrderStatusService interface {
	CreateOrderStatus(ctx context.Context, userID int64, req CreateOrderStatusRequest) (*model.OrderStatus, error)
	ListOrderStatuses(ctx context.Context) ([]model.OrderStatus, error)
	DeleteOrderStatus(ctx context.Context, id int64) error
}

type orderStatusService struct {
	repo      repository.OrderStatusRepository
	auditRepo repository.AuditRepository
}

func NewOrderStatusService(repo repository.OrderStatusRepository, auditRepo repository.AuditRepository) OrderStatusService {
	return &orderStatusService{repo: repo, auditRepo: auditRepo}
}

func (s *orderStatusService) CreateOrderStatus(ctx context.Context, userID int64, req CreateOrderStatusRequest) (*model.OrderStatus, error) {
	status := &model.OrderStatus{
		Name:  req.Name,
		Color: req.Color,
	}
	if err := s.repo.Create(ctx, status); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, &model.AuditLog{
		UserID:     &userID,
		Action:     model.ActionCreateOrderStatus,
		EntityName: status.Name,
	})

	return status, nil
}

func (s *orderStatusService) ListOrderStatuses(ctx context.Context) ([]model.OrderStatus, error) {
	return s.repo.List(ctx)
}

func (s *orderStatusService) DeleteOrderStatus(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return errors.New("order status not found")
	}
	return s.repo.Delete(ctx, id)
}
