package service

import (
	"context"
	"errors"

	"github.com/lxh0508/elerp/internal/model"
	"github.com/lxh0508/elerp/internal/repository"
)

type CreateWarehouseRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type WarehouseService interface {
	CreateWarehouse(ctx context.Context, userID int64, req CreateWarehouseRequest) (*model.Warehouse, error)
	GetWarehouseByID(ctx context.Context, id int64) (*model.Warehouse, error)
	ListWarehouses(ctx context.Context, page, limit int) ([]model.Warehouse, int64, error)
	DeleteWarehouse(ctx context.Context, id int64) error
}

type warehouseService struct {
	repo      repository.WarehouseRepository
	auditRepo repository.AuditRepository
}

func NewWarehouseService(repo repository.WarehouseRepository, auditRepo repository.AuditRepository) WarehouseService {
	return &warehouseService{repo: repo, auditRepo: auditRepo}
}

func (s *warehouseService) CreateWarehouse(ctx context.Context, userID int64, req CreateWarehouseRequest) (*model.Warehouse, error) {
	warehouse := &model.Warehouse{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, &model.AuditLog{
		UserID:     &userID,
		Action:     model.ActionCreateWarehouse,
		EntityName: warehouse.Name,
	})

	return warehouse, nil
}

func (s *warehouseService) GetWarehouseByID(ctx context.Context, id int64) (*model.Warehouse, error) {
	warehouse, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("warehouse not found")
	}
	return warehouse, nil
}

func (s *warehouseService) ListWarehouses(ctx context.Context, page, limit int) ([]model.Warehouse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.repo.List(ctx, page, limit)
}

func (s *warehouseService) DeleteWarehouse(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return errors.New("warehouse not found")
	}
	return s.repo.Delete(ctx, id)
}
