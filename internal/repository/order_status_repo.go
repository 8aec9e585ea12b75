package repository

import (
	"context"

	"github.com/lxh0508/elerp/internal/model"

	"gorm.io/gorm"
)

type OrderStatusRepository interface {
	Create(ctx context.Context, status *model.OrderStatus) error
	GetByID(ctx context.Context, id int64) (*model.OrderStatus, error)
	List(ctx context.Context) ([]model.OrderStatus, error)
	Delete(ctx context.Context, id int64) error
}

type orderStatusRepository struct {
	db *gorm.DB
}

func NewOrderStatusRepository(db *gorm.DB) OrderStatusRepository {
	return &orderStatusRepository{db: db}
}

func (r *orderStatusRepository) Create(ctx context.Context, status *model.OrderStatus) error {
	return GetDB(ctx, r.db).Create(status).Error
}

func (r *orderStatusRepository) GetByID(ctx context.Context, id int64) (*model.OrderStatus, error) {
	var status model.OrderStatus
	if err := GetDB(ctx, r.db).First(&status, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// List returns all categories; the list is small and user-curated, so no
// paging.
func (r *orderStatusRepository) List(ctx context.Context) ([]model.OrderStatus, error) {
	var statuses []model.OrderStatus
	if err := GetDB(ctx, r.db).Order("id").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *orderStatusRepository) Delete(ctx context.Context, id int64) error {
	return GetDB(ctx, r.db).Delete(&model.OrderStatus{}, id).Error
}
