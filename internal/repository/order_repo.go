package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/lxh0508/elerp/internal/model"
	"github.com/lxh0508/elerp/internal/query"

	"gorm.io/gorm"
)

// orderSearchBase selects order rows together with the joined display-name
// columns the compiled fragments refer to: the fuzzy filter matches the
// four *.name columns and the sort aliases (warehouse_name, ...) must exist
// as output columns for ORDER BY to resolve them. persons is joined twice
// under the aliases the query package assumes.
const orderSearchBase = `SELECT orders.*,
warehouses.name AS warehouse_name,
persons_related.name AS person_related_name,
persons_in_charge.name AS person_in_charge_name,
order_status_list.name AS order_status_name
FROM orders
LEFT JOIN warehouses ON warehouses.id = orders.warehouse_id
LEFT JOIN persons persons_related ON persons_related.id = orders.person_related_id
LEFT JOIN persons persons_in_charge ON persons_in_charge.id = orders.person_in_charge_id
LEFT JOIN order_status_list ON order_status_list.id = orders.order_category_id`

const orderCountBase = `SELECT COUNT(*)
FROM orders
LEFT JOIN warehouses ON warehouses.id = orders.warehouse_id
LEFT JOIN persons persons_related ON persons_related.id = orders.person_related_id
LEFT JOIN persons persons_in_charge ON persons_in_charge.id = orders.person_in_charge_id
LEFT JOIN order_status_list ON order_status_list.id = orders.order_category_id`

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByIDWithItems(ctx context.Context, id int64) (*model.Order, error)
	Search(ctx context.Context, filter *query.OrderFilter, limit, offset int) ([]model.Order, error)
	CountSearch(ctx context.Context, filter *query.OrderFilter) (int64, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status model.OrderPaymentStatus, settled float64, updatedBy int64, now int64) error
	Delete(ctx context.Context, id int64) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return GetDB(ctx, r.db).Create(order).Error
}

func (r *orderRepository) FindByIDWithItems(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := GetDB(ctx, r.db).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Search runs the base join query with the filter's compiled WHERE and
// ORDER BY fragments appended. Both fragments may be empty; a non-positive
// limit disables paging.
func (r *orderRepository) Search(ctx context.Context, filter *query.OrderFilter, limit, offset int) ([]model.Order, error) {
	var sb strings.Builder
	sb.WriteString(orderSearchBase)
	if where := filter.WhereClause(); where != "" {
		sb.WriteString(" ")
		sb.WriteString(where)
	}
	if order := filter.OrderClause(); order != "" {
		sb.WriteString(" ")
		sb.WriteString(order)
	}
	if limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d OFFSET %d", limit, offset)
	}

	var orders []model.Order
	if err := GetDB(ctx, r.db).Raw(sb.String()).Scan(&orders).Error; err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) CountSearch(ctx context.Context, filter *query.OrderFilter) (int64, error) {
	sql := orderCountBase
	if where := filter.WhereClause(); where != "" {
		sql += " " + where
	}
	var total int64
	if err := GetDB(ctx, r.db).Raw(sql).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id int64, status model.OrderPaymentStatus, settled float64, updatedBy int64, now int64) error {
	return GetDB(ctx, r.db).Model(&model.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"order_payment_status": status,
			"total_amount_settled": settled,
			"updated_by_user_id":   updatedBy,
			"last_updated_date":    now,
		}).Error
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
		return err
	}
	return db.Delete(&model.Order{}, id).Error
}

// loadItems attaches line items to a raw-scanned result set. Raw queries
// bypass gorm preloading, so items are fetched in one IN query and grouped
// back onto their orders.
func (r *orderRepository) loadItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(orders))
	for i := range orders {
		ids = append(ids, orders[i].ID)
	}
	var items []model.OrderItem
	if err := GetDB(ctx, r.db).Where("order_id IN ?", ids).Find(&items).Error; err != nil {
		return err
	}
	byOrder := make(map[int64][]model.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return nil
}
