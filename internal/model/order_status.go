package model

import "time"

// OrderStatus is a user-defined order category. Orders reference it via
// order_category_id; the legacy table name order_status_list is kept so the
// fuzzy search and sort aliases line up with existing deployments.
type OrderStatus struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Color     string    `gorm:"type:varchar(20)" json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrderStatus) TableName() string {
	return "order_status_list"
}
