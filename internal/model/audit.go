package model

import (
	"time"
)

const (
	ActionCreateOrder       = "CREATE_ORDER"
	ActionUpdatePayment     = "UPDATE_ORDER_PAYMENT"
	ActionDeleteOrder       = "DELETE_ORDER"
	ActionCreateWarehouse   = "CREATE_WAREHOUSE"
	ActionCreatePerson      = "CREATE_PERSON"
	ActionCreateOrderStatus = "CREATE_ORDER_STATUS"
)

// AuditLog tracks Who, What, and When for critical system changes
type AuditLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *int64    `gorm:"index" json:"user_id"` // Nullable gracefully if automated bot
	User       *User     `gorm:"foreignKey:UserID" json:"user"`
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string    `gorm:"type:varchar(50);index" json:"entity_id"`        // Reference string (id/code)
	EntityName string    `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Human readable name
	Details    string    `gorm:"type:jsonb" json:"details"`                      // Serialized JSON payload of the action
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
