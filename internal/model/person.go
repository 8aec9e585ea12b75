package model

import (
	"time"

	"gorm.io/gorm"
)

// Person is a contact an order can reference, either as the related party
// (customer/supplier) or as the person in charge. Both order foreign keys
// point at this table; the query layer joins it twice under the aliases
// persons_related and persons_in_charge.
type Person struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Phone       string         `gorm:"type:varchar(50)" json:"phone"`
	Email       string         `gorm:"type:varchar(255)" json:"email"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Person) TableName() string {
	return "persons"
}
