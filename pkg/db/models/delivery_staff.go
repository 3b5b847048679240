package models

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStaff is a member of the delivery roster.
type DeliveryStaff struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Phone     string    `gorm:"column:phone;not null"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the plural form GORM would otherwise mangle.
func (DeliveryStaff) TableName() string {
	return "delivery_staff"
}
