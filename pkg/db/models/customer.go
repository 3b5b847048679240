package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a buyer serviced by one agent and one delivery staffer. Both
// assignments are live references an admin can change at any time; orders
// snapshot the delivery assignment instead of following it.
type Customer struct {
	ID                      uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name                    string         `gorm:"column:name;not null"`
	Phone                   string         `gorm:"column:phone;not null"`
	Address                 string         `gorm:"column:address;not null"`
	AssignedAgentID         *uuid.UUID     `gorm:"column:assigned_agent_id;type:uuid"`
	AssignedDeliveryStaffID *uuid.UUID     `gorm:"column:assigned_delivery_staff_id;type:uuid"`
	IsActive                bool           `gorm:"column:is_active;not null;default:true"`
	AssignedAgent           *User          `gorm:"foreignKey:AssignedAgentID"`
	AssignedDeliveryStaff   *DeliveryStaff `gorm:"foreignKey:AssignedDeliveryStaffID"`
	CreatedAt               time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt               time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
