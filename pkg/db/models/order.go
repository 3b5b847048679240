package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mestore/mestore-backend/pkg/enums"
)

// Order is one transaction for a customer on a business day. DeliveryStaffID
// is a snapshot of the customer's delivery assignment at creation time and is
// never updated when the customer is later reassigned. Orders are never
// deleted; their lifecycle lives entirely in Status.
type Order struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID      uuid.UUID         `gorm:"column:customer_id;type:uuid;not null;index:idx_orders_customer_date,priority:1"`
	AgentID         uuid.UUID         `gorm:"column:agent_id;type:uuid;not null;index:idx_orders_date_agent,priority:2"`
	DeliveryStaffID *uuid.UUID        `gorm:"column:delivery_staff_id;type:uuid"`
	ItemID          uuid.UUID         `gorm:"column:item_id;type:uuid;not null"`
	Pieces          int               `gorm:"column:pieces;not null"`
	Status          enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	OrderDate       time.Time         `gorm:"column:order_date;not null;index:idx_orders_date_agent,priority:1;index:idx_orders_customer_date,priority:2,sort:desc"`
	Notes           *string           `gorm:"column:notes"`
	Customer        *Customer         `gorm:"foreignKey:CustomerID"`
	Agent           *User             `gorm:"foreignKey:AgentID"`
	DeliveryStaff   *DeliveryStaff    `gorm:"foreignKey:DeliveryStaffID"`
	Item            *Item             `gorm:"foreignKey:ItemID"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
