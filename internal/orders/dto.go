package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/mestore/mestore-backend/internal/customers"
	"github.com/mestore/mestore-backend/pkg/db/models"
	"github.com/mestore/mestore-backend/pkg/enums"
)

// CreateOrderInput captures the fields for a new order. Status defaults to
// pending when omitted; the order date is always set server-side to the
// creation time.
type CreateOrderInput struct {
	CustomerID uuid.UUID          `json:"customer_id" validate:"required"`
	ItemID     uuid.UUID          `json:"item_id" validate:"required"`
	Pieces     int                `json:"pieces" validate:"required,min=1"`
	Status     *enums.OrderStatus `json:"status,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
}

// UpdateOrderInput carries the mutable order fields. A nil field is left
// untouched; Notes distinguishes "absent" from "clear" via the pointer.
type UpdateOrderInput struct {
	Status *enums.OrderStatus `json:"status,omitempty"`
	Pieces *int               `json:"pieces,omitempty" validate:"omitempty,min=1"`
	ItemID *uuid.UUID         `json:"item_id,omitempty"`
	Notes  *string            `json:"notes,omitempty"`
}

// ListFilters describe the inputs supported by the order list.
type ListFilters struct {
	AgentID    *uuid.UUID
	CustomerID *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
}

// OrderCustomer is the customer summary resolved onto an order.
type OrderCustomer struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
}

// OrderPerson is the display form of an agent or delivery staffer.
type OrderPerson struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// OrderItem is the catalog summary resolved onto an order.
type OrderItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// OrderDTO is the wire representation of an order with references resolved.
type OrderDTO struct {
	ID            uuid.UUID         `json:"id"`
	Customer      *OrderCustomer    `json:"customer,omitempty"`
	Agent         *OrderPerson      `json:"agent,omitempty"`
	DeliveryStaff *OrderPerson      `json:"delivery_staff,omitempty"`
	Item          *OrderItem        `json:"item,omitempty"`
	Pieces        int               `json:"pieces"`
	Status        enums.OrderStatus `json:"status"`
	OrderDate     time.Time         `json:"order_date"`
	Notes         *string           `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// CustomerStatusEntry pairs a customer with their latest order for a business
// day, or no order at all.
type CustomerStatusEntry struct {
	Customer customers.CustomerDTO `json:"customer"`
	Order    *OrderDTO             `json:"order"`
	HasOrder bool                  `json:"has_order"`
}

// HistoryPage wraps one page of a customer's order history plus the cursor
// for the next page.
type HistoryPage struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// FromModel maps an order row (with preloaded references) to its DTO.
func FromModel(order *models.Order) *OrderDTO {
	if order == nil {
		return nil
	}
	dto := &OrderDTO{
		ID:        order.ID,
		Pieces:    order.Pieces,
		Status:    order.Status,
		OrderDate: order.OrderDate,
		Notes:     order.Notes,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
	if order.Customer != nil {
		dto.Customer = &OrderCustomer{
			ID:      order.Customer.ID,
			Name:    order.Customer.Name,
			Phone:   order.Customer.Phone,
			Address: order.Customer.Address,
		}
	}
	if order.Agent != nil {
		dto.Agent = &OrderPerson{
			ID:    order.Agent.ID,
			Name:  order.Agent.Name,
			Phone: order.Agent.Phone,
		}
	}
	if order.DeliveryStaff != nil {
		dto.DeliveryStaff = &OrderPerson{
			ID:    order.DeliveryStaff.ID,
			Name:  order.DeliveryStaff.Name,
			Phone: order.DeliveryStaff.Phone,
		}
	}
	if order.Item != nil {
		dto.Item = &OrderItem{
			ID:   order.Item.ID,
			Name: order.Item.Name,
		}
	}
	return dto
}
