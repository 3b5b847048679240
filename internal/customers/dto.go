package customers

import (
	"time"

	"github.com/google/uuid"

	"github.com/mestore/mestore-backend/pkg/db/models"
)

// CreateCustomerInput captures the fields an admin supplies for a new customer.
type CreateCustomerInput struct {
	Name                    string     `json:"name" validate:"required"`
	Phone                   string     `json:"phone" validate:"required"`
	Address                 string     `json:"address" validate:"required"`
	AssignedAgentID         *uuid.UUID `json:"assigned_agent_id,omitempty"`
	AssignedDeliveryStaffID *uuid.UUID `json:"assigned_delivery_staff_id,omitempty"`
}

// UpdateCustomerInput carries optional field updates. Assignment changes only
// affect future orders; past orders keep their delivery snapshot.
type UpdateCustomerInput struct {
	Name                    *string    `json:"name,omitempty"`
	Phone                   *string    `json:"phone,omitempty"`
	Address                 *string    `json:"address,omitempty"`
	AssignedAgentID         *uuid.UUID `json:"assigned_agent_id,omitempty"`
	AssignedDeliveryStaffID *uuid.UUID `json:"assigned_delivery_staff_id,omitempty"`
	IsActive                *bool      `json:"is_active,omitempty"`
}

// PersonSummary is the display form of a referenced person.
type PersonSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// CustomerDTO is the wire representation of a customer with assignments resolved.
type CustomerDTO struct {
	ID                    uuid.UUID      `json:"id"`
	Name                  string         `json:"name"`
	Phone                 string         `json:"phone"`
	Address               string         `json:"address"`
	AssignedAgent         *PersonSummary `json:"assigned_agent,omitempty"`
	AssignedDeliveryStaff *PersonSummary `json:"assigned_delivery_staff,omitempty"`
	IsActive              bool           `json:"is_active"`
	CreatedAt             time.Time      `json:"created_at"`
}

// FromModel maps a customer row (with preloaded assignments) to its DTO.
func FromModel(customer *models.Customer) *CustomerDTO {
	if customer == nil {
		return nil
	}
	dto := &CustomerDTO{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Address:   customer.Address,
		IsActive:  customer.IsActive,
		CreatedAt: customer.CreatedAt,
	}
	if customer.AssignedAgent != nil {
		dto.AssignedAgent = &PersonSummary{
			ID:    customer.AssignedAgent.ID,
			Name:  customer.AssignedAgent.Name,
			Phone: customer.AssignedAgent.Phone,
		}
	}
	if customer.AssignedDeliveryStaff != nil {
		dto.AssignedDeliveryStaff = &PersonSummary{
			ID:    customer.AssignedDeliveryStaff.ID,
			Name:  customer.AssignedDeliveryStaff.Name,
			Phone: customer.AssignedDeliveryStaff.Phone,
		}
	}
	return dto
}
