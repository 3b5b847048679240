package deliverystaff

import (
	"time"

	"github.com/google/uuid"

	"github.com/mestore/mestore-backend/pkg/db/models"
)

// CreateStaffInput captures the fields for a new delivery staffer.
type CreateStaffInput struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// UpdateStaffInput carries optional field updates.
type UpdateStaffInput struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// StaffDTO is the wire representation of a delivery staffer.
type StaffDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModel maps a delivery staff row to its DTO.
func FromModel(staff *models.DeliveryStaff) *StaffDTO {
	if staff == nil {
		return nil
	}
	return &StaffDTO{
		ID:        staff.ID,
		Name:      staff.Name,
		Phone:     staff.Phone,
		IsActive:  staff.IsActive,
		CreatedAt: staff.CreatedAt,
	}
}
