package items

import (
	"time"

	"github.com/google/uuid"

	"github.com/mestore/mestore-backend/pkg/db/models"
)

// CreateItemInput captures the fields for a new catalog item.
type CreateItemInput struct {
	Name string `json:"name" validate:"required"`
}

// UpdateItemInput carries optional field updates.
type UpdateItemInput struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ItemDTO is the wire representation of a catalog item.
type ItemDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModel maps an item row to its DTO.
func FromModel(item *models.Item) *ItemDTO {
	if item == nil {
		return nil
	}
	return &ItemDTO{
		ID:        item.ID,
		Name:      item.Name,
		IsActive:  item.IsActive,
		CreatedAt: item.CreatedAt,
	}
}
