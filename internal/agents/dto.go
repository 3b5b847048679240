package agents

import (
	"time"

	"github.com/google/uuid"

	"github.com/mestore/mestore-backend/pkg/db/models"
	"github.com/mestore/mestore-backend/pkg/enums"
)

// CreateAgentInput captures the fields an admin supplies for a new agent.
type CreateAgentInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateAgentInput carries optional field updates for an existing agent.
type UpdateAgentInput struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Username *string `json:"username,omitempty" validate:"omitempty,min=3"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// AgentDTO is the wire representation of an agent. The password hash never
// leaves the service layer.
type AgentDTO struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Phone       string         `json:"phone"`
	Username    string         `json:"username"`
	Role        enums.UserRole `json:"role"`
	IsActive    bool           `json:"is_active"`
	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// FromModel maps a user row to its agent DTO.
func FromModel(user *models.User) *AgentDTO {
	if user == nil {
		return nil
	}
	return &AgentDTO{
		ID:          user.ID,
		Name:        user.Name,
		Phone:       user.Phone,
		Username:    user.Username,
		Role:        user.Role,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
