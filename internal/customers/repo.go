package customers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mestore/mestore-backend/pkg/db/models"
)

// Repository exposes customer persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a customers repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new customer.
func (r *Repository) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// FindByID loads a customer with assignments resolved.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Preload("AssignedAgent").
		Preload("AssignedDeliveryStaff").
		First(&customer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// ListActive returns active customers, optionally scoped to one agent.
func (r *Repository) ListActive(ctx context.Context, agentID *uuid.UUID) ([]models.Customer, error) {
	query := r.db.WithContext(ctx).
		Preload("AssignedAgent").
		Preload("AssignedDeliveryStaff").
		Where("is_active = ?", true)
	if agentID != nil {
		query = query.Where("assigned_agent_id = ?", *agentID)
	}

	var customers []models.Customer
	if err := query.Order("created_at ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// ListActiveCreatedBefore returns active customers for one agent whose row
// existed on or before the cutoff. Used by the historical status view.
func (r *Repository) ListActiveCreatedBefore(ctx context.Context, agentID *uuid.UUID, cutoff time.Time) ([]models.Customer, error) {
	query := r.db.WithContext(ctx).
		Preload("AssignedAgent").
		Preload("AssignedDeliveryStaff").
		Where("is_active = ? AND created_at <= ?", true, cutoff)
	if agentID != nil {
		query = query.Where("assigned_agent_id = ?", *agentID)
	}

	var customers []models.Customer
	if err := query.Order("created_at ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Update applies the provided column updates to a customer row.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(updates).Error
}
