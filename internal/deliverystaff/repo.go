package deliverystaff

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mestore/mestore-backend/pkg/db/models"
)

// Repository exposes delivery roster persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a delivery staff repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new roster entry.
func (r *Repository) Create(ctx context.Context, staff *models.DeliveryStaff) (*models.DeliveryStaff, error) {
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// FindByID loads a roster entry by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.DeliveryStaff, error) {
	var staff models.DeliveryStaff
	if err := r.db.WithContext(ctx).First(&staff, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// ListActive returns the active roster, newest first.
func (r *Repository) ListActive(ctx context.Context) ([]models.DeliveryStaff, error) {
	var staff []models.DeliveryStaff
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}

// Update applies the provided column updates to a roster entry.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.DeliveryStaff{}).
		Where("id = ?", id).
		Updates(updates).Error
}
