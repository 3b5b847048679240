package deliverystaff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mestore/mestore-backend/pkg/db/models"
	pkgerrors "github.com/mestore/mestore-backend/pkg/errors"
)

// Service defines delivery roster operations. Reads are open to any
// authenticated principal; writes are admin-only at the HTTP layer.
type Service interface {
	Create(ctx context.Context, input CreateStaffInput) (*StaffDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateStaffInput) (*StaffDTO, error)
	List(ctx context.Context) ([]StaffDTO, error)
}

type service struct {
	repo *Repository
}

// NewService constructs the delivery staff service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("delivery staff repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateStaffInput) (*StaffDTO, error) {
	staff := &models.DeliveryStaff{
		Name:     strings.TrimSpace(input.Name),
		Phone:    strings.TrimSpace(input.Phone),
		IsActive: true,
	}
	created, err := s.repo.Create(ctx, staff)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create delivery staff")
	}
	return FromModel(created), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateStaffInput) (*StaffDTO, error) {
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update delivery staff")
		}
	}

	updated, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(updated), nil
}

func (s *service) List(ctx context.Context) ([]StaffDTO, error) {
	staff, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list delivery staff")
	}
	out := make([]StaffDTO, 0, len(staff))
	for i := range staff {
		out = append(out, *FromModel(&staff[i]))
	}
	return out, nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.DeliveryStaff, error) {
	staff, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "delivery staff not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load delivery staff")
	}
	return staff, nil
}
