package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mestore/mestore-backend/internal/access"
	"github.com/mestore/mestore-backend/pkg/db/models"
	pkgerrors "github.com/mestore/mestore-backend/pkg/errors"
)

// Service defines customer operations. Writes are admin-only; reads are
// scoped to the requesting agent's assignments.
type Service interface {
	Create(ctx context.Context, input CreateCustomerInput) (*CustomerDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*CustomerDTO, error)
	List(ctx context.Context, principal access.Principal) ([]CustomerDTO, error)
	Get(ctx context.Context, principal access.Principal, id uuid.UUID) (*CustomerDTO, error)
}

type service struct {
	repo *Repository
}

// NewService constructs the customers service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateCustomerInput) (*CustomerDTO, error) {
	customer := &models.Customer{
		Name:                    strings.TrimSpace(input.Name),
		Phone:                   strings.TrimSpace(input.Phone),
		Address:                 strings.TrimSpace(input.Address),
		AssignedAgentID:         input.AssignedAgentID,
		AssignedDeliveryStaffID: input.AssignedDeliveryStaffID,
		IsActive:                true,
	}
	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
	}
	resolved, err := s.load(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return FromModel(resolved), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*CustomerDTO, error) {
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
	if input.Address != nil {
		updates["address"] = strings.TrimSpace(*input.Address)
	}
	if input.AssignedAgentID != nil {
		updates["assigned_agent_id"] = *input.AssignedAgentID
	}
	if input.AssignedDeliveryStaffID != nil {
		updates["assigned_delivery_staff_id"] = *input.AssignedDeliveryStaffID
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update customer")
		}
	}

	updated, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(updated), nil
}

func (s *service) List(ctx context.Context, principal access.Principal) ([]CustomerDTO, error) {
	var agentID *uuid.UUID
	if !principal.IsAdmin() {
		agentID = &principal.ID
	}
	customers, err := s.repo.ListActive(ctx, agentID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}
	out := make([]CustomerDTO, 0, len(customers))
	for i := range customers {
		out = append(out, *FromModel(&customers[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, principal access.Principal, id uuid.UUID) (*CustomerDTO, error) {
	customer, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(principal, customer.AssignedAgentID) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "access denied")
	}
	return FromModel(customer), nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return customer, nil
}
