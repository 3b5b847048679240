package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mestore/mestore-backend/pkg/config"
	"github.com/mestore/mestore-backend/pkg/db"
	"github.com/mestore/mestore-backend/pkg/db/models"
	"github.com/mestore/mestore-backend/pkg/enums"
	pkgerrors "github.com/mestore/mestore-backend/pkg/errors"
	"github.com/mestore/mestore-backend/pkg/security"
)

const usernameConstraint = "users_username_key"

// Service defines agent account management operations. All of them are
// admin-only; the HTTP layer enforces the role before calling in.
type Service interface {
	Create(ctx context.Context, input CreateAgentInput) (*AgentDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateAgentInput) (*AgentDTO, error)
	List(ctx context.Context) ([]AgentDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*AgentDTO, error)
}

type service struct {
	repo        *Repository
	passwordCfg config.PasswordConfig
}

// NewService constructs the agents service.
func NewService(repo *Repository, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("agents repository is required")
	}
	return &service{repo: repo, passwordCfg: passwordCfg}, nil
}

func (s *service) Create(ctx context.Context, input CreateAgentInput) (*AgentDTO, error) {
	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := &models.User{
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: hash,
		Role:         enums.UserRoleAgent,
		IsActive:     true,
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if db.IsUniqueViolation(err, usernameConstraint) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "username already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create agent")
	}
	return FromModel(created), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateAgentInput) (*AgentDTO, error) {
	if _, err := s.loadAgent(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}
	if input.Username != nil {
		updates["username"] = strings.TrimSpace(*input.Username)
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.Password != nil {
		hash, err := security.HashPassword(*input.Password, s.passwordCfg)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
		updates["password_hash"] = hash
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if db.IsUniqueViolation(err, usernameConstraint) {
				return nil, pkgerrors.New(pkgerrors.CodeConflict, "username already exists")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update agent")
		}
	}

	updated, err := s.loadAgent(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(updated), nil
}

func (s *service) List(ctx context.Context) ([]AgentDTO, error) {
	users, err := s.repo.ListAgents(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list agents")
	}
	out := make([]AgentDTO, 0, len(users))
	for i := range users {
		out = append(out, *FromModel(&users[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*AgentDTO, error) {
	user, err := s.loadAgent(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(user), nil
}

func (s *service) loadAgent(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "agent not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load agent")
	}
	if user.Role != enums.UserRoleAgent {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "agent not found")
	}
	return user, nil
}
