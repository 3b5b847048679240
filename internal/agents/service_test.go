package agents

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mestore/mestore-backend/pkg/config"
	"github.com/mestore/mestore-backend/pkg/db/models"
	"github.com/mestore/mestore-backend/pkg/enums"
	pkgerrors "github.com/mestore/mestore-backend/pkg/errors"
)

func setupAgentsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  phone TEXT NOT NULL,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'agent',
  is_active INTEGER NOT NULL DEFAULT 1,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(users).Error)
	t.Cleanup(func() {
		db.Exec("DELETE FROM users")
	})
	return db
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8 * 1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db := setupAgentsTestDB(t)
	svc, err := NewService(NewRepository(db), testPasswordConfig())
	require.NoError(t, err)
	return svc, db
}

func TestCreateAndGetAgent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateAgentInput{
		Name:     "Ravi",
		Phone:    "9876500001",
		Username: "ravi.k",
		Password: "agent-secret-1",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, enums.UserRoleAgent, created.Role)
	assert.True(t, created.IsActive)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ravi.k", fetched.Username)
}

func TestCreateAgentDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	input := CreateAgentInput{Name: "A", Phone: "1", Username: "dup.agent", Password: "agent-secret-1"}
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	_, err = svc.Create(ctx, input)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestUpdateAgentFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateAgentInput{
		Name: "Old", Phone: "1", Username: "update.agent", Password: "agent-secret-1",
	})
	require.NoError(t, err)

	name := "New Name"
	inactive := false
	updated, err := svc.Update(ctx, created.ID, UpdateAgentInput{Name: &name, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.False(t, updated.IsActive)
}

func TestGetAgentRejectsAdminAndMissing(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	admin := &models.User{
		ID:           uuid.New(),
		Name:         "Administrator",
		Phone:        "0000000000",
		Username:     "root.admin",
		PasswordHash: "x",
		Role:         enums.UserRoleAdmin,
		IsActive:     true,
	}
	require.NoError(t, db.Create(admin).Error)

	_, err := svc.Get(ctx, admin.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	_, err = svc.Get(ctx, uuid.New())
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
