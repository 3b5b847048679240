package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	itemsvc "github.com/mestore/mestore-backend/internal/items"
	pkgAuth "github.com/mestore/mestore-backend/pkg/auth"
	"github.com/mestore/mestore-backend/pkg/config"
	"github.com/mestore/mestore-backend/pkg/enums"
	"github.com/mestore/mestore-backend/pkg/metrics"
)

type stubSessions struct {
	ok bool
}

func (s stubSessions) HasSession(ctx context.Context, accessID string) (bool, error) {
	return s.ok, nil
}

type stubItemsService struct {
	items []itemsvc.ItemDTO
}

func (s *stubItemsService) Create(ctx context.Context, input itemsvc.CreateItemInput) (*itemsvc.ItemDTO, error) {
	item := itemsvc.ItemDTO{ID: uuid.New(), Name: input.Name, IsActive: true}
	s.items = append(s.items, item)
	return &item, nil
}

func (s *stubItemsService) Update(ctx context.Context, id uuid.UUID, input itemsvc.UpdateItemInput) (*itemsvc.ItemDTO, error) {
	return &itemsvc.ItemDTO{ID: id}, nil
}

func (s *stubItemsService) List(ctx context.Context) ([]itemsvc.ItemDTO, error) {
	return s.items, nil
}

func testRouterConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Env: "test"},
		JWT:  config.JWTConfig{Secret: "router-test-secret", Issuer: "mestore", ExpirationMinutes: 60},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func mintRouterToken(t *testing.T, cfg *config.Config, role enums.UserRole) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
		JTI:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func newTestRouter(t *testing.T, cfg *config.Config, items itemsvc.Service) http.Handler {
	t.Helper()
	registry := prometheus.NewRegistry()
	return NewRouter(cfg, nil, nil, nil, stubSessions{ok: true}, Services{
		Items: items,
	}, metrics.NewHTTPMetrics(registry), registry)
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter(t, testRouterConfig(), &stubItemsService{})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestRouterMetricsExposed(t *testing.T) {
	router := newTestRouter(t, testRouterConfig(), &stubItemsService{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestRouterRequiresAuth(t *testing.T) {
	router := newTestRouter(t, testRouterConfig(), &stubItemsService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestRouterAgentCanListItems(t *testing.T) {
	cfg := testRouterConfig()
	router := newTestRouter(t, cfg, &stubItemsService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set("Authorization", "Bearer "+mintRouterToken(t, cfg, enums.UserRoleAgent))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouterAgentCannotCreateItems(t *testing.T) {
	cfg := testRouterConfig()
	router := newTestRouter(t, cfg, &stubItemsService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", nil)
	req.Header.Set("Authorization", "Bearer "+mintRouterToken(t, cfg, enums.UserRoleAgent))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
}
