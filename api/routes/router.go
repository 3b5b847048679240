package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mestore/mestore-backend/api/controllers"
	"github.com/mestore/mestore-backend/api/middleware"
	authsvc "github.com/mestore/mestore-backend/internal/auth"
	customersvc "github.com/mestore/mestore-backend/internal/customers"
	staffsvc "github.com/mestore/mestore-backend/internal/deliverystaff"
	itemsvc "github.com/mestore/mestore-backend/internal/items"
	ordersvc "github.com/mestore/mestore-backend/internal/orders"

	agentsvc "github.com/mestore/mestore-backend/internal/agents"
	"github.com/mestore/mestore-backend/pkg/auth/session"
	"github.com/mestore/mestore-backend/pkg/config"
	"github.com/mestore/mestore-backend/pkg/db"
	"github.com/mestore/mestore-backend/pkg/logger"
	"github.com/mestore/mestore-backend/pkg/metrics"
	"github.com/mestore/mestore-backend/pkg/redis"
)

// Services bundles the wired domain services the router mounts.
type Services struct {
	Auth          authsvc.Service
	Agents        agentsvc.Service
	DeliveryStaff staffsvc.Service
	Items         itemsvc.Service
	Customers     customersvc.Service
	Orders        ordersvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessions session.AccessSessionChecker,
	svcs Services,
	httpMetrics *metrics.HTTPMetrics,
	promRegistry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if promRegistry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(svcs.Auth, cfg.JWT, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))

		r.Route("/agents", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(logg))
			r.Get("/", controllers.AgentList(svcs.Agents, logg))
			r.Post("/", controllers.AgentCreate(svcs.Agents, logg))
			r.Get("/{agentId}", controllers.AgentGet(svcs.Agents, logg))
			r.Put("/{agentId}", controllers.AgentUpdate(svcs.Agents, logg))
		})

		r.Route("/delivery-staff", func(r chi.Router) {
			r.Get("/", controllers.DeliveryStaffList(svcs.DeliveryStaff, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(logg))
				r.Post("/", controllers.DeliveryStaffCreate(svcs.DeliveryStaff, logg))
				r.Put("/{staffId}", controllers.DeliveryStaffUpdate(svcs.DeliveryStaff, logg))
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", controllers.ItemList(svcs.Items, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(logg))
				r.Post("/", controllers.ItemCreate(svcs.Items, logg))
				r.Put("/{itemId}", controllers.ItemUpdate(svcs.Items, logg))
			})
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.CustomerList(svcs.Customers, logg))
			r.Get("/{customerId}", controllers.CustomerGet(svcs.Customers, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(logg))
				r.Post("/", controllers.CustomerCreate(svcs.Customers, logg))
				r.Put("/{customerId}", controllers.CustomerUpdate(svcs.Customers, logg))
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(svcs.Orders, logg))
			r.Post("/", controllers.OrderCreate(svcs.Orders, logg))
			r.Get("/today-status", controllers.OrderTodayStatus(svcs.Orders, logg))
			r.Get("/status-by-date", controllers.OrderStatusByDate(svcs.Orders, logg))
			r.Get("/history/{customerId}", controllers.OrderHistory(svcs.Orders, logg))
			r.Put("/{orderId}", controllers.OrderUpdate(svcs.Orders, logg))
		})
	})

	return r
}
