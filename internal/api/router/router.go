package router

import (
	"net/http"
	"time"

	"github.com/bNTGeez/value-g/internal/api/handlers"
	"github.com/bNTGeez/value-g/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Config holds router configuration
type Config struct {
	DashboardHandler *handlers.DashboardHandler
	QuotesHandler    *handlers.QuotesHandler
	HealthHandler    *handlers.HealthHandler

	AllowedOrigins []string
	AccessLogger   *zerolog.Logger
	RequestTimeout time.Duration
}

// NewRouter creates a new HTTP router
func NewRouter(cfg *Config) http.Handler {
	r := chi.NewRouter()

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(middleware.LoggingConfig{
		AccessLogger: cfg.AccessLogger,
		SkipPaths:    []string{"/health"},
	}))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(timeout))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.AllowedOrigins)))

	// Health check
	r.Get("/health", cfg.HealthHandler.Health)
	r.Get("/health/detailed", cfg.HealthHandler.Detailed)

	// Pages
	r.Get("/", cfg.DashboardHandler.Home)
	r.Get("/dashboard", cfg.DashboardHandler.Dashboard)
	r.Post("/dashboard/retry", cfg.DashboardHandler.Retry)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/quotes", cfg.QuotesHandler.GetQuotes)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", cfg.DashboardHandler.Snapshot)
			r.Post("/retry", cfg.DashboardHandler.RetryJSON)
		})
	})

	return r
}
