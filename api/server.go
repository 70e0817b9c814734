// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"time"

	"gistfm-api/api/middleware"
	"gistfm-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	title       = "GistFM API"
	version     = "1.0.0"
	description = "Turns news articles into short spoken-audio summaries"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window per IP; 0 disables
	RateWindow time.Duration // rate limit window
	RateBurst  int           // burst size; 0 uses RateLimit
}

// Registrar is implemented by every handler
type Registrar interface {
	RegisterRoutes(api huma.API)
}

func newRouter() chi.Router {
	router := chi.NewRouter()

	// CORS must run first so preflight requests are not rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	return router
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(title, version)
	config.Info.Description = description
	return config
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := newRouter()

	// The OpenAPI spec is automatically available at /openapi.json
	// The docs UI is automatically available at /docs
	return humachi.New(router, humaConfig()), router
}

// NewAPIWithMiddleware creates a new API with middleware configured. The returned
// limiter is nil when rate limiting is disabled; callers stop it on shutdown.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router, *middleware.RateLimiter) {
	router := newRouter()

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, cfg.RateBurst)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	return humachi.New(router, humaConfig()), router, limiter
}

// Register registers every handler's routes
func Register(api huma.API, handlers ...Registrar) {
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}
}
