// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes and wraps them in the middleware chain

package handlers

import (
	"net/http"

	"github.com/markalston/drone-design-calculator/backend/middleware"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & Status
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Design
		{Method: http.MethodGet, Path: "/api/v1/design/defaults", Handler: h.Defaults},
		{Method: http.MethodPost, Path: "/api/v1/design/calculate", Handler: h.Calculate},
		{Method: http.MethodPost, Path: "/api/v1/design/compare", Handler: h.Compare},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},
	}
}

// Router registers every route on a new mux using Go 1.22 method patterns.
// Each route is wrapped with logging, CORS, rate limiting, and metrics.
// A nil limiter disables rate limiting.
func (h *Handler) Router(limiter *middleware.RateLimiter) *http.ServeMux {
	mux := http.NewServeMux()

	var origins []string
	if h.cfg != nil {
		origins = h.cfg.CORSAllowedOrigins
	}
	cors := middleware.CORSWithConfig(origins)
	limit := middleware.RateLimit(limiter, middleware.ClientIP, h.metrics.ObserveRateLimited)

	preflight := make(map[string]bool)
	for _, route := range h.Routes() {
		handler := middleware.Chain(route.Handler,
			middleware.LogRequest,
			cors,
			limit,
			h.metrics.Instrument(route.Path),
		)
		mux.HandleFunc(route.Method+" "+route.Path, handler)

		if !preflight[route.Path] {
			preflight[route.Path] = true
			mux.HandleFunc(http.MethodOptions+" "+route.Path, middleware.Chain(noContent, cors))
		}
	}

	if h.metrics != nil && (h.cfg == nil || h.cfg.MetricsEnabled) {
		mux.Handle("GET /metrics", h.metrics.Handler())
	}

	return mux
}

func noContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
