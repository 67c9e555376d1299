package rest

import (
	"log/slog"
	"net/http"

	"github.com/arlearn/admin-backend/internal/config"
	"github.com/arlearn/admin-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Models  *ModelsHandler
	Health  *HealthHandler

	Logger      *slog.Logger
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the HTTP routing table. Three tiers: health probes with
// no middleware beyond the base chain, public endpoints, and the gated
// admin API behind the session marker check.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	base := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.CORS(deps.CORS),
		middleware.Session(),
		middleware.Logger(deps.Logger),
	)
	gated := middleware.Require()

	// Health probes.
	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	// Public surface.
	mux.HandleFunc("GET /api/models", deps.Models.List)

	login := http.Handler(http.HandlerFunc(deps.Auth.Login))
	if deps.RateLimit.Enabled && deps.RateLimiter != nil {
		login = deps.RateLimiter.Limit(deps.RateLimit.LoginPerMinute)(login)
	}
	mux.Handle("POST /api/auth/login", login)

	// Everything past the login gate.
	mux.Handle("POST /api/auth/logout", gated(http.HandlerFunc(deps.Auth.Logout)))

	mux.Handle("GET /api/catalog/models", gated(http.HandlerFunc(deps.Catalog.ListModels)))
	mux.Handle("POST /api/catalog/models", gated(http.HandlerFunc(deps.Catalog.CreateModel)))
	mux.Handle("PUT /api/catalog/models/{id}", gated(http.HandlerFunc(deps.Catalog.UpdateModel)))
	mux.Handle("DELETE /api/catalog/models/{id}", gated(http.HandlerFunc(deps.Catalog.DeleteModel)))

	mux.Handle("GET /api/catalog/quiz", gated(http.HandlerFunc(deps.Catalog.ListQuestions)))
	mux.Handle("POST /api/catalog/quiz", gated(http.HandlerFunc(deps.Catalog.CreateQuestion)))
	mux.Handle("PUT /api/catalog/quiz/{id}", gated(http.HandlerFunc(deps.Catalog.UpdateQuestion)))
	mux.Handle("DELETE /api/catalog/quiz/{id}", gated(http.HandlerFunc(deps.Catalog.DeleteQuestion)))

	return base(mux)
}
