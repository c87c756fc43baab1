package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/wgconf/src/internal/config"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(cfg *config.Config, version VersionInfo) http.Handler {
	r := chi.NewRouter()

	metrics := NewMetrics(version)

	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(metrics.Middleware)
	if cfg.API.PrivateOnly {
		r.Use(PrivateSubnetOnly)
	}
	r.Use(CORS)
	r.Use(JSONContentType)
	r.Use(BodyLimit(cfg.API.MaxBodyBytes))

	h := NewHandler(cfg, version, metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/interface", func(r chi.Router) {
			r.Post("/validate", h.ValidateInterface)
			r.Post("/render", h.RenderInterface)
			r.Post("/parse", h.ParseInterface)
			r.Post("/hooks", h.ExpandHooks)
		})

		r.Post("/keys", h.GenerateKeyPair)
		r.Post("/keys/public", h.DerivePublicKey)

		r.Get("/health", h.CheckHealth)
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
