package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/complyaudit/complyaudit/internal/api/handlers"
	"github.com/complyaudit/complyaudit/internal/api/middleware"
	"github.com/complyaudit/complyaudit/internal/config"
	"github.com/complyaudit/complyaudit/internal/pkg/logger"
	"github.com/complyaudit/complyaudit/internal/pkg/metrics"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Posture     *handlers.PostureHandler
	Remediation *handlers.RemediationHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.Actor(cfg.Workflow.DefaultActor))
	r.Use(metrics.Middleware)

	// Health checks and metrics
	r.Get("/health", h.Health.Healthz)
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Handle("/metrics", metrics.Handler())

	// Posture assessment
	r.Get("/api/v1/overview", h.Posture.Overview)
	r.Route("/api/v1/frameworks", func(r chi.Router) {
		r.Get("/", h.Posture.ListFrameworks)
		r.Route("/{key}", func(r chi.Router) {
			r.Get("/", h.Posture.GetFramework)
			r.Get("/domains", h.Posture.Domains)
			r.Get("/findings", h.Posture.Findings)
			r.Get("/trend", h.Posture.Trend)

			// Remediation workflow
			r.Post("/findings/{id}/accept", h.Remediation.Accept)
			r.Post("/findings/{id}/apply", h.Remediation.Apply)
			r.Get("/findings/{id}/workflow", h.Remediation.Workflow)
			r.Post("/apply-all", h.Remediation.ApplyAll)
			r.Get("/workflow", h.Remediation.States)
			r.Delete("/workflow", h.Remediation.Reset)
		})
	})

	return r
}
