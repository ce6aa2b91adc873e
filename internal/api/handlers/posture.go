package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/complyaudit/complyaudit/internal/domain/compliance"
	"github.com/complyaudit/complyaudit/internal/pkg/errors"
	"github.com/complyaudit/complyaudit/internal/pkg/logger"
	"github.com/complyaudit/complyaudit/internal/pkg/utils"
)

// PostureHandler handles posture assessment HTTP requests
type PostureHandler struct {
	postureService compliance.Service
	logger         *logger.Logger
}

// NewPostureHandler creates a new posture handler
func NewPostureHandler(postureService compliance.Service, log *logger.Logger) *PostureHandler {
	return &PostureHandler{
		postureService: postureService,
		logger:         log,
	}
}

// ListFrameworks handles GET /api/v1/frameworks
func (h *PostureHandler) ListFrameworks(w http.ResponseWriter, r *http.Request) {
	frameworks, err := h.postureService.ListFrameworks(r.Context())
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list frameworks")
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, frameworks)
}

// GetFramework handles GET /api/v1/frameworks/{key}
func (h *PostureHandler) GetFramework(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		utils.WriteError(w, errors.BadRequest("framework key is required"))
		return
	}

	summary, err := h.postureService.GetFramework(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, summary)
}

// Domains handles GET /api/v1/frameworks/{key}/domains
func (h *PostureHandler) Domains(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	domains, err := h.postureService.Domains(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, domains)
}

// Findings handles GET /api/v1/frameworks/{key}/findings
func (h *PostureHandler) Findings(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	findings, err := h.postureService.Findings(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, findings)
}

// Overview handles GET /api/v1/overview
func (h *PostureHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.postureService.Overview(r.Context())
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to build overview")
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, overview)
}

// Trend handles GET /api/v1/frameworks/{key}/trend
func (h *PostureHandler) Trend(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.WriteError(w, errors.BadRequest("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	points, err := h.postureService.Trend(r.Context(), key, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, points)
}
