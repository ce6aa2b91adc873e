package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/complyaudit/complyaudit/internal/api/middleware"
	"github.com/complyaudit/complyaudit/internal/pkg/errors"
	"github.com/complyaudit/complyaudit/internal/pkg/logger"
	"github.com/complyaudit/complyaudit/internal/pkg/utils"
	"github.com/complyaudit/complyaudit/internal/services"
)

// RemediationHandler handles workflow HTTP requests
type RemediationHandler struct {
	workflows *services.WorkflowManager
	logger    *logger.Logger
}

// NewRemediationHandler creates a new remediation handler
func NewRemediationHandler(workflows *services.WorkflowManager, log *logger.Logger) *RemediationHandler {
	return &RemediationHandler{
		workflows: workflows,
		logger:    log,
	}
}

// Accept handles POST /api/v1/frameworks/{key}/findings/{id}/accept
func (h *RemediationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	findingID := chi.URLParam(r, "id")

	wf, err := h.workflows.For(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	state, err := wf.Accept(r.Context(), findingID, middleware.GetActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, state)
}

// Apply handles POST /api/v1/frameworks/{key}/findings/{id}/apply
func (h *RemediationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	findingID := chi.URLParam(r, "id")

	wf, err := h.workflows.For(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	state, err := wf.Apply(r.Context(), findingID, middleware.GetActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, state)
}

// applyAllRequest optionally narrows a batch apply to specific findings
type applyAllRequest struct {
	FindingIDs []string `json:"finding_ids"`
}

// ApplyAll handles POST /api/v1/frameworks/{key}/apply-all
func (h *RemediationHandler) ApplyAll(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req applyAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		utils.WriteError(w, errors.BadRequest("invalid request body"))
		return
	}

	wf, err := h.workflows.For(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	result, err := wf.ApplyAll(r.Context(), middleware.GetActor(r), req.FindingIDs...)
	if err != nil {
		h.logger.ErrorWithErr(err, "Batch apply failed")
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, result)
}

// Workflow handles GET /api/v1/frameworks/{key}/findings/{id}/workflow
func (h *RemediationHandler) Workflow(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	findingID := chi.URLParam(r, "id")

	wf, err := h.workflows.For(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	state, err := wf.Status(r.Context(), findingID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"finding_id": findingID,
		"state":      string(state),
	})
}

// States handles GET /api/v1/frameworks/{key}/workflow
func (h *RemediationHandler) States(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	wf, err := h.workflows.For(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	states, err := wf.States(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, states)
}

// Reset handles DELETE /api/v1/frameworks/{key}/workflow
func (h *RemediationHandler) Reset(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	wf, err := h.workflows.For(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := wf.Reset(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, "remediation state cleared", nil)
}
