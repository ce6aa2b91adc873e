package handlers

import (
	"net/http"

	"github.com/complyaudit/complyaudit/internal/pkg/errors"
	"github.com/complyaudit/complyaudit/internal/pkg/utils"
)

// writeServiceError maps a service error to the wire, preserving the
// AppError code and status when present.
func writeServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	utils.WriteError(w, errors.Internal("unexpected error", err))
}
