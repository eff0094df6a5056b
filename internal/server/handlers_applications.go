// Package server provides the HTTP REST API for the talenthub platform.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/talenthub/internal/types"
)

// UpdateStatusRequest is the request body for an application status change.
type UpdateStatusRequest struct {
	StatusType string                 `json:"statusType" validate:"required"`
	Reason     *types.RejectionReason `json:"reason,omitempty"`
}

// handleUpdateApplicationStatus replaces the status block of an application,
// stamping the change time server-side.
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	applicationID, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	statusType := types.StatusType(req.StatusType)
	if !types.ValidStatusType(statusType) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown status type")
		return
	}

	status := types.ApplicationStatus{
		StatusType: statusType,
		Reason:     req.Reason,
		StatusDate: time.Now(),
	}
	if err := s.store.UpdateApplicationStatus(r.Context(), applicationID, status); err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			s.errorResponse(w, status, "Failed to update application status")
			return
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Status updated"})
}
