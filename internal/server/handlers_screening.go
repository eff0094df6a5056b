// Package server provides the HTTP REST API for the talenthub platform.
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/talenthub/internal/schemas"
	"github.com/jonathan/talenthub/internal/screening"
)

// handleScreenApplications runs the screening pass over a posting's New
// applications. An empty or null body screens against the posting's own
// criteria; a JSON body is validated and used verbatim as the requirement set.
func (s *Server) handleScreenApplications(w http.ResponseWriter, r *http.Request) {
	postingID, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid posting ID")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var override *screening.RequirementSet
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		if err := schemas.ValidateRequirementOverride(trimmed); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		var req screening.RequirementSet
		if err := json.Unmarshal(trimmed, &req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		normalizeRequirementSet(&req)
		override = &req
	}

	result, err := s.engine.FilterApplications(r.Context(), postingID, override)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			s.errorResponse(w, status, "Failed to screen applications")
			return
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// normalizeRequirementSet lower-cases the capability lists and drops blanks,
// matching the form the classifier compares against.
func normalizeRequirementSet(req *screening.RequirementSet) {
	req.Languages = lowerTrimmed(req.Languages)
	req.TechnicalSkills = lowerTrimmed(req.TechnicalSkills)
	req.SoftSkills = lowerTrimmed(req.SoftSkills)
}

func lowerTrimmed(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}
