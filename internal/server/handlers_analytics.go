// Package server provides the HTTP REST API for the talenthub platform.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/analytics"
)

// handleTurnover computes the turnover report for a company. Optional from/to
// query parameters (YYYY-MM-DD) bound the window; they default to the
// trailing year.
func (s *Server) handleTurnover(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	var from, to time.Time
	if v := r.URL.Query().Get("from"); v != "" {
		if from, err = time.Parse("2006-01-02", v); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if to, err = time.Parse("2006-01-02", v); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return
		}
	}

	report, err := analytics.Turnover(r.Context(), s.store, companyID, from, to)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to compute turnover")
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleApplicationOptions returns the chart picker metadata for a company's
// applications. The optional status query narrows the rows; "Completed"
// expands to the terminal statuses.
func (s *Server) handleApplicationOptions(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	statuses := analytics.StatusFilter(r.URL.Query().Get("status"))
	rows, err := s.store.ApplicationDigests(r.Context(), companyID, statuses)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load applications")
		return
	}

	s.jsonResponse(w, http.StatusOK, analytics.ApplicationOptions(rows))
}

// SeriesRequest selects the slices of the monthly application chart.
type SeriesRequest struct {
	Status          string      `json:"status"`
	Years           []string    `json:"years"`
	EmploymentTypes []string    `json:"employmentTypes"`
	Postings        []uuid.UUID `json:"postings"`
}

// handleApplicationSeries buckets a company's applications into per-month
// counts for the rows matching every selected year, employment type and
// posting.
func (s *Server) handleApplicationSeries(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	var req SeriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	statuses := analytics.StatusFilter(req.Status)
	rows, err := s.store.ApplicationDigests(r.Context(), companyID, statuses)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load applications")
		return
	}

	series := analytics.MonthlySeries(rows, req.Years, req.EmploymentTypes, req.Postings)
	s.jsonResponse(w, http.StatusOK, series)
}
