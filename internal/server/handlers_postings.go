// Package server provides the HTTP REST API for the talenthub platform.
package server

import (
	"net/http"

	"github.com/jonathan/talenthub/internal/types"
)

// handleGetPosting returns one posting with its joined job context.
func (s *Server) handleGetPosting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid posting ID")
		return
	}

	posting, err := s.store.PostingByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get posting")
		return
	}
	if posting == nil {
		s.errorResponse(w, http.StatusNotFound, "Posting not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

// handleListCompanyPostings returns the posting summaries of a company,
// newest first, each with its application count.
func (s *Server) handleListCompanyPostings(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	postings, err := s.store.PostingsByCompany(r.Context(), companyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list postings")
		return
	}
	if postings == nil {
		postings = []types.PostingSummary{}
	}

	s.jsonResponse(w, http.StatusOK, postings)
}

// handleListPostingTitles returns the id/title pairs of a company's postings
// for picker widgets.
func (s *Server) handleListPostingTitles(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	titles, err := s.store.PostingTitlesByCompany(r.Context(), companyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list posting titles")
		return
	}
	if titles == nil {
		titles = []types.PostingTitle{}
	}

	s.jsonResponse(w, http.StatusOK, titles)
}
