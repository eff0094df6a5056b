package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/analytics"
	"github.com/jonathan/talenthub/internal/screening"
	"github.com/jonathan/talenthub/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore implements Store in memory for handler tests.
type fakeStore struct {
	fakeAccountStore
	posting        *types.Posting
	summaries      []types.PostingSummary
	titles         []types.PostingTitle
	pool           []types.ScreeningApplication
	digests        []types.ApplicationDigest
	records        []types.EmploymentRecord
	statusUpdates  map[uuid.UUID]types.ApplicationStatus
	knownApps      map[uuid.UUID]bool
	digestStatuses []types.StatusType
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		fakeAccountStore: fakeAccountStore{byEmail: make(map[string]*types.Account)},
		statusUpdates:    make(map[uuid.UUID]types.ApplicationStatus),
		knownApps:        make(map[uuid.UUID]bool),
	}
}

func (s *fakeStore) PostingByID(_ context.Context, id uuid.UUID) (*types.Posting, error) {
	if s.posting == nil || s.posting.ID != id {
		return nil, nil
	}
	return s.posting, nil
}

func (s *fakeStore) PostingsByCompany(_ context.Context, _ uuid.UUID) ([]types.PostingSummary, error) {
	return s.summaries, nil
}

func (s *fakeStore) PostingTitlesByCompany(_ context.Context, _ uuid.UUID) ([]types.PostingTitle, error) {
	return s.titles, nil
}

func (s *fakeStore) NewApplicationsByPosting(_ context.Context, _ uuid.UUID) ([]types.ScreeningApplication, error) {
	return s.pool, nil
}

func (s *fakeStore) ApplicationDigests(_ context.Context, _ uuid.UUID, statuses []types.StatusType) ([]types.ApplicationDigest, error) {
	s.digestStatuses = statuses
	return s.digests, nil
}

func (s *fakeStore) UpdateApplicationStatus(_ context.Context, applicationID uuid.UUID, status types.ApplicationStatus) error {
	if !s.knownApps[applicationID] {
		return &dbNotFound{applicationID}
	}
	s.statusUpdates[applicationID] = status
	return nil
}

func (s *fakeStore) EmploymentRecords(_ context.Context, _ uuid.UUID, _ time.Time) ([]types.EmploymentRecord, error) {
	return s.records, nil
}

// dbNotFound mirrors the store's not-found error shape without a database.
type dbNotFound struct{ id uuid.UUID }

func (e *dbNotFound) Error() string { return "application not found: " + e.id.String() }

func testServer(store *fakeStore) *Server {
	return &Server{
		store:  store,
		engine: screening.NewEngine(store),
	}
}

func TestHandleGetPosting(t *testing.T) {
	store := newFakeStore()
	store.posting = &types.Posting{
		ID:            uuid.New(),
		Qualification: "Bachelor",
		Status:        "open",
	}
	srv := testServer(store)

	req := httptest.NewRequest(http.MethodGet, "/postings/"+store.posting.ID.String(), nil)
	req.SetPathValue("id", store.posting.ID.String())
	w := httptest.NewRecorder()

	srv.handleGetPosting(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var posting types.Posting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posting))
	assert.Equal(t, store.posting.ID, posting.ID)
	assert.Equal(t, "Bachelor", posting.Qualification)
}

func TestHandleGetPosting_NotFound(t *testing.T) {
	srv := testServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/postings/x", nil)
	req.SetPathValue("id", uuid.New().String())
	w := httptest.NewRecorder()

	srv.handleGetPosting(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetPosting_InvalidID(t *testing.T) {
	srv := testServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/postings/nope", nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()

	srv.handleGetPosting(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleListCompanyPostings_EmptyList(t *testing.T) {
	srv := testServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/companies/x/postings", nil)
	req.SetPathValue("id", uuid.New().String())
	w := httptest.NewRecorder()

	srv.handleListCompanyPostings(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String(), "no rows serializes as an empty array")
}

func TestHandleScreenApplications(t *testing.T) {
	store := newFakeStore()
	store.posting = &types.Posting{
		ID:            uuid.New(),
		Qualification: "Bachelor",
		Experience:    types.Range{Min: 0, Max: 10},
	}
	store.pool = []types.ScreeningApplication{
		{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			Applicant: types.ScreeningApplicant{
				ID: uuid.New(),
				Resume: &types.Resume{
					Education: []types.Education{
						{Degree: "Bachelor of IT", Date: types.DateRange{From: "2014", To: "2018"}},
					},
				},
			},
		},
	}
	srv := testServer(store)

	req := httptest.NewRequest(http.MethodPost, "/postings/x/screening", nil)
	req.SetPathValue("id", store.posting.ID.String())
	w := httptest.NewRecorder()

	srv.handleScreenApplications(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result screening.FilterResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Qualified, 1)
	assert.Len(t, result.Probable, 1)
}

func TestHandleScreenApplications_Override(t *testing.T) {
	store := newFakeStore()
	store.posting = &types.Posting{
		ID:            uuid.New(),
		Qualification: "Bachelor",
		Experience:    types.Range{Min: 0, Max: 10},
	}
	srv := testServer(store)

	body := `{"qualification": "Master", "experience": {"min": 5, "max": 10}, "technicalSkills": ["GO", " "]}`
	req := httptest.NewRequest(http.MethodPost, "/postings/x/screening", bytes.NewBufferString(body))
	req.SetPathValue("id", store.posting.ID.String())
	w := httptest.NewRecorder()

	srv.handleScreenApplications(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result screening.FilterResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Master", result.Requirements.Qualification)
	assert.Equal(t, []string{"go"}, result.Requirements.TechnicalSkills, "override names are normalized")
}

func TestHandleScreenApplications_MalformedOverride(t *testing.T) {
	store := newFakeStore()
	store.posting = &types.Posting{ID: uuid.New()}
	srv := testServer(store)

	body := `{"experience": "plenty"}`
	req := httptest.NewRequest(http.MethodPost, "/postings/x/screening", bytes.NewBufferString(body))
	req.SetPathValue("id", store.posting.ID.String())
	w := httptest.NewRecorder()

	srv.handleScreenApplications(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleScreenApplications_PostingMissing(t *testing.T) {
	srv := testServer(newFakeStore())

	req := httptest.NewRequest(http.MethodPost, "/postings/x/screening", nil)
	req.SetPathValue("id", uuid.New().String())
	w := httptest.NewRecorder()

	srv.handleScreenApplications(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleUpdateApplicationStatus(t *testing.T) {
	store := newFakeStore()
	applicationID := uuid.New()
	store.knownApps[applicationID] = true
	srv := testServer(store)

	body := `{"statusType": "Rejected", "reason": {"category": "Underqualified", "description": "below requirements"}}`
	req := httptest.NewRequest(http.MethodPatch, "/applications/x/status", bytes.NewBufferString(body))
	req.SetPathValue("id", applicationID.String())
	w := httptest.NewRecorder()

	srv.handleUpdateApplicationStatus(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	updated := store.statusUpdates[applicationID]
	assert.Equal(t, types.StatusRejected, updated.StatusType)
	require.NotNil(t, updated.Reason)
	assert.Equal(t, types.RejectionUnderqualified, updated.Reason.Category)
	assert.False(t, updated.StatusDate.IsZero(), "status date is stamped server-side")
}

func TestHandleUpdateApplicationStatus_UnknownStatus(t *testing.T) {
	srv := testServer(newFakeStore())

	body := `{"statusType": "Pondering"}`
	req := httptest.NewRequest(http.MethodPatch, "/applications/x/status", bytes.NewBufferString(body))
	req.SetPathValue("id", uuid.New().String())
	w := httptest.NewRecorder()

	srv.handleUpdateApplicationStatus(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleTurnover(t *testing.T) {
	store := newFakeStore()
	hire := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	leave := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	store.records = []types.EmploymentRecord{
		{EmployeeID: uuid.New(), HireDate: hire},
		{EmployeeID: uuid.New(), HireDate: hire, TerminationDate: &leave},
	}
	srv := testServer(store)

	req := httptest.NewRequest(http.MethodGet, "/companies/x/analytics/turnover?from=2024-01-01&to=2024-12-31", nil)
	req.SetPathValue("id", uuid.New().String())
	w := httptest.NewRecorder()

	srv.handleTurnover(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var report analytics.TurnoverReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 2, report.StartHeadcount)
	assert.Equal(t, 1, report.EndHeadcount)
	assert.Equal(t, 1, report.Left)
	assert.True(t, report.RateDefined)
}

func TestHandleTurnover_BadDate(t *testing.T) {
	srv := testServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/companies/x/analytics/turnover?from=yesterday", nil)
	req.SetPathValue("id", uuid.New().String())
	w := httptest.NewRecorder()

	srv.handleTurnover(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleApplicationOptions_CompletedFilter(t *testing.T) {
	store := newFakeStore()
	store.digests = []types.ApplicationDigest{
		{
			ID:             uuid.New(),
			PostingID:      uuid.New(),
			JobTitle:       "Engineer",
			EmploymentType: "Full-time",
			Status:         types.StatusAccepted,
			CreatedAt:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	srv := testServer(store)

	req := httptest.NewRequest(http.MethodGet, "/companies/x/analytics/applications/options?status=Completed", nil)
	req.SetPathValue("id", uuid.New().String())
	w := httptest.NewRecorder()

	srv.handleApplicationOptions(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, types.CompletedStatuses, store.digestStatuses,
		"the Completed umbrella expands before hitting the store")

	var options analytics.SeriesOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &options))
	assert.Equal(t, []string{"2024"}, options.Years)
}

func TestHandleApplicationSeries(t *testing.T) {
	store := newFakeStore()
	posting := uuid.New()
	store.digests = []types.ApplicationDigest{
		{ID: uuid.New(), PostingID: posting, JobTitle: "Engineer", EmploymentType: "Full-time",
			Status: types.StatusNew, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), PostingID: posting, JobTitle: "Engineer", EmploymentType: "Full-time",
			Status: types.StatusNew, CreatedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	srv := testServer(store)

	body, err := json.Marshal(SeriesRequest{
		Years:           []string{"2024"},
		EmploymentTypes: []string{"Full-time"},
		Postings:        []uuid.UUID{posting},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/companies/x/analytics/applications/series", bytes.NewBuffer(body))
	req.SetPathValue("id", uuid.New().String())
	w := httptest.NewRecorder()

	srv.handleApplicationSeries(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var series []analytics.MonthCount
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	require.Len(t, series, 12)
	assert.Equal(t, analytics.MonthCount{Month: "March", Value: 2}, series[2])
}
