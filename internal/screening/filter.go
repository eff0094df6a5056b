package screening

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talenthub/internal/types"
)

// Store is the read-side query surface the filter engine needs. Lookups that
// find nothing return a nil record and no error.
type Store interface {
	PostingByID(ctx context.Context, id uuid.UUID) (*types.Posting, error)
	NewApplicationsByPosting(ctx context.Context, postingID uuid.UUID) ([]types.ScreeningApplication, error)
}

// Engine orchestrates the screening pass for one posting: load, project,
// classify, bucket. It holds no mutable state across calls and is safe for
// concurrent use.
type Engine struct {
	store Store
	now   func() time.Time
}

// NewEngine creates a filter engine over the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// ResumeView is a value copy of the resume snapshot with the template block
// stripped and the derived screening fields attached.
type ResumeView struct {
	Education            []types.Education  `json:"education,omitempty"`
	Experience           []types.Experience `json:"experience,omitempty"`
	Languages            []types.Capability `json:"languages,omitempty"`
	TechnicalSkills      []types.Capability `json:"technicalSkills,omitempty"`
	SoftSkills           []types.Capability `json:"softSkills,omitempty"`
	TotalExperience      int                `json:"totalExperience"`
	HighestQualification string             `json:"highestQualification,omitempty"`
}

// ApplicantView carries the applicant fields that are safe to return to the
// review UI.
type ApplicantView struct {
	ID     uuid.UUID    `json:"id"`
	Gender types.Gender `json:"gender"`
	Resume ResumeView   `json:"resume"`
}

// Entry is the display record placed into a tier bucket.
type Entry struct {
	ApplicationID uuid.UUID     `json:"applicationId"`
	Applicant     ApplicantView `json:"applicant"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// FilterOptions is the UI filter metadata derived from the pool: the
// capability unions and the observed experience bounds.
type FilterOptions struct {
	TechnicalSkills []string    `json:"technicalSkills"`
	SoftSkills      []string    `json:"softSkills"`
	Languages       []string    `json:"languages"`
	Experience      types.Range `json:"experience"`
}

// FilterResult is the full screening outcome for one posting.
type FilterResult struct {
	Overqualified  []Entry        `json:"overqualified"`
	Underqualified []Entry        `json:"underqualified"`
	Qualified      []Entry        `json:"qualified"`
	Rejected       []Entry        `json:"rejected"`
	Probable       []Entry        `json:"probable"`
	Requirements   RequirementSet `json:"requirements"`
	Options        FilterOptions  `json:"options"`
}

// FilterApplications screens every New application of the posting against the
// effective requirement set (override verbatim when non-nil, otherwise the
// posting's own criteria) and buckets the pool into tiers.
//
// A missing posting aborts with PostingNotFoundError. Applicants without a
// resume degrade to zero/empty contributions and stay in the batch.
func (e *Engine) FilterApplications(ctx context.Context, postingID uuid.UUID, override *RequirementSet) (*FilterResult, error) {
	var (
		posting *types.Posting
		pool    []types.ScreeningApplication
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := e.store.PostingByID(gctx, postingID)
		posting = p
		return err
	})
	g.Go(func() error {
		rows, err := e.store.NewApplicationsByPosting(gctx, postingID)
		pool = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if posting == nil {
		return nil, &PostingNotFoundError{PostingID: postingID}
	}

	requirements := ResolveRequirements(posting, override)
	now := e.now()

	result := &FilterResult{
		Overqualified:  []Entry{},
		Underqualified: []Entry{},
		Qualified:      []Entry{},
		Rejected:       []Entry{},
		Probable:       []Entry{},
		Requirements:   requirements,
	}

	experienceBounds := types.Range{}
	for i, app := range pool {
		candidate := Candidate{
			ApplicationID: app.ID,
			ApplicantID:   app.Applicant.ID,
			Gender:        app.Applicant.Gender,
			Resume:        app.Applicant.Resume,
			CreatedAt:     app.CreatedAt,
		}
		projection := Project(app.Applicant.Resume, now)
		classification := Classify(candidate, projection, requirements)

		entry := Entry{
			ApplicationID: app.ID,
			Applicant:     applicantView(app.Applicant, projection),
			CreatedAt:     app.CreatedAt,
		}

		switch classification.Tier {
		case TierRejected:
			result.Rejected = append(result.Rejected, entry)
		case TierOverqualified:
			result.Overqualified = append(result.Overqualified, entry)
		case TierUnderqualified:
			result.Underqualified = append(result.Underqualified, entry)
		default:
			result.Qualified = append(result.Qualified, entry)
		}

		if i == 0 {
			experienceBounds = types.Range{Min: projection.TotalExperience, Max: projection.TotalExperience}
		} else {
			experienceBounds.Min = min(experienceBounds.Min, projection.TotalExperience)
			experienceBounds.Max = max(experienceBounds.Max, projection.TotalExperience)
		}
	}

	// A lone survivor across the scored tiers is flagged probable for the UI.
	if len(result.Qualified)+len(result.Underqualified)+len(result.Overqualified) == 1 {
		result.Probable = append(result.Probable, result.Qualified...)
		result.Probable = append(result.Probable, result.Underqualified...)
		result.Probable = append(result.Probable, result.Overqualified...)
	}

	result.Options = FilterOptions{
		TechnicalSkills: capabilityOptions(pool, func(r *types.Resume) []types.Capability { return r.TechnicalSkills }, lowerNames(posting.TechnicalSkills)),
		SoftSkills:      capabilityOptions(pool, func(r *types.Resume) []types.Capability { return r.SoftSkills }, lowerNames(posting.SoftSkills)),
		Languages:       capabilityOptions(pool, func(r *types.Resume) []types.Capability { return r.Languages }, lowerNames(posting.Languages)),
		Experience:      experienceBounds,
	}

	return result, nil
}

// applicantView builds the display record: a deep value copy of the snapshot
// without the template block, annotated with the projected fields.
func applicantView(a types.ScreeningApplicant, p Projection) ApplicantView {
	view := ApplicantView{ID: a.ID, Gender: a.Gender}
	if a.Resume != nil {
		view.Resume = ResumeView{
			Education:       slices.Clone(a.Resume.Education),
			Experience:      slices.Clone(a.Resume.Experience),
			Languages:       slices.Clone(a.Resume.Languages),
			TechnicalSkills: slices.Clone(a.Resume.TechnicalSkills),
			SoftSkills:      slices.Clone(a.Resume.SoftSkills),
		}
	}
	view.Resume.TotalExperience = p.TotalExperience
	if p.HighestEducation != nil {
		view.Resume.HighestQualification = p.HighestEducation.Degree
	}
	return view
}

// capabilityOptions unions the lower-cased capability names seen across the
// pool with the posting's requirement list, deduplicated in first-seen order,
// blanks dropped. The posting list is always included so the UI can offer the
// original criteria even when an override narrowed them.
func capabilityOptions(pool []types.ScreeningApplication, pick func(*types.Resume) []types.Capability, fromPosting []string) []string {
	seen := make(map[string]struct{})
	options := []string{}
	add := func(name string) {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		options = append(options, name)
	}

	for _, app := range pool {
		if app.Applicant.Resume == nil {
			continue
		}
		for _, c := range pick(app.Applicant.Resume) {
			add(c.Name)
		}
	}
	for _, name := range fromPosting {
		add(name)
	}
	return options
}
