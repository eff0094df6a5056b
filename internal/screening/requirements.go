// Package screening implements the applicant-filtering and
// qualification-scoring engine: it partitions a posting's application pool
// into qualification tiers using per-dimension scoring.
package screening

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/types"
)

// MonthCutoff gates applications by creation month: anything created strictly
// before the cutoff (year/month granularity) is treated as underqualified
// without entering the dimension precedence. A zero cutoff is ignored.
type MonthCutoff struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// RequirementSet is the effective criteria a posting's applications are
// screened against. Capability lists hold lower-cased names; levels are never
// compared. RejectedApplications forces those ids into the rejected tier
// before any scoring happens.
type RequirementSet struct {
	Qualification        string       `json:"qualification"`
	Experience           types.Range  `json:"experience"`
	Languages            []string     `json:"languages"`
	TechnicalSkills      []string     `json:"technicalSkills"`
	SoftSkills           []string     `json:"softSkills"`
	Gender               types.Gender `json:"gender"`
	RejectedApplications []uuid.UUID  `json:"rejectedApplications"`
	Cutoff               *MonthCutoff `json:"date,omitempty"`
}

// ResolveRequirements builds the effective requirement set: a non-nil
// override is used verbatim, otherwise defaults are derived from the posting.
func ResolveRequirements(posting *types.Posting, override *RequirementSet) RequirementSet {
	if override != nil {
		return *override
	}

	return RequirementSet{
		Qualification:        posting.Qualification,
		Experience:           posting.Experience,
		Languages:            lowerNames(posting.Languages),
		TechnicalSkills:      lowerNames(posting.TechnicalSkills),
		SoftSkills:           lowerNames(posting.SoftSkills),
		Gender:               posting.Gender,
		RejectedApplications: []uuid.UUID{},
	}
}

// lowerNames extracts lower-cased capability names, dropping blanks.
func lowerNames(caps []types.Capability) []string {
	names := make([]string, 0, len(caps))
	for _, c := range caps {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
