package screening

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/types"
)

// Tier is the classification outcome for one application under a requirement
// set. Probable is a bucket on the filter result, not a tier: its members
// also live in one of the three scored tiers.
type Tier string

// Classification tiers.
const (
	TierOverqualified  Tier = "overqualified"
	TierQualified      Tier = "qualified"
	TierUnderqualified Tier = "underqualified"
	TierRejected       Tier = "rejected"
)

// ScoreVector holds the six per-dimension scores, each -1 (fails the
// requirement), 0 (meets it) or +1 (exceeds it). Gender and the three
// set-coverage dimensions can never score +1.
type ScoreVector struct {
	Qualification   int `json:"qualification"`
	Experience      int `json:"experience"`
	Gender          int `json:"gender"`
	Languages       int `json:"languages"`
	TechnicalSkills int `json:"technicalSkills"`
	SoftSkills      int `json:"softSkills"`
}

// dimensions returns the scores in the fixed precedence order. The order is
// product policy and must not be changed without product input.
func (v ScoreVector) dimensions() [6]int {
	return [6]int{v.Qualification, v.Experience, v.Gender, v.Languages, v.TechnicalSkills, v.SoftSkills}
}

// Candidate pairs one application with its applicant's attributes for
// classification.
type Candidate struct {
	ApplicationID uuid.UUID
	ApplicantID   uuid.UUID
	Gender        types.Gender
	Resume        *types.Resume
	CreatedAt     time.Time
}

// Classification is the classifier output: the tier plus the score breakdown
// kept for observability and testing.
type Classification struct {
	Tier   Tier        `json:"tier"`
	Scores ScoreVector `json:"scores"`
}

// qualificationLadder groups degree labels into ordinal rungs, lowest first.
// A free-text degree is matched by case-insensitive substring containment;
// the first rung containing a matching label wins.
var qualificationLadder = [][]string{
	{"SPM"},
	{"STPM", "A-Level", "Matriculation", "Diploma"},
	{"Degree", "Bachelor"},
	{"Master"},
	{"PhD"},
}

// qualificationRung matches a free-text degree against the ladder. Returns -1
// when no label occurs in the text.
func qualificationRung(degree string) int {
	text := strings.ToLower(degree)
	for rung, labels := range qualificationLadder {
		for _, label := range labels {
			if strings.Contains(text, strings.ToLower(label)) {
				return rung
			}
		}
	}
	return -1
}

// Classify maps one candidate to a tier under the requirement set.
//
// Precedence is fixed: a forced rejection wins outright and skips scoring,
// then the month cutoff, then the dimensions in score-vector order where the
// first -1 marks the candidate underqualified and the first +1 overqualified.
func Classify(c Candidate, p Projection, req RequirementSet) Classification {
	for _, id := range req.RejectedApplications {
		if id == c.ApplicationID {
			return Classification{Tier: TierRejected}
		}
	}

	scores := score(c, p, req)

	if req.Cutoff != nil && beforeCutoff(c.CreatedAt, *req.Cutoff) {
		return Classification{Tier: TierUnderqualified, Scores: scores}
	}

	for _, s := range scores.dimensions() {
		if s < 0 {
			return Classification{Tier: TierUnderqualified, Scores: scores}
		}
		if s > 0 {
			return Classification{Tier: TierOverqualified, Scores: scores}
		}
	}
	return Classification{Tier: TierQualified, Scores: scores}
}

func score(c Candidate, p Projection, req RequirementSet) ScoreVector {
	var have struct {
		languages, technical, soft []types.Capability
	}
	if c.Resume != nil {
		have.languages = c.Resume.Languages
		have.technical = c.Resume.TechnicalSkills
		have.soft = c.Resume.SoftSkills
	}

	return ScoreVector{
		Qualification:   scoreQualification(p.HighestEducation, req.Qualification),
		Experience:      scoreExperience(p.TotalExperience, req.Experience),
		Gender:          scoreGender(c.Gender, req.Gender),
		Languages:       scoreCoverage(req.Languages, have.languages),
		TechnicalSkills: scoreCoverage(req.TechnicalSkills, have.technical),
		SoftSkills:      scoreCoverage(req.SoftSkills, have.soft),
	}
}

// scoreQualification compares the applicant's highest degree against the
// required qualification on the ladder. No education entry or an
// unrecognizable degree is a hard miss, not neutral. An unrecognized
// requirement label sits below the ladder, so any recognized degree exceeds
// it.
func scoreQualification(highest *types.Education, required string) int {
	if highest == nil {
		return -1
	}
	rung := qualificationRung(highest.Degree)
	if rung < 0 {
		return -1
	}
	requiredRung := qualificationRung(required)
	switch {
	case rung < requiredRung:
		return -1
	case rung > requiredRung:
		return 1
	default:
		return 0
	}
}

func scoreExperience(totalYears int, required types.Range) int {
	switch {
	case totalYears < required.Min:
		return -1
	case totalYears > required.Max:
		return 1
	default:
		return 0
	}
}

// scoreGender never scores +1: there is no overqualified direction for a
// gender constraint.
func scoreGender(applicant, required types.Gender) int {
	if required == types.GenderAll || required == "" {
		return 0
	}
	if applicant == required {
		return 0
	}
	return -1
}

// scoreCoverage checks that every required name is present in the candidate's
// capability set, matching names case-insensitively. With no requirement the
// dimension is trivially met. Coverage is bounded by the requirement size, so
// +1 is structurally unreachable here.
func scoreCoverage(required []string, have []types.Capability) int {
	if len(required) == 0 {
		return 0
	}

	names := make(map[string]struct{}, len(have))
	for _, c := range have {
		names[strings.ToLower(c.Name)] = struct{}{}
	}

	covered := 0
	for _, want := range required {
		if _, ok := names[strings.ToLower(want)]; ok {
			covered++
		}
	}

	if covered == len(required) {
		return 0
	}
	return -1
}

// beforeCutoff reports whether createdAt falls strictly before the cutoff
// month. Incomplete cutoffs are ignored.
func beforeCutoff(createdAt time.Time, cutoff MonthCutoff) bool {
	if cutoff.Year == 0 || cutoff.Month == 0 {
		return false
	}
	if createdAt.Year() != cutoff.Year {
		return createdAt.Year() < cutoff.Year
	}
	return createdAt.Month() < cutoff.Month
}
