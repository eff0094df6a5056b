package screening

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/types"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

// baseRequirements is a requirement set a solid mid-career candidate meets
// exactly.
func baseRequirements() RequirementSet {
	return RequirementSet{
		Qualification:        "Bachelor",
		Experience:           types.Range{Min: 2, Max: 5},
		Languages:            []string{"english", "malay"},
		TechnicalSkills:      []string{"go"},
		SoftSkills:           []string{"communication"},
		Gender:               types.GenderAll,
		RejectedApplications: []uuid.UUID{},
	}
}

func qualifiedResume() *types.Resume {
	return &types.Resume{
		Education: []types.Education{
			{Degree: "Bachelor of Computer Science", Date: types.DateRange{From: "2017", To: "2021"}},
		},
		Experience: []types.Experience{
			{Role: "Engineer", Date: types.DateRange{From: "2022-05-01", To: "Present"}},
		},
		Languages: []types.Capability{
			{Name: "English", Level: "Fluent"},
			{Name: "Malay", Level: "Native"},
		},
		TechnicalSkills: []types.Capability{{Name: "Go"}},
		SoftSkills:      []types.Capability{{Name: "Communication"}},
	}
}

func classifyResume(t *testing.T, resume *types.Resume, gender types.Gender, req RequirementSet) Classification {
	t.Helper()
	c := Candidate{
		ApplicationID: uuid.New(),
		ApplicantID:   uuid.New(),
		Gender:        gender,
		Resume:        resume,
		CreatedAt:     testNow,
	}
	return Classify(c, Project(resume, testNow), req)
}

func TestQualificationLadderOrder(t *testing.T) {
	degrees := []string{"SPM", "Diploma in IT", "Bachelor of Science", "Master of Engineering", "PhD in Physics"}

	previous := -1
	for _, degree := range degrees {
		rung := qualificationRung(degree)
		assert.Greater(t, rung, previous, "expected %q above the previous rung", degree)
		previous = rung
	}
}

func TestQualificationRungUnrecognized(t *testing.T) {
	assert.Equal(t, -1, qualificationRung("Certified Scrum Shepherd"))
	assert.Equal(t, -1, qualificationRung(""))
}

func TestClassifyQualified(t *testing.T) {
	result := classifyResume(t, qualifiedResume(), types.GenderMale, baseRequirements())

	assert.Equal(t, TierQualified, result.Tier)
	assert.Equal(t, ScoreVector{}, result.Scores)
}

func TestClassifyOverqualifiedByDegree(t *testing.T) {
	resume := qualifiedResume()
	resume.Education = []types.Education{
		{Degree: "PhD in Computer Science", Date: types.DateRange{From: "2015", To: "2021"}},
	}

	result := classifyResume(t, resume, types.GenderMale, baseRequirements())

	assert.Equal(t, TierOverqualified, result.Tier)
	assert.Equal(t, 1, result.Scores.Qualification)
}

func TestClassifyOverqualifiedByExperience(t *testing.T) {
	resume := qualifiedResume()
	resume.Experience = []types.Experience{
		{Role: "Engineer", Date: types.DateRange{From: "2013-01-01", To: "Present"}},
	}

	result := classifyResume(t, resume, types.GenderMale, baseRequirements())

	assert.Equal(t, TierOverqualified, result.Tier)
	assert.Equal(t, 1, result.Scores.Experience)
}

func TestClassifyUnderqualifiedQualificationTakesPrecedence(t *testing.T) {
	// Both qualification and experience fall short; the tier must come from
	// the qualification dimension, which is scanned first.
	resume := &types.Resume{
		Education: []types.Education{
			{Degree: "SPM", Date: types.DateRange{From: "2022", To: "2023"}},
		},
		Experience: []types.Experience{
			{Role: "Intern", Date: types.DateRange{From: "2024-01-01", To: "Present"}},
		},
		Languages:       qualifiedResume().Languages,
		TechnicalSkills: qualifiedResume().TechnicalSkills,
		SoftSkills:      qualifiedResume().SoftSkills,
	}

	result := classifyResume(t, resume, types.GenderMale, baseRequirements())

	assert.Equal(t, TierUnderqualified, result.Tier)
	assert.Equal(t, -1, result.Scores.Qualification)
	assert.Equal(t, -1, result.Scores.Experience)
}

func TestClassifyUnderqualifiedBeatsOverqualified(t *testing.T) {
	// A -1 on an earlier dimension wins over a +1 on a later one.
	resume := qualifiedResume()
	resume.Education = []types.Education{
		{Degree: "SPM", Date: types.DateRange{From: "2010", To: "2011"}},
	}
	resume.Experience = []types.Experience{
		{Role: "Engineer", Date: types.DateRange{From: "2010-01-01", To: "Present"}},
	}

	result := classifyResume(t, resume, types.GenderMale, baseRequirements())

	assert.Equal(t, TierUnderqualified, result.Tier)
	assert.Equal(t, -1, result.Scores.Qualification)
	assert.Equal(t, 1, result.Scores.Experience)
}

func TestClassifyForcedRejectionWins(t *testing.T) {
	req := baseRequirements()
	candidate := Candidate{
		ApplicationID: uuid.New(),
		Gender:        types.GenderMale,
		Resume:        qualifiedResume(),
		CreatedAt:     testNow,
	}
	req.RejectedApplications = []uuid.UUID{candidate.ApplicationID}

	result := Classify(candidate, Project(candidate.Resume, testNow), req)

	assert.Equal(t, TierRejected, result.Tier)
	assert.Equal(t, ScoreVector{}, result.Scores, "forced rejections skip scoring")
}

func TestClassifyMonthCutoff(t *testing.T) {
	req := baseRequirements()
	req.Cutoff = &MonthCutoff{Year: 2025, Month: time.May}

	candidate := Candidate{
		ApplicationID: uuid.New(),
		Gender:        types.GenderMale,
		Resume:        qualifiedResume(),
		CreatedAt:     time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
	}
	result := Classify(candidate, Project(candidate.Resume, testNow), req)
	assert.Equal(t, TierUnderqualified, result.Tier)

	// Created in the cutoff month itself passes the gate.
	candidate.CreatedAt = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	result = Classify(candidate, Project(candidate.Resume, testNow), req)
	assert.Equal(t, TierQualified, result.Tier)
}

func TestClassifyGenderMismatch(t *testing.T) {
	req := baseRequirements()
	req.Gender = types.GenderFemale

	result := classifyResume(t, qualifiedResume(), types.GenderMale, req)

	assert.Equal(t, TierUnderqualified, result.Tier)
	assert.Equal(t, -1, result.Scores.Gender)
}

func TestScoreGenderNeverExceeds(t *testing.T) {
	assert.Equal(t, 0, scoreGender(types.GenderFemale, types.GenderFemale))
	assert.Equal(t, 0, scoreGender(types.GenderMale, types.GenderAll))
	assert.Equal(t, 0, scoreGender("", ""))
	assert.Equal(t, -1, scoreGender(types.GenderMale, types.GenderFemale))
}

func TestScoreCoverageNeverExceeds(t *testing.T) {
	// Extra capabilities beyond the requirement never push the score past 0.
	have := []types.Capability{
		{Name: "Go"}, {Name: "Rust"}, {Name: "Python"}, {Name: "Kubernetes"},
	}
	assert.Equal(t, 0, scoreCoverage([]string{"go"}, have))
}

func TestScoreCoverageEmptyRequirement(t *testing.T) {
	assert.Equal(t, 0, scoreCoverage(nil, nil))
	assert.Equal(t, 0, scoreCoverage([]string{}, []types.Capability{{Name: "Go"}}))
}

func TestScoreCoveragePartialMiss(t *testing.T) {
	have := []types.Capability{{Name: "English"}}
	assert.Equal(t, -1, scoreCoverage([]string{"english", "malay"}, have))
}

func TestScoreCoverageCaseInsensitive(t *testing.T) {
	have := []types.Capability{{Name: "ENGLISH"}, {Name: "malay"}}
	assert.Equal(t, 0, scoreCoverage([]string{"English", "Malay"}, have))
}

func TestClassifyUnrecognizedDegree(t *testing.T) {
	resume := qualifiedResume()
	resume.Education = []types.Education{
		{Degree: "Grand Wizard of Spreadsheets", Date: types.DateRange{From: "2017", To: "2021"}},
	}

	result := classifyResume(t, resume, types.GenderMale, baseRequirements())

	assert.Equal(t, TierUnderqualified, result.Tier)
	assert.Equal(t, -1, result.Scores.Qualification)
}

func TestClassifyUnknownRequirementLabel(t *testing.T) {
	// An unrecognized requirement sits below the ladder, so any recognized
	// degree exceeds it.
	req := baseRequirements()
	req.Qualification = "Certificate of Excellence"

	result := classifyResume(t, qualifiedResume(), types.GenderMale, req)

	assert.Equal(t, TierOverqualified, result.Tier)
	assert.Equal(t, 1, result.Scores.Qualification)
}

func TestClassifyMissingResume(t *testing.T) {
	req := baseRequirements()
	req.Experience = types.Range{Min: 0, Max: 5}

	result := classifyResume(t, nil, types.GenderMale, req)

	assert.Equal(t, TierUnderqualified, result.Tier)
	assert.Equal(t, -1, result.Scores.Qualification)
	assert.Equal(t, 0, result.Scores.Experience, "zero experience within range scores 0")
	assert.Equal(t, -1, result.Scores.Languages)
}

func TestBeforeCutoffIgnoresZeroCutoff(t *testing.T) {
	assert.False(t, beforeCutoff(testNow, MonthCutoff{}))
	assert.False(t, beforeCutoff(testNow, MonthCutoff{Year: 2026}))
	assert.False(t, beforeCutoff(testNow, MonthCutoff{Month: time.December}))
}
