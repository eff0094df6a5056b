package screening

import (
	"testing"
	"time"

	"github.com/jonathan/talenthub/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectNilResume(t *testing.T) {
	p := Project(nil, testNow)

	assert.Zero(t, p.TotalExperience)
	assert.Nil(t, p.HighestEducation)
}

func TestTotalExperienceSumsWholeYears(t *testing.T) {
	resume := &types.Resume{
		Experience: []types.Experience{
			{Date: types.DateRange{From: "2018-03-01", To: "2021-03-01"}}, // 3 years
			{Date: types.DateRange{From: "2021-06-15", To: "2023-06-14"}}, // 1 day short of 2
		},
	}

	p := Project(resume, testNow)

	assert.Equal(t, 4, p.TotalExperience)
}

func TestTotalExperiencePresentResolvesToNow(t *testing.T) {
	resume := &types.Resume{
		Experience: []types.Experience{
			{Date: types.DateRange{From: "2023-06-01", To: "Present"}},
		},
	}

	p := Project(resume, testNow)

	assert.Equal(t, 2, p.TotalExperience)
}

func TestTotalExperienceSkipsBadEntries(t *testing.T) {
	resume := &types.Resume{
		Experience: []types.Experience{
			{Date: types.DateRange{From: "soon", To: "later"}},            // unparseable
			{Date: types.DateRange{From: "2024-01-01", To: "2022-01-01"}}, // negative span
			{Date: types.DateRange{From: "2020-01-01"}},                   // no end date
			{Date: types.DateRange{From: "2019-01-01", To: "2021-01-01"}},
		},
	}

	p := Project(resume, testNow)

	assert.Equal(t, 2, p.TotalExperience)
}

func TestHighestEducationLatestEndWins(t *testing.T) {
	resume := &types.Resume{
		Education: []types.Education{
			{Degree: "Bachelor of Arts", Date: types.DateRange{From: "2014", To: "2018"}},
			{Degree: "Master of Science", Date: types.DateRange{From: "2019", To: "2022"}},
		},
	}

	p := Project(resume, testNow)

	require.NotNil(t, p.HighestEducation)
	assert.Equal(t, "Master of Science", p.HighestEducation.Degree)
}

func TestHighestEducationOngoingBeatsFinished(t *testing.T) {
	resume := &types.Resume{
		Education: []types.Education{
			{Degree: "Master of Science", Date: types.DateRange{From: "2019", To: "2022"}},
			{Degree: "PhD in Biology", Date: types.DateRange{From: "2023", To: "Present"}},
		},
	}

	p := Project(resume, testNow)

	require.NotNil(t, p.HighestEducation)
	assert.Equal(t, "PhD in Biology", p.HighestEducation.Degree)
}

func TestHighestEducationTieKeepsFirst(t *testing.T) {
	resume := &types.Resume{
		Education: []types.Education{
			{Degree: "Bachelor of Arts", Date: types.DateRange{From: "2014", To: "2018"}},
			{Degree: "Bachelor of Science", Date: types.DateRange{From: "2014", To: "2018"}},
		},
	}

	p := Project(resume, testNow)

	require.NotNil(t, p.HighestEducation)
	assert.Equal(t, "Bachelor of Arts", p.HighestEducation.Degree)
}

func TestHighestEducationSkipsEntriesWithoutEndDate(t *testing.T) {
	resume := &types.Resume{
		Education: []types.Education{
			{Degree: "PhD in Physics", Date: types.DateRange{From: "2020"}},
		},
	}

	p := Project(resume, testNow)

	assert.Nil(t, p.HighestEducation)
}

func TestParseResumeDateLayouts(t *testing.T) {
	for _, s := range []string{"2021", "2021-06", "2021-06-15", "2021-06-15T10:30:00Z"} {
		parsed, ok := parseResumeDate(s)
		assert.True(t, ok, "expected %q to parse", s)
		assert.Equal(t, 2021, parsed.Year())
	}

	_, ok := parseResumeDate("June 2021")
	assert.False(t, ok)
	_, ok = parseResumeDate("")
	assert.False(t, ok)
}

func TestWholeYearsAnniversaryFloor(t *testing.T) {
	from := time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, wholeYears(from, time.Date(2023, 3, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3, wholeYears(from, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, wholeYears(from, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
}
