package screening

import (
	"strings"
	"time"

	"github.com/jonathan/talenthub/internal/types"
)

// Projection carries the fields derived from a resume snapshot before
// scoring. It is computed on a working copy; the stored snapshot is never
// touched.
type Projection struct {
	// TotalExperience is the sum of whole years across all experience
	// entries. Entries with unparseable dates or a negative span contribute
	// nothing.
	TotalExperience int

	// HighestEducation is the education entry with the latest effective end
	// date ("Present" resolving to now). Entries without a usable end date
	// are excluded from the pick; ties keep the first entry. Nil when no
	// entry qualifies.
	HighestEducation *types.Education
}

// Project derives the computed screening fields from a resume snapshot.
// A nil resume yields the zero projection.
func Project(resume *types.Resume, now time.Time) Projection {
	if resume == nil {
		return Projection{}
	}
	return Projection{
		TotalExperience:  totalExperienceYears(resume.Experience, now),
		HighestEducation: highestEducation(resume.Education, now),
	}
}

func totalExperienceYears(entries []types.Experience, now time.Time) int {
	total := 0
	for _, e := range entries {
		from, ok := parseResumeDate(e.Date.From)
		if !ok {
			continue
		}
		to, ok := effectiveEnd(e.Date, now)
		if !ok {
			continue
		}
		if years := wholeYears(from, to); years > 0 {
			total += years
		}
	}
	return total
}

func highestEducation(entries []types.Education, now time.Time) *types.Education {
	var best *types.Education
	var bestEnd time.Time
	for _, e := range entries {
		end, ok := effectiveEnd(e.Date, now)
		if !ok {
			continue
		}
		if best == nil || end.After(bestEnd) {
			entry := e
			best = &entry
			bestEnd = end
		}
	}
	return best
}

// effectiveEnd resolves a range's end instant: "Present" means now, anything
// else must parse as a date.
func effectiveEnd(d types.DateRange, now time.Time) (time.Time, bool) {
	if d.Ongoing() {
		return now, true
	}
	return parseResumeDate(d.To)
}

// resumeDateLayouts are the accepted shapes for resume date strings, most
// specific first.
var resumeDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01",
	"2006",
}

func parseResumeDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range resumeDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// wholeYears is the number of complete years between from and to, negative
// when to precedes from.
func wholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	if from.AddDate(years, 0, 0).After(to) {
		years--
	}
	return years
}
