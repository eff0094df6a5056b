// Package types provides type definitions for the domain records shared throughout the talenthub system.
package types

import "strings"

// PresentSentinel is the literal end-date value marking an ongoing entry.
const PresentSentinel = "Present"

// DateRange bounds a resume entry. Values are date strings as submitted by the
// applicant ("2021-06", "2021-06-01" or "2021"); the sentinel "Present" on To
// marks an ongoing entry.
type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Ongoing reports whether the range is still open.
func (d DateRange) Ongoing() bool {
	return strings.EqualFold(strings.TrimSpace(d.To), PresentSentinel)
}

// Education is one education entry of a resume snapshot.
type Education struct {
	Degree      string    `json:"degree"`
	Institution string    `json:"institution,omitempty"`
	Date        DateRange `json:"date"`
}

// Experience is one employment entry of a resume snapshot.
type Experience struct {
	Role     string    `json:"role,omitempty"`
	Employer string    `json:"employer,omitempty"`
	Date     DateRange `json:"date"`
}

// Capability is a named language or skill with an optional proficiency level.
// Screening matches capabilities by name only; the level is display metadata.
type Capability struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// ResumeTemplate carries the presentation settings an applicant picked for
// rendering. It is stripped from every screening payload.
type ResumeTemplate struct {
	Name    string         `json:"name,omitempty"`
	Styling map[string]any `json:"styling,omitempty"`
}

// Resume is an applicant's resume snapshot, stored as a single JSONB document.
type Resume struct {
	Education       []Education     `json:"education,omitempty"`
	Experience      []Experience    `json:"experience,omitempty"`
	Languages       []Capability    `json:"languages,omitempty"`
	TechnicalSkills []Capability    `json:"technicalSkills,omitempty"`
	SoftSkills      []Capability    `json:"softSkills,omitempty"`
	Template        *ResumeTemplate `json:"template,omitempty"`
}
