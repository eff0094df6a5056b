package types

import (
	"time"

	"github.com/google/uuid"
)

// Range is an inclusive integer interval (experience years, salary).
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Job is the position a posting publishes, owned by a company.
type Job struct {
	ID             uuid.UUID `json:"id"`
	CompanyID      uuid.UUID `json:"company_id"`
	Title          string    `json:"title"`
	EmploymentType string    `json:"employment_type"`
	Environment    string    `json:"environment,omitempty"`
	Industry       string    `json:"industry,omitempty"`
}

// Posting is a published job opening with its screening requirements.
type Posting struct {
	ID              uuid.UUID    `json:"id"`
	JobID           uuid.UUID    `json:"job_id"`
	Description     string       `json:"description"`
	Quota           int          `json:"quota,omitempty"`
	Status          string       `json:"status"` // open or closed
	Tags            []string     `json:"tags,omitempty"`
	SalaryRange     Range        `json:"salary_range"`
	Qualification   string       `json:"qualification"`
	Experience      Range        `json:"experience"`
	Languages       []Capability `json:"languages,omitempty"`
	TechnicalSkills []Capability `json:"technical_skills,omitempty"`
	SoftSkills      []Capability `json:"soft_skills,omitempty"`
	Gender          Gender       `json:"gender"`
	CreatedAt       time.Time    `json:"created_at"`
	Deadline        *time.Time   `json:"deadline,omitempty"`

	// Job is the joined position record when the read asked for it.
	Job *Job `json:"job,omitempty"`
}

// PostingSummary is the list view of a posting with its application count.
type PostingSummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	Applications int       `json:"applications"`
	CreatedAt    time.Time `json:"created_at"`
}

// PostingTitle is the minimal picker entry for a company's postings.
type PostingTitle struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}
