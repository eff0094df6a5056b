package types

import (
	"time"

	"github.com/google/uuid"
)

// ScreeningApplicant is the applicant slice of a screening row: identity,
// gender and the resume snapshot. Resume is nil when the applicant has not
// uploaded one; screening degrades those fields instead of failing.
type ScreeningApplicant struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Gender    Gender    `json:"gender"`
	Resume    *Resume   `json:"resume,omitempty"`
}

// PostingContext is the posting→job→company display context joined onto an
// application row.
type PostingContext struct {
	PostingID      uuid.UUID `json:"posting_id"`
	JobTitle       string    `json:"job_title"`
	EmploymentType string    `json:"employment_type"`
	CompanyID      uuid.UUID `json:"company_id"`
	CompanyName    string    `json:"company_name"`
}

// ScreeningApplication is the read-side row the filter engine consumes: one
// application joined with its applicant, resume snapshot and posting context,
// assembled by a single batched query.
type ScreeningApplication struct {
	ID        uuid.UUID          `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Status    ApplicationStatus  `json:"status"`
	Applicant ScreeningApplicant `json:"applicant"`
	Context   PostingContext     `json:"context"`
}

// ApplicationDigest is the flattened application row the analytics grouping
// works over.
type ApplicationDigest struct {
	ID             uuid.UUID  `json:"id"`
	PostingID      uuid.UUID  `json:"posting_id"`
	JobTitle       string     `json:"job_title"`
	EmploymentType string     `json:"employment_type"`
	Status         StatusType `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

// EmploymentRecord is an employee's tenure span for turnover math.
type EmploymentRecord struct {
	EmployeeID      uuid.UUID  `json:"employee_id"`
	HireDate        time.Time  `json:"hire_date"`
	TerminationDate *time.Time `json:"termination_date,omitempty"`
}
