package types

import "time"

// Gender is a posting constraint or applicant attribute.
type Gender string

// Gender values. GenderAll on a posting accepts every applicant.
const (
	GenderAll    Gender = "All"
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// StatusType is the lifecycle state of an application.
type StatusType string

// Application lifecycle states. Only StatusNew applications are screened.
const (
	StatusNew       StatusType = "New"
	StatusViewed    StatusType = "Viewed"
	StatusInterview StatusType = "Interview"
	StatusRejected  StatusType = "Rejected"
	StatusAccepted  StatusType = "Accepted"
	StatusWithdrawn StatusType = "Withdrawn"
	StatusOther     StatusType = "Other"
	StatusClosed    StatusType = "Closed"
	StatusDeleted   StatusType = "Deleted"
)

// CompletedStatuses is the umbrella the analytics endpoints expand the
// "Completed" query value into.
var CompletedStatuses = []StatusType{StatusAccepted, StatusRejected, StatusWithdrawn, StatusClosed}

// ValidStatusType reports whether s is one of the known lifecycle states.
func ValidStatusType(s StatusType) bool {
	switch s {
	case StatusNew, StatusViewed, StatusInterview, StatusRejected, StatusAccepted,
		StatusWithdrawn, StatusOther, StatusClosed, StatusDeleted:
		return true
	}
	return false
}

// RejectionCategory classifies why an application was moved to Rejected.
type RejectionCategory string

// Rejection reason categories.
const (
	RejectionOverqualified  RejectionCategory = "Overqualified"
	RejectionUnderqualified RejectionCategory = "Underqualified"
	RejectionNotAGoodFit    RejectionCategory = "Not a good fit"
	RejectionNotInterested  RejectionCategory = "Not interested"
	RejectionNotAvailable   RejectionCategory = "Not available"
	RejectionOtherReason    RejectionCategory = "Other"
)

// RejectionReason is the optional detail attached to a status change.
type RejectionReason struct {
	Category    RejectionCategory `json:"category,omitempty"`
	Description string            `json:"description,omitempty"`
}

// ApplicationStatus is the status block stored on an application document.
type ApplicationStatus struct {
	StatusType StatusType       `json:"statusType"`
	Reason     *RejectionReason `json:"reason,omitempty"`
	StatusDate time.Time        `json:"statusDate"`
}
