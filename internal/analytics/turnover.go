// Package analytics derives aggregate hiring statistics from employment and
// application records.
package analytics

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/types"
)

// EmployeeSource supplies the employment records needed for turnover math:
// employees of the company with no termination date or a termination on or
// after the window start.
type EmployeeSource interface {
	EmploymentRecords(ctx context.Context, companyID uuid.UUID, windowStart time.Time) ([]types.EmploymentRecord, error)
}

// TurnoverReport is the turnover rate for a company over a window.
// RateDefined is false when the average headcount is zero; Rate is omitted
// from JSON in that case rather than reporting NaN.
type TurnoverReport struct {
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
	Left           int       `json:"left"`
	StartHeadcount int       `json:"startHeadcount"`
	EndHeadcount   int       `json:"endHeadcount"`
	Rate           float64   `json:"rate,omitempty"`
	RateDefined    bool      `json:"rateDefined"`
}

// Turnover computes the turnover rate over [from, to], both ends inclusive.
// Zero bounds default to the trailing year ending now. The rate is
// left / ceil((startHeadcount+endHeadcount)/2) × 100, reported to two decimal
// places.
func Turnover(ctx context.Context, src EmployeeSource, companyID uuid.UUID, from, to time.Time) (*TurnoverReport, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(-1, 0, 0)
	}

	records, err := src.EmploymentRecords(ctx, companyID, from)
	if err != nil {
		return nil, err
	}

	report := &TurnoverReport{From: from, To: to}
	for _, r := range records {
		if employedAt(r, from) {
			report.StartHeadcount++
		}
		if employedAt(r, to) {
			report.EndHeadcount++
		}
		if r.TerminationDate != nil && !r.TerminationDate.Before(from) && !r.TerminationDate.After(to) {
			report.Left++
		}
	}

	averageHeadcount := int(math.Ceil(float64(report.StartHeadcount+report.EndHeadcount) / 2))
	if averageHeadcount > 0 {
		rate := float64(report.Left) / float64(averageHeadcount) * 100
		report.Rate = math.Round(rate*100) / 100
		report.RateDefined = true
	}
	return report, nil
}

// employedAt reports whether the record counts toward headcount at t: hired
// on or before t and not yet terminated.
func employedAt(r types.EmploymentRecord, t time.Time) bool {
	if r.HireDate.After(t) {
		return false
	}
	return r.TerminationDate == nil || r.TerminationDate.After(t)
}
