package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/types"
)

// NewApplicationsByPosting loads the screening pool for a posting: every
// application still in New status, joined with its applicant, resume snapshot
// and posting→job→company context, in one query. Applicants without a resume
// come back with a nil snapshot.
func (db *DB) NewApplicationsByPosting(ctx context.Context, postingID uuid.UUID) ([]types.ScreeningApplication, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.created_at, a.status,
		        u.id, u.first_name, u.last_name, u.gender, r.snapshot,
		        p.id, j.title, j.employment_type, c.id, c.name
		 FROM applications a
		 JOIN accounts u ON u.id = a.applicant_id
		 LEFT JOIN resumes r ON r.account_id = u.id
		 JOIN postings p ON p.id = a.posting_id
		 JOIN jobs j ON j.id = p.job_id
		 JOIN companies c ON c.id = j.company_id
		 WHERE a.posting_id = $1 AND a.status->>'statusType' = 'New'
		 ORDER BY a.created_at ASC`,
		postingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load screening pool: %w", err)
	}
	defer rows.Close()

	var pool []types.ScreeningApplication
	for rows.Next() {
		var (
			app              types.ScreeningApplication
			gender           string
			statusRaw        []byte
			snapshotRaw      []byte
		)
		if err := rows.Scan(&app.ID, &app.CreatedAt, &statusRaw,
			&app.Applicant.ID, &app.Applicant.FirstName, &app.Applicant.LastName, &gender, &snapshotRaw,
			&app.Context.PostingID, &app.Context.JobTitle, &app.Context.EmploymentType,
			&app.Context.CompanyID, &app.Context.CompanyName); err != nil {
			return nil, fmt.Errorf("failed to scan screening row: %w", err)
		}

		app.Applicant.Gender = types.Gender(gender)
		if err := json.Unmarshal(statusRaw, &app.Status); err != nil {
			return nil, fmt.Errorf("failed to decode application status: %w", err)
		}
		if len(snapshotRaw) > 0 {
			var resume types.Resume
			if err := json.Unmarshal(snapshotRaw, &resume); err != nil {
				return nil, fmt.Errorf("failed to decode resume snapshot: %w", err)
			}
			app.Applicant.Resume = &resume
		}
		pool = append(pool, app)
	}
	return pool, rows.Err()
}

// ApplicationDigests loads the flattened application rows for a company,
// optionally narrowed to a set of lifecycle statuses.
func (db *DB) ApplicationDigests(ctx context.Context, companyID uuid.UUID, statuses []types.StatusType) ([]types.ApplicationDigest, error) {
	query := `SELECT a.id, p.id, j.title, j.employment_type, a.status->>'statusType', a.created_at
		 FROM applications a
		 JOIN postings p ON p.id = a.posting_id
		 JOIN jobs j ON j.id = p.job_id
		 WHERE j.company_id = $1`
	args := []any{companyID}

	if len(statuses) > 0 {
		wanted := make([]string, len(statuses))
		for i, s := range statuses {
			wanted[i] = string(s)
		}
		query += " AND a.status->>'statusType' = ANY($2)"
		args = append(args, wanted)
	}
	query += " ORDER BY a.created_at ASC"

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list application digests: %w", err)
	}
	defer rows.Close()

	var digests []types.ApplicationDigest
	for rows.Next() {
		var (
			d      types.ApplicationDigest
			status string
		)
		if err := rows.Scan(&d.ID, &d.PostingID, &d.JobTitle, &d.EmploymentType, &status, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application digest: %w", err)
		}
		d.Status = types.StatusType(status)
		digests = append(digests, d)
	}
	return digests, rows.Err()
}

// UpdateApplicationStatus replaces the status block of an application.
func (db *DB) UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, status types.ApplicationStatus) error {
	raw, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal application status: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2`,
		raw, applicationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &ApplicationNotFoundError{ApplicationID: applicationID}
	}
	return nil
}
