package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/talenthub/internal/types"
)

// PostingByID loads a posting with its job joined. Returns nil when the id
// does not resolve.
func (db *DB) PostingByID(ctx context.Context, id uuid.UUID) (*types.Posting, error) {
	var (
		p                          types.Posting
		job                        types.Job
		gender, status             string
		languages, technical, soft []byte
	)

	err := db.pool.QueryRow(ctx,
		`SELECT p.id, p.job_id, p.description, COALESCE(p.quota, 0), p.status,
		        COALESCE(p.tags, '{}'), COALESCE(p.salary_min, 0), COALESCE(p.salary_max, 0),
		        p.qualification, COALESCE(p.experience_min, 0), COALESCE(p.experience_max, 0),
		        COALESCE(p.languages, '[]'), COALESCE(p.technical_skills, '[]'), COALESCE(p.soft_skills, '[]'),
		        p.gender, p.created_at, p.deadline,
		        j.title, j.employment_type, j.company_id
		 FROM postings p
		 JOIN jobs j ON j.id = p.job_id
		 WHERE p.id = $1`,
		id,
	).Scan(&p.ID, &p.JobID, &p.Description, &p.Quota, &status,
		&p.Tags, &p.SalaryRange.Min, &p.SalaryRange.Max,
		&p.Qualification, &p.Experience.Min, &p.Experience.Max,
		&languages, &technical, &soft,
		&gender, &p.CreatedAt, &p.Deadline,
		&job.Title, &job.EmploymentType, &job.CompanyID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}

	p.Status = status
	p.Gender = types.Gender(gender)
	if err := unmarshalCapabilities(languages, &p.Languages); err != nil {
		return nil, fmt.Errorf("failed to decode posting languages: %w", err)
	}
	if err := unmarshalCapabilities(technical, &p.TechnicalSkills); err != nil {
		return nil, fmt.Errorf("failed to decode posting technical skills: %w", err)
	}
	if err := unmarshalCapabilities(soft, &p.SoftSkills); err != nil {
		return nil, fmt.Errorf("failed to decode posting soft skills: %w", err)
	}

	job.ID = p.JobID
	p.Job = &job
	return &p, nil
}

// PostingsByCompany lists a company's postings with their application counts,
// newest first.
func (db *DB) PostingsByCompany(ctx context.Context, companyID uuid.UUID) ([]types.PostingSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT p.id, j.title, p.status, p.created_at,
		        (SELECT COUNT(*) FROM applications a WHERE a.posting_id = p.id)
		 FROM postings p
		 JOIN jobs j ON j.id = p.job_id
		 WHERE j.company_id = $1
		 ORDER BY p.created_at DESC`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	defer rows.Close()

	var postings []types.PostingSummary
	for rows.Next() {
		var s types.PostingSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Status, &s.CreatedAt, &s.Applications); err != nil {
			return nil, fmt.Errorf("failed to scan posting summary: %w", err)
		}
		postings = append(postings, s)
	}
	return postings, rows.Err()
}

// PostingTitlesByCompany lists the id/title pairs for a company's postings.
func (db *DB) PostingTitlesByCompany(ctx context.Context, companyID uuid.UUID) ([]types.PostingTitle, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT p.id, j.title
		 FROM postings p
		 JOIN jobs j ON j.id = p.job_id
		 WHERE j.company_id = $1
		 ORDER BY j.title`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list posting titles: %w", err)
	}
	defer rows.Close()

	var titles []types.PostingTitle
	for rows.Next() {
		var t types.PostingTitle
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("failed to scan posting title: %w", err)
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

// unmarshalCapabilities decodes a JSONB capability array, leaving the target
// empty for NULL columns.
func unmarshalCapabilities(raw []byte, target *[]types.Capability) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, target)
}
