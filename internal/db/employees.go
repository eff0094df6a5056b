package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/types"
)

// EmploymentRecords returns the tenure spans turnover math needs: employees
// of the company with no termination date, or one on or after windowStart.
func (db *DB) EmploymentRecords(ctx context.Context, companyID uuid.UUID, windowStart time.Time) ([]types.EmploymentRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, (a.employee->>'hire_date')::timestamptz,
		        (a.employee->>'termination_date')::timestamptz
		 FROM accounts a
		 WHERE a.role = 'employee'
		   AND (a.employee->>'company_id')::uuid = $1
		   AND (a.employee->>'termination_date' IS NULL
		        OR (a.employee->>'termination_date')::timestamptz >= $2)`,
		companyID, windowStart,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load employment records: %w", err)
	}
	defer rows.Close()

	var records []types.EmploymentRecord
	for rows.Next() {
		var r types.EmploymentRecord
		if err := rows.Scan(&r.EmployeeID, &r.HireDate, &r.TerminationDate); err != nil {
			return nil, fmt.Errorf("failed to scan employment record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
