package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/talenthub/internal/types"
)

// CreateAccount inserts an account with its variant profile. The profile
// column stores the variant data matching the role as a JSONB document.
func (db *DB) CreateAccount(ctx context.Context, account *types.Account) error {
	profile, err := marshalProfile(account)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO accounts (id, role, first_name, last_name, email, gender, password_hash, `+profileColumn(account.Role)+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		account.ID, string(account.Role), account.FirstName, account.LastName,
		account.Email, string(account.Gender), account.PasswordHash, profile,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// AccountByEmail fetches the account registered under email, any variant.
// Returns nil when no account matches.
func (db *DB) AccountByEmail(ctx context.Context, email string) (*types.Account, error) {
	var (
		account                       types.Account
		role, gender                  string
		applicant, employee, sysadmin []byte
	)

	err := db.pool.QueryRow(ctx,
		`SELECT id, role, first_name, last_name, email, gender, password_hash,
		        applicant, employee, sysadmin, created_at
		 FROM accounts WHERE email = $1`,
		email,
	).Scan(&account.ID, &role, &account.FirstName, &account.LastName,
		&account.Email, &gender, &account.PasswordHash,
		&applicant, &employee, &sysadmin, &account.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	account.Role = types.Role(role)
	account.Gender = types.Gender(gender)
	if err := unmarshalProfile(&account, applicant, employee, sysadmin); err != nil {
		return nil, err
	}
	return &account, nil
}

// profileColumn names the variant column an account's profile lives in.
func profileColumn(role types.Role) string {
	switch role {
	case types.RoleEmployee:
		return "employee"
	case types.RoleSysAdmin:
		return "sysadmin"
	default:
		return "applicant"
	}
}

func marshalProfile(account *types.Account) ([]byte, error) {
	var profile any
	switch account.Role {
	case types.RoleApplicant:
		profile = account.Applicant
	case types.RoleEmployee:
		profile = account.Employee
	case types.RoleSysAdmin:
		profile = account.SysAdmin
	default:
		return nil, fmt.Errorf("unknown account role: %q", account.Role)
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account profile: %w", err)
	}
	return raw, nil
}

// unmarshalProfile populates the variant pointer matching the account's role.
func unmarshalProfile(account *types.Account, applicant, employee, sysadmin []byte) error {
	switch account.Role {
	case types.RoleApplicant:
		if len(applicant) > 0 {
			account.Applicant = &types.ApplicantProfile{}
			if err := json.Unmarshal(applicant, account.Applicant); err != nil {
				return fmt.Errorf("failed to decode applicant profile: %w", err)
			}
		}
	case types.RoleEmployee:
		if len(employee) > 0 {
			account.Employee = &types.EmployeeProfile{}
			if err := json.Unmarshal(employee, account.Employee); err != nil {
				return fmt.Errorf("failed to decode employee profile: %w", err)
			}
		}
	case types.RoleSysAdmin:
		account.SysAdmin = &types.SysAdminProfile{}
	default:
		return fmt.Errorf("unknown account role: %q", account.Role)
	}
	return nil
}

// ApplicantByID fetches the applicant-variant account by id. Returns nil for
// a missing id or a different variant.
func (db *DB) ApplicantByID(ctx context.Context, id uuid.UUID) (*types.Account, error) {
	var (
		account   types.Account
		gender    string
		applicant []byte
	)

	err := db.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, gender, applicant, created_at
		 FROM accounts WHERE id = $1 AND role = 'applicant'`,
		id,
	).Scan(&account.ID, &account.FirstName, &account.LastName,
		&account.Email, &gender, &applicant, &account.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get applicant: %w", err)
	}

	account.Role = types.RoleApplicant
	account.Gender = types.Gender(gender)
	if err := unmarshalProfile(&account, applicant, nil, nil); err != nil {
		return nil, err
	}
	return &account, nil
}
