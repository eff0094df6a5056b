package types

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the closed set of account variants. The platform resolves
// behavior by matching on Role instead of comparing role strings.
type Role string

// Account variants.
const (
	RoleApplicant Role = "applicant"
	RoleEmployee  Role = "employee"
	RoleSysAdmin  Role = "sysadmin"
)

// ParseRole maps a wire value onto a Role. ok is false for anything outside
// the closed set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleApplicant, RoleEmployee, RoleSysAdmin:
		return Role(s), true
	}
	return "", false
}

// ApplicantProfile is the variant data of an applicant account.
type ApplicantProfile struct {
	ResumeID        *uuid.UUID  `json:"resume_id,omitempty"`
	AppliedPostings []uuid.UUID `json:"applied_postings,omitempty"`
}

// EmployeeProfile is the variant data of an employee account.
type EmployeeProfile struct {
	CompanyID       uuid.UUID  `json:"company_id"`
	DepartmentID    *uuid.UUID `json:"department_id,omitempty"`
	JobTitle        string     `json:"job_title,omitempty"`
	HireDate        time.Time  `json:"hire_date"`
	TerminationDate *time.Time `json:"termination_date,omitempty"`
}

// SysAdminProfile is the variant data of a platform administrator account.
type SysAdminProfile struct{}

// Account is a tagged union over the platform's user variants. Exactly one
// variant pointer is set, matching Role.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Role         Role      `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Gender       Gender    `json:"gender"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	Applicant *ApplicantProfile `json:"applicant,omitempty"`
	Employee  *EmployeeProfile  `json:"employee,omitempty"`
	SysAdmin  *SysAdminProfile  `json:"sysadmin,omitempty"`
}

// NewApplicantAccount constructs the applicant variant.
func NewApplicantAccount(firstName, lastName, email string, gender Gender) *Account {
	return &Account{
		ID:        uuid.New(),
		Role:      RoleApplicant,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Gender:    gender,
		Applicant: &ApplicantProfile{},
	}
}

// NewEmployeeAccount constructs the employee variant.
func NewEmployeeAccount(firstName, lastName, email string, gender Gender, companyID uuid.UUID, jobTitle string, hireDate time.Time) *Account {
	return &Account{
		ID:        uuid.New(),
		Role:      RoleEmployee,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Gender:    gender,
		Employee: &EmployeeProfile{
			CompanyID: companyID,
			JobTitle:  jobTitle,
			HireDate:  hireDate,
		},
	}
}

// NewSysAdminAccount constructs the sysadmin variant.
func NewSysAdminAccount(firstName, lastName, email string, gender Gender) *Account {
	return &Account{
		ID:        uuid.New(),
		Role:      RoleSysAdmin,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Gender:    gender,
		SysAdmin:  &SysAdminProfile{},
	}
}

// AsApplicant returns the applicant profile when the account is that variant.
func (a *Account) AsApplicant() (*ApplicantProfile, bool) {
	return a.Applicant, a.Role == RoleApplicant && a.Applicant != nil
}

// AsEmployee returns the employee profile when the account is that variant.
func (a *Account) AsEmployee() (*EmployeeProfile, bool) {
	return a.Employee, a.Role == RoleEmployee && a.Employee != nil
}

// AsSysAdmin returns the sysadmin profile when the account is that variant.
func (a *Account) AsSysAdmin() (*SysAdminProfile, bool) {
	return a.SysAdmin, a.Role == RoleSysAdmin && a.SysAdmin != nil
}
