package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RegisterRequest is the request body for account registration. CompanyID and
// JobTitle are required for the employee variant only.
type RegisterRequest struct {
	Role      string `json:"role" validate:"required,oneof=applicant employee sysadmin"`
	FirstName string `json:"firstName" validate:"required,min=1"`
	LastName  string `json:"lastName" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Gender    string `json:"gender" validate:"omitempty,oneof=Male Female 'Prefer not to say'"`
	Password  string `json:"password" validate:"required,min=8"`
	CompanyID string `json:"companyId,omitempty" validate:"omitempty,uuid4"`
	JobTitle  string `json:"jobTitle,omitempty"`
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountView is the account shape returned to clients (no password hash).
type AccountView struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse carries the account view and the issued token.
type LoginResponse struct {
	Account *AccountView `json:"account"`
	Token   string       `json:"token"`
}

// View projects an account onto its client-safe shape.
func (a *Account) View() *AccountView {
	return &AccountView{
		ID:        a.ID,
		Role:      a.Role,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

// validate is shared across requests; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = validator.New()

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}
