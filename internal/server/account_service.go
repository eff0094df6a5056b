// Package server provides the HTTP REST API for the talenthub platform.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/config"
	"github.com/jonathan/talenthub/internal/types"
)

// AccountStore is the account persistence surface the service needs.
// AccountByEmail returns nil and no error when no account matches.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *types.Account) error
	AccountByEmail(ctx context.Context, email string) (*types.Account, error)
}

// AccountService provides business logic for account registration and login.
type AccountService struct {
	store          AccountStore
	passwordConfig *config.PasswordConfig
}

// NewAccountService creates a new AccountService with the given dependencies.
func NewAccountService(store AccountStore, passwordConfig *config.PasswordConfig) *AccountService {
	return &AccountService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// Register creates an account of the requested variant with password
// authentication.
func (s *AccountService) Register(ctx context.Context, req *types.RegisterRequest) (*types.Account, error) {
	existing, err := s.store.AccountByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	role, ok := types.ParseRole(req.Role)
	if !ok {
		return nil, &ErrValidation{Field: "role", Message: "unknown role"}
	}

	gender := types.Gender(req.Gender)
	var account *types.Account
	switch role {
	case types.RoleApplicant:
		account = types.NewApplicantAccount(req.FirstName, req.LastName, req.Email, gender)
	case types.RoleEmployee:
		companyID, err := uuid.Parse(req.CompanyID)
		if err != nil {
			return nil, &ErrValidation{Field: "companyId", Message: "employee accounts need a valid company id"}
		}
		account = types.NewEmployeeAccount(req.FirstName, req.LastName, req.Email, gender, companyID, req.JobTitle, time.Now())
	case types.RoleSysAdmin:
		account = types.NewSysAdminAccount(req.FirstName, req.LastName, req.Email, gender)
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = passwordHash
	account.CreatedAt = time.Now()

	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

// Authenticate verifies login credentials and returns the account.
func (s *AccountService) Authenticate(ctx context.Context, req *types.LoginRequest) (*types.Account, error) {
	account, err := s.store.AccountByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	// Always return the generic error when the account is missing or the
	// password is wrong.
	if account == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(account.PasswordHash, req.Password) {
		return nil, &ErrInvalidCredentials{}
	}

	return account, nil
}
