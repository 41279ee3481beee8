package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountStore defines persistence operations for accounts.
type AccountStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	GetByHandle(ctx context.Context, handle string) (Account, error)
	Create(ctx context.Context, account Account) (Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Account is the local identity record ownership checks run against.
// It is created lazily by the reconciler on first authenticated access,
// or explicitly through signup.
type Account struct {
	ID           uuid.UUID
	Handle       string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignupParams contains parameters for explicit account creation.
type SignupParams struct {
	Handle    string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Validate checks required signup fields.
func (p SignupParams) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(p.Handle) == "" {
		verr.Add("handle", "handle is required")
	}
	if strings.TrimSpace(p.Password) == "" {
		verr.Add("password", "password is required")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}
