package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProfileStore defines persistence operations for profiles. LinkAccount and
// UpdateWithAccount touch both the profile and its account inside a single
// transaction so partial writes are never observable.
type ProfileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Profile, error)
	GetBySubjectID(ctx context.Context, subjectID string) (Profile, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]Profile, error)
	Create(ctx context.Context, profile Profile) (Profile, error)
	Update(ctx context.Context, profile Profile) (Profile, error)
	UpdateWithAccount(ctx context.Context, profile Profile, account Account) (Profile, Account, error)
	LinkAccount(ctx context.Context, profileID uuid.UUID, account Account) (Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Profile is the user-facing descriptive record. It is keyed by the external
// subject id assigned by the identity provider and may exist without a linked
// account (pre-registration state). Once linked, the link is never reassigned.
type Profile struct {
	ID        uuid.UUID
	SubjectID string
	AccountID *uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Bio       string
	ImageKey  string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the profile is linked to the given account.
func (p Profile) OwnedBy(accountID uuid.UUID) bool {
	return p.AccountID != nil && *p.AccountID == accountID
}

// CreateProfileParams contains parameters to create a profile.
type CreateProfileParams struct {
	SubjectID string
	Email     string
	FirstName string
	LastName  string
	Bio       string
	Location  string
}

// Validate checks required bootstrap fields.
func (p CreateProfileParams) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(p.SubjectID) == "" {
		verr.Add("subject_id", "subject_id is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		verr.Add("email", "email is required")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// UpdateProfileParams carries a partial profile update. Nil fields are left
// untouched. Handle, Email, FirstName and LastName address the linked account
// (the wire format namespaces them as "user.*"); the rest address the profile.
type UpdateProfileParams struct {
	Handle    *string
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string
	Location  *string
}

// TouchesAccount reports whether any account-level field is present.
func (p UpdateProfileParams) TouchesAccount() bool {
	return p.Handle != nil || p.Email != nil || p.FirstName != nil || p.LastName != nil
}

// Validate rejects blank values for fields that do not allow them.
func (p UpdateProfileParams) Validate() error {
	verr := &ValidationError{}
	if p.Handle != nil && strings.TrimSpace(*p.Handle) == "" {
		verr.Add("user.username", "username must not be blank")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// Apply merges present fields onto the profile and its account. Only fields
// named here are mutable through profile updates.
func (p UpdateProfileParams) Apply(profile *Profile, account *Account) {
	if p.Bio != nil {
		profile.Bio = *p.Bio
	}
	if p.Location != nil {
		profile.Location = *p.Location
	}
	if account == nil {
		return
	}
	if p.Handle != nil {
		account.Handle = *p.Handle
	}
	if p.Email != nil {
		account.Email = *p.Email
		profile.Email = *p.Email
	}
	if p.FirstName != nil {
		account.FirstName = *p.FirstName
		profile.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		account.LastName = *p.LastName
		profile.LastName = *p.LastName
	}
}
