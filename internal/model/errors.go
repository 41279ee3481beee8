package model

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a record that is absent or not visible to the caller.
// Records owned by somebody else are reported with the same error so that
// their existence is not leaked.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned by stores on a unique-constraint violation.
var ErrDuplicate = errors.New("duplicate key")

// Reasons carried by AuthError.
const (
	ReasonUnauthenticated   = "unauthenticated"
	ReasonInvalidCredential = "invalid_credential"
	ReasonNoSuchProfile     = "no_such_profile"
)

// AuthError describes why a request could not be authenticated. Verification
// failures of any underlying kind are normalized to ReasonInvalidCredential;
// the cause is logged server-side and never exposed to the client.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Reason
}

// NewErrUnauthenticated reports a request carrying no credential at all.
func NewErrUnauthenticated() *AuthError {
	return &AuthError{Reason: ReasonUnauthenticated}
}

// NewErrInvalidCredential reports a credential that failed verification.
func NewErrInvalidCredential() *AuthError {
	return &AuthError{Reason: ReasonInvalidCredential}
}

// NewErrNoSuchProfile reports a verified identity with no local profile.
func NewErrNoSuchProfile() *AuthError {
	return &AuthError{Reason: ReasonNoSuchProfile}
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level failures for one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// Add appends a field failure and returns the error for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// Empty reports whether no field failed.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// ConflictError reports a duplicate of a client-visible unique value.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewErrProfileExists reports an already registered external subject id.
func NewErrProfileExists(subjectID string) *ConflictError {
	return &ConflictError{Field: "subject_id", Message: fmt.Sprintf("profile already exists for subject %q", subjectID)}
}

// NewErrHandleTaken reports an already used account handle.
func NewErrHandleTaken(handle string) *ConflictError {
	return &ConflictError{Field: "handle", Message: fmt.Sprintf("handle %q is taken", handle)}
}
