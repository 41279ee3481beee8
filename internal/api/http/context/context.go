// Package context moves the reconciled account id through request contexts
// under an unexported key so downstream packages cannot collide with it.
package context

import (
	"context"

	"github.com/google/uuid"
)

type accountIDKeyType struct{}

var accountIDKey = accountIDKeyType{}

// Manager implements model.ContextManager for HTTP request contexts.
type Manager struct{}

// NewManager creates a new context Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetAccountIDToContext returns a child context carrying the account id.
func (m *Manager) SetAccountIDToContext(ctx context.Context, accountID uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// GetAccountIDFromContext retrieves the account id set by the authentication
// middleware, reporting whether one was present.
func (m *Manager) GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	accountID, ok := ctx.Value(accountIDKey).(uuid.UUID)
	return accountID, ok
}
