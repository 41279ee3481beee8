package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager moves the reconciled account id in and out of request
// contexts.
type ContextManager interface {
	SetAccountIDToContext(ctx context.Context, accountID uuid.UUID) context.Context
	GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool)
}
