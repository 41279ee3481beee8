package service

import (
	"github.com/google/uuid"

	"github.com/easyeats/easyeats-server/internal/model"
)

// Owned is implemented by records that belong to a single account.
type Owned interface {
	OwnedBy(accountID uuid.UUID) bool
}

// requireOwned gates record access by ownership. Records owned by somebody
// else come back as model.ErrNotFound, indistinguishable from absent records,
// so a caller cannot probe what exists.
func requireOwned[T Owned](record T, accountID uuid.UUID) (T, error) {
	if !record.OwnedBy(accountID) {
		var zero T
		return zero, model.ErrNotFound
	}
	return record, nil
}
