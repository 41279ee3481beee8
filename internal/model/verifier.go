package model

import "context"

// IdentityVerifier verifies a bearer credential with the external identity
// provider and returns the stable subject id it vouches for. It is treated as
// an opaque, possibly slow, possibly unavailable network dependency; callers
// bound it with a timeout.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (subjectID string, err error)
}
