// Package handler implements the REST endpoints. Handlers decode requests,
// delegate to services and translate results through the response package;
// no ownership or validation decisions are made here.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/easyeats/easyeats-server/internal/model"
)

// accountIDFrom reads the reconciled account id placed in context by the
// authentication middleware.
func accountIDFrom(ctx context.Context, mgr model.ContextManager) (uuid.UUID, error) {
	accountID, ok := mgr.GetAccountIDFromContext(ctx)
	if !ok {
		return uuid.Nil, model.NewErrUnauthenticated()
	}
	return accountID, nil
}

// decodeJSON decodes the request body, reporting malformed payloads as a
// field-level validation error.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		verr := &model.ValidationError{}
		return verr.Add("body", "malformed JSON body")
	}
	return nil
}

// parseID parses a path id. An unparseable id cannot name any record, so it
// is reported as not found rather than as a validation failure.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.ErrNotFound
	}
	return id, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
