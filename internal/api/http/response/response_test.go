package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyeats/easyeats-server/internal/model"
	"github.com/easyeats/easyeats-server/internal/testutil"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, rec.Body.String())
}

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unauthenticated",
			err:        model.NewErrUnauthenticated(),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"unauthenticated"}`,
		},
		{
			name:       "invalid credential",
			err:        model.NewErrInvalidCredential(),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"invalid_credential"}`,
		},
		{
			name:       "no such profile",
			err:        model.NewErrNoSuchProfile(),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"profile not found"}`,
		},
		{
			name:       "not found",
			err:        model.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"not found"}`,
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("failed to get recipe: %w", model.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"not found"}`,
		},
		{
			name:       "conflict",
			err:        model.NewErrHandleTaken("chef"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":[{"field":"handle","message":"handle \"chef\" is taken"}]}`,
		},
		{
			name:       "internal error stays opaque",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			Error(rec, testutil.MakeNoopLogger(), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestError_ValidationFieldList(t *testing.T) {
	verr := (&model.ValidationError{}).
		Add("title", "title is required").
		Add("cooking_time", "cooking_time must be a positive number of minutes")

	rec := httptest.NewRecorder()
	Error(rec, testutil.MakeNoopLogger(), verr)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []model.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "title", body.Errors[0].Field)
	assert.Equal(t, "cooking_time", body.Errors[1].Field)
}
