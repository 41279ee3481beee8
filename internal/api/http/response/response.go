// Package response writes JSON bodies and maps the service error taxonomy to
// HTTP status codes. Internal failures are logged with full detail and
// returned to the client as an opaque message.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/easyeats/easyeats-server/internal/logger"
	"github.com/easyeats/easyeats-server/internal/model"
)

type errorBody struct {
	Error string `json:"error"`
}

type fieldErrorBody struct {
	Errors []model.FieldError `json:"errors"`
}

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error translates err to the wire. Authentication failures map to 401,
// missing profiles and unowned records to 404, validation and conflicts to
// 400 with a field list, anything else to an opaque 500.
func Error(w http.ResponseWriter, log *logger.Logger, err error) {
	var authErr *model.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Reason {
		case model.ReasonNoSuchProfile:
			JSON(w, http.StatusNotFound, errorBody{Error: "profile not found"})
		default:
			JSON(w, http.StatusUnauthorized, errorBody{Error: authErr.Reason})
		}
		return
	}

	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		JSON(w, http.StatusBadRequest, fieldErrorBody{Errors: validationErr.Fields})
		return
	}

	var conflictErr *model.ConflictError
	if errors.As(err, &conflictErr) {
		JSON(w, http.StatusBadRequest, fieldErrorBody{Errors: []model.FieldError{
			{Field: conflictErr.Field, Message: conflictErr.Message},
		}})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		JSON(w, http.StatusNotFound, errorBody{Error: "not found"})
		return
	}

	log.Error("request failed",
		"error", err.Error())
	JSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}
