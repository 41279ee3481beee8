package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/easyeats/easyeats-server/internal/api/http/response"
	"github.com/easyeats/easyeats-server/internal/logger"
	"github.com/easyeats/easyeats-server/internal/model"
)

// BootstrapService defines the subject-keyed profile operations exposed under
// the user-oriented path.
type BootstrapService interface {
	Bootstrap(ctx context.Context, params model.CreateProfileParams) (model.Profile, error)
	GetBySubject(ctx context.Context, subjectID string) (model.Profile, error)
	UpdateBySubject(ctx context.Context, accountID uuid.UUID, subjectID string, params model.UpdateProfileParams) (model.Profile, error)
}

// AccountService defines explicit account operations.
type AccountService interface {
	Signup(ctx context.Context, params model.SignupParams) (model.Account, error)
	Get(ctx context.Context, accountID uuid.UUID) (model.Account, error)
	Delete(ctx context.Context, accountID uuid.UUID) error
}

// User handles the /api/users endpoints.
type User struct {
	bootstrapService BootstrapService
	accountService   AccountService
	contextManager   model.ContextManager
	logger           *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(
	bootstrapService BootstrapService,
	accountService AccountService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *User {
	return &User{
		bootstrapService: bootstrapService,
		accountService:   accountService,
		contextManager:   contextManager,
		logger:           logger,
	}
}

type signupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

type accountResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt string    `json:"created_at"`
}

func toAccountResponse(a model.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Username:  a.Handle,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		CreatedAt: formatTime(a.CreatedAt),
	}
}

type bootstrapResponse struct {
	Profile profileResponse `json:"profile"`
}

// CreateProfile registers a profile for a fresh external subject. Open to
// unauthenticated callers on purpose: this is the only way a new identity can
// obtain the profile the reconciler requires.
func (h *User) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, h.logger, err)
		return
	}

	profile, err := h.bootstrapService.Bootstrap(r.Context(), req.toParams())
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, bootstrapResponse{Profile: toProfileResponse(profile)})
}

// GetProfile returns the profile for an external subject id.
func (h *User) GetProfile(w http.ResponseWriter, r *http.Request) {
	subjectID := mux.Vars(r)["subjectID"]

	profile, err := h.bootstrapService.GetBySubject(r.Context(), subjectID)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile partially updates the caller's profile addressed by subject
// id, together with the account-level fields namespaced as "user.*".
func (h *User) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	subjectID := mux.Vars(r)["subjectID"]

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, h.logger, err)
		return
	}

	profile, err := h.bootstrapService.UpdateBySubject(r.Context(), accountID, subjectID, req.toParams())
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, toProfileResponse(profile))
}

// Signup creates an account explicitly with a password.
func (h *User) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, h.logger, err)
		return
	}

	account, err := h.accountService.Signup(r.Context(), model.SignupParams{
		Handle:    req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, toAccountResponse(account))
}

// Me returns the caller's account.
func (h *User) Me(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	account, err := h.accountService.Get(r.Context(), accountID)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, toAccountResponse(account))
}

// DeleteMe removes the caller's account together with its recipes.
func (h *User) DeleteMe(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	if err := h.accountService.Delete(r.Context(), accountID); err != nil {
		response.Error(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
