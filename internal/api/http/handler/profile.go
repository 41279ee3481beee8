package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/easyeats/easyeats-server/internal/api/http/response"
	"github.com/easyeats/easyeats-server/internal/logger"
	"github.com/easyeats/easyeats-server/internal/model"
)

// ProfileService defines ownership-scoped profile operations.
type ProfileService interface {
	ListOwn(ctx context.Context, accountID uuid.UUID) ([]model.Profile, error)
	GetOwn(ctx context.Context, accountID, profileID uuid.UUID) (model.Profile, error)
	CreateOwn(ctx context.Context, accountID uuid.UUID, params model.CreateProfileParams) (model.Profile, error)
	UpdateOwn(ctx context.Context, accountID, profileID uuid.UUID, params model.UpdateProfileParams) (model.Profile, error)
	DeleteOwn(ctx context.Context, accountID, profileID uuid.UUID) error
	UploadImage(ctx context.Context, accountID, profileID uuid.UUID, reader io.Reader) (model.Profile, error)
}

// Profile handles the /api/profiles collection.
type Profile struct {
	profileService ProfileService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewProfile creates a new Profile handler.
func NewProfile(profileService ProfileService, contextManager model.ContextManager, logger *logger.Logger) *Profile {
	return &Profile{
		profileService: profileService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createProfileRequest struct {
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
}

func (req createProfileRequest) toParams() model.CreateProfileParams {
	return model.CreateProfileParams{
		SubjectID: req.SubjectID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Location:  req.Location,
	}
}

// updateProfileRequest preserves the flat "user.*" key convention for the
// account-level fields of a profile update.
type updateProfileRequest struct {
	Username  *string `json:"user.username"`
	FirstName *string `json:"user.first_name"`
	LastName  *string `json:"user.last_name"`
	Email     *string `json:"user.email"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
}

func (req updateProfileRequest) toParams() model.UpdateProfileParams {
	return model.UpdateProfileParams{
		Handle:    req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Location:  req.Location,
	}
}

type profileResponse struct {
	ID        uuid.UUID  `json:"id"`
	SubjectID string     `json:"subject_id"`
	AccountID *uuid.UUID `json:"account_id,omitempty"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Bio       string     `json:"bio"`
	Image     string     `json:"profile_picture,omitempty"`
	Location  string     `json:"location"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

func toProfileResponse(p model.Profile) profileResponse {
	return profileResponse{
		ID:        p.ID,
		SubjectID: p.SubjectID,
		AccountID: p.AccountID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Bio:       p.Bio,
		Image:     p.ImageKey,
		Location:  p.Location,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

// List returns the caller's profiles.
func (h *Profile) List(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	profiles, err := h.profileService.ListOwn(r.Context(), accountID)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	out := make([]profileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileResponse(p))
	}
	response.JSON(w, http.StatusOK, out)
}

// Get returns one of the caller's profiles by id.
func (h *Profile) Get(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	profileID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	profile, err := h.profileService.GetOwn(r.Context(), accountID, profileID)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, toProfileResponse(profile))
}

// Create creates a profile owned by the caller.
func (h *Profile) Create(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	var req createProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, h.logger, err)
		return
	}

	profile, err := h.profileService.CreateOwn(r.Context(), accountID, req.toParams())
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, toProfileResponse(profile))
}

// Update partially updates one of the caller's profiles.
func (h *Profile) Update(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	profileID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, h.logger, err)
		return
	}

	profile, err := h.profileService.UpdateOwn(r.Context(), accountID, profileID, req.toParams())
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, toProfileResponse(profile))
}

// Delete removes one of the caller's profiles.
func (h *Profile) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	profileID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	if err := h.profileService.DeleteOwn(r.Context(), accountID, profileID); err != nil {
		response.Error(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadImage stores a profile picture from the request body.
func (h *Profile) UploadImage(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFrom(r.Context(), h.contextManager)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	profileID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	profile, err := h.profileService.UploadImage(r.Context(), accountID, profileID, r.Body)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, toProfileResponse(profile))
}
