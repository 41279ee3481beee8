package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/easyeats/easyeats-server/internal/logger"
	"github.com/easyeats/easyeats-server/internal/model"
)

// Profile implements ownership-scoped profile operations plus the open
// bootstrap path used before a subject can authenticate.
type Profile struct {
	profileStore model.ProfileStore
	accountStore model.AccountStore
	storage      model.Storage
	logger       *logger.Logger
}

// NewProfile creates a new Profile service.
func NewProfile(
	profileStore model.ProfileStore,
	accountStore model.AccountStore,
	storage model.Storage,
	logger *logger.Logger,
) *Profile {
	return &Profile{
		profileStore: profileStore,
		accountStore: accountStore,
		storage:      storage,
		logger:       logger,
	}
}

// ListOwn returns the caller's profiles.
func (s *Profile) ListOwn(ctx context.Context, accountID uuid.UUID) ([]model.Profile, error) {
	profiles, err := s.profileStore.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles by account id: %w", err)
	}

	return profiles, nil
}

// GetOwn returns the profile only when the caller owns it.
func (s *Profile) GetOwn(ctx context.Context, accountID, profileID uuid.UUID) (model.Profile, error) {
	profile, err := s.profileStore.GetByID(ctx, profileID)
	if err != nil {
		return model.Profile{}, err
	}

	return requireOwned(profile, accountID)
}

// CreateOwn creates a profile linked to the caller. The account link comes
// from the authenticated context, never from the payload.
func (s *Profile) CreateOwn(ctx context.Context, accountID uuid.UUID, params model.CreateProfileParams) (model.Profile, error) {
	if err := params.Validate(); err != nil {
		return model.Profile{}, err
	}

	profile := model.Profile{
		ID:        uuid.New(),
		SubjectID: params.SubjectID,
		AccountID: &accountID,
		Email:     params.Email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Bio:       params.Bio,
		Location:  params.Location,
	}

	saved, err := s.profileStore.Create(ctx, profile)
	if errors.Is(err, model.ErrDuplicate) {
		return model.Profile{}, model.NewErrProfileExists(params.SubjectID)
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return saved, nil
}

// Bootstrap creates an unlinked profile for a freshly registered external
// subject. Deliberately open to unauthenticated callers: it exists precisely
// so a new identity can obtain a profile before it can authenticate. Abuse
// protection (rate limiting) is the fronting infrastructure's job.
func (s *Profile) Bootstrap(ctx context.Context, params model.CreateProfileParams) (model.Profile, error) {
	if err := params.Validate(); err != nil {
		return model.Profile{}, err
	}

	profile := model.Profile{
		ID:        uuid.New(),
		SubjectID: params.SubjectID,
		Email:     params.Email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Bio:       params.Bio,
		Location:  params.Location,
	}

	saved, err := s.profileStore.Create(ctx, profile)
	if errors.Is(err, model.ErrDuplicate) {
		s.logger.Info("Profile service: duplicate bootstrap attempt",
			"subject_id", params.SubjectID)
		return model.Profile{}, model.NewErrProfileExists(params.SubjectID)
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info("Profile service: profile bootstrapped",
		"subject_id", params.SubjectID,
		"profile_id", saved.ID)

	return saved, nil
}

// GetBySubject returns the profile for an external subject id. Open read used
// by the pre-registration client flow.
func (s *Profile) GetBySubject(ctx context.Context, subjectID string) (model.Profile, error) {
	profile, err := s.profileStore.GetBySubjectID(ctx, subjectID)
	if err != nil {
		return model.Profile{}, err
	}

	return profile, nil
}

// UpdateOwn applies a partial update to the caller's profile addressed by id.
func (s *Profile) UpdateOwn(ctx context.Context, accountID, profileID uuid.UUID, params model.UpdateProfileParams) (model.Profile, error) {
	if err := params.Validate(); err != nil {
		return model.Profile{}, err
	}

	profile, err := s.GetOwn(ctx, accountID, profileID)
	if err != nil {
		return model.Profile{}, err
	}

	return s.applyUpdate(ctx, accountID, profile, params)
}

// UpdateBySubject applies a partial update to the caller's profile addressed
// by external subject id.
func (s *Profile) UpdateBySubject(ctx context.Context, accountID uuid.UUID, subjectID string, params model.UpdateProfileParams) (model.Profile, error) {
	if err := params.Validate(); err != nil {
		return model.Profile{}, err
	}

	profile, err := s.profileStore.GetBySubjectID(ctx, subjectID)
	if err != nil {
		return model.Profile{}, err
	}
	profile, err = requireOwned(profile, accountID)
	if err != nil {
		return model.Profile{}, err
	}

	return s.applyUpdate(ctx, accountID, profile, params)
}

// applyUpdate merges the update onto the profile and, when account-level
// fields are present, onto the linked account in the same transaction. Either
// both entities change or neither does.
func (s *Profile) applyUpdate(ctx context.Context, accountID uuid.UUID, profile model.Profile, params model.UpdateProfileParams) (model.Profile, error) {
	if !params.TouchesAccount() {
		params.Apply(&profile, nil)
		saved, err := s.profileStore.Update(ctx, profile)
		if err != nil {
			return model.Profile{}, fmt.Errorf("failed to update profile: %w", err)
		}
		return saved, nil
	}

	account, err := s.accountStore.GetByID(ctx, accountID)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get account: %w", err)
	}

	params.Apply(&profile, &account)

	saved, _, err := s.profileStore.UpdateWithAccount(ctx, profile, account)
	if errors.Is(err, model.ErrDuplicate) {
		return model.Profile{}, model.NewErrHandleTaken(account.Handle)
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to update profile with account: %w", err)
	}

	return saved, nil
}

// DeleteOwn removes the caller's profile. The external subject keeps its
// account; only the descriptive record goes away.
func (s *Profile) DeleteOwn(ctx context.Context, accountID, profileID uuid.UUID) error {
	profile, err := s.GetOwn(ctx, accountID, profileID)
	if err != nil {
		return err
	}

	if err := s.profileStore.Delete(ctx, profile.ID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}

// UploadImage stores the profile picture and records its object key.
func (s *Profile) UploadImage(ctx context.Context, accountID, profileID uuid.UUID, reader io.Reader) (model.Profile, error) {
	profile, err := s.GetOwn(ctx, accountID, profileID)
	if err != nil {
		return model.Profile{}, err
	}

	key := fmt.Sprintf("profile_pictures/%s", profile.ID)
	if err := s.storage.Upload(ctx, key, reader); err != nil {
		return model.Profile{}, fmt.Errorf("failed to upload profile image: %w", err)
	}

	profile.ImageKey = key
	saved, err := s.profileStore.Update(ctx, profile)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to record profile image key: %w", err)
	}

	return saved, nil
}
