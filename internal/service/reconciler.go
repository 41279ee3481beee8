package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/easyeats/easyeats-server/internal/logger"
	"github.com/easyeats/easyeats-server/internal/model"
)

// Reconciler maps a verified external identity to exactly one local account,
// creating the account on first authenticated access.
type Reconciler struct {
	verifier      model.IdentityVerifier
	profileStore  model.ProfileStore
	accountStore  model.AccountStore
	verifyTimeout time.Duration
	logger        *logger.Logger
}

// NewReconciler creates a new Reconciler.
func NewReconciler(
	verifier model.IdentityVerifier,
	profileStore model.ProfileStore,
	accountStore model.AccountStore,
	verifyTimeout time.Duration,
	logger *logger.Logger,
) *Reconciler {
	return &Reconciler{
		verifier:      verifier,
		profileStore:  profileStore,
		accountStore:  accountStore,
		verifyTimeout: verifyTimeout,
		logger:        logger,
	}
}

// Reconcile resolves the Authorization header to the local account. An absent
// header yields the unauthenticated reason; verification failures of any kind
// are normalized to invalid_credential with the cause logged only, so the
// response gives no verification oracle. A verified subject without a profile
// is no_such_profile: profiles are pre-created out of band, Reconcile is not
// a signup path.
func (s *Reconciler) Reconcile(ctx context.Context, authorization string) (model.Account, error) {
	token, err := bearerToken(authorization)
	if err != nil {
		return model.Account{}, err
	}

	verifyCtx, cancel := context.WithTimeout(ctx, s.verifyTimeout)
	defer cancel()

	subjectID, err := s.verifier.Verify(verifyCtx, token)
	if err != nil {
		s.logger.Info("Reconciler: credential verification failed",
			"error", err.Error())
		return model.Account{}, model.NewErrInvalidCredential()
	}

	profile, err := s.profileStore.GetBySubjectID(ctx, subjectID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Reconciler: no profile for verified subject",
			"subject_id", subjectID)
		return model.Account{}, model.NewErrNoSuchProfile()
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get profile by subject id: %w", err)
	}

	if profile.AccountID != nil {
		account, err := s.accountStore.GetByID(ctx, *profile.AccountID)
		if err != nil {
			return model.Account{}, fmt.Errorf("failed to get linked account: %w", err)
		}
		return account, nil
	}

	account := model.Account{
		ID:        uuid.New(),
		Handle:    profile.SubjectID,
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	}

	created, err := s.profileStore.LinkAccount(ctx, profile.ID, account)
	if err == nil {
		s.logger.Info("Reconciler: created account for profile",
			"subject_id", subjectID,
			"account_id", created.ID)
		return created, nil
	}
	if !errors.Is(err, model.ErrDuplicate) {
		return model.Account{}, fmt.Errorf("failed to create account for profile: %w", err)
	}

	// Lost the create-and-link race. The winner has linked the profile by the
	// time our transaction failed on the uniqueness constraint; re-read once.
	s.logger.Debug("Reconciler: lost account creation race, re-reading profile",
		"subject_id", subjectID)

	profile, err = s.profileStore.GetBySubjectID(ctx, subjectID)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to re-read profile after create conflict: %w", err)
	}
	if profile.AccountID == nil {
		return model.Account{}, fmt.Errorf("profile for subject %q still unlinked after create conflict", subjectID)
	}

	linked, err := s.accountStore.GetByID(ctx, *profile.AccountID)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get linked account: %w", err)
	}

	return linked, nil
}

const bearerPrefix = "Bearer "

// bearerToken extracts the token from an Authorization header. No header at
// all is anonymous, which is distinct from a malformed credential.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", model.NewErrUnauthenticated()
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", model.NewErrInvalidCredential()
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", model.NewErrInvalidCredential()
	}
	return token, nil
}
