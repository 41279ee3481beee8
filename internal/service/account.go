package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/easyeats/easyeats-server/internal/logger"
	"github.com/easyeats/easyeats-server/internal/model"
)

// Account implements explicit account management. Most accounts are created
// lazily by the Reconciler; Signup is the explicit path that also sets a
// password.
type Account struct {
	accountStore model.AccountStore
	logger       *logger.Logger
}

// NewAccount creates a new Account service.
func NewAccount(accountStore model.AccountStore, logger *logger.Logger) *Account {
	return &Account{
		accountStore: accountStore,
		logger:       logger,
	}
}

// Signup creates an account with a bcrypt password hash.
func (s *Account) Signup(ctx context.Context, params model.SignupParams) (model.Account, error) {
	if err := params.Validate(); err != nil {
		return model.Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account := model.Account{
		ID:           uuid.New(),
		Handle:       params.Handle,
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: hash,
	}

	saved, err := s.accountStore.Create(ctx, account)
	if errors.Is(err, model.ErrDuplicate) {
		return model.Account{}, model.NewErrHandleTaken(params.Handle)
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("Account service: account created",
		"account_id", saved.ID,
		"handle", saved.Handle)

	return saved, nil
}

// Get returns the account by id.
func (s *Account) Get(ctx context.Context, accountID uuid.UUID) (model.Account, error) {
	account, err := s.accountStore.GetByID(ctx, accountID)
	if err != nil {
		return model.Account{}, err
	}

	return account, nil
}

// Delete removes the caller's account. Recipes are deleted with it and the
// profile link is detached, per the schema's foreign-key actions.
func (s *Account) Delete(ctx context.Context, accountID uuid.UUID) error {
	if err := s.accountStore.Delete(ctx, accountID); err != nil {
		return err
	}

	s.logger.Info("Account service: account deleted",
		"account_id", accountID)

	return nil
}
