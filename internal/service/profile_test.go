package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/easyeats/easyeats-server/internal/mocks"
	"github.com/easyeats/easyeats-server/internal/model"
	"github.com/easyeats/easyeats-server/internal/testutil"
)

func newProfileService(profileStore model.ProfileStore, accountStore model.AccountStore, storage model.Storage) *Profile {
	return NewProfile(profileStore, accountStore, storage, testutil.MakeNoopLogger())
}

func strp(s string) *string { return &s }

func TestProfile_GetOwn_NotOwned(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	ownerID := uuid.New()
	strangerID := uuid.New()
	profile := model.Profile{ID: uuid.New(), SubjectID: "uid-1", AccountID: &ownerID}

	profileStore.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)

	s := newProfileService(profileStore, accountStore, storage)

	// Somebody else's profile reads exactly like a missing one.
	_, err := s.GetOwn(ctx, strangerID, profile.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	got, err := s.GetOwn(ctx, ownerID, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)
}

func TestProfile_CreateOwn_SetsOwnerFromContext(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	accountID := uuid.New()
	params := model.CreateProfileParams{SubjectID: "uid-7", Email: "x@y.com"}

	profileStore.On("Create", mock.Anything, mock.MatchedBy(func(p model.Profile) bool {
		return p.AccountID != nil && *p.AccountID == accountID && p.SubjectID == "uid-7"
	})).Return(model.Profile{ID: uuid.New(), SubjectID: "uid-7", AccountID: &accountID}, nil)

	s := newProfileService(profileStore, accountStore, storage)

	got, err := s.CreateOwn(ctx, accountID, params)
	require.NoError(t, err)
	require.NotNil(t, got.AccountID)
	assert.Equal(t, accountID, *got.AccountID)
}

func TestProfile_CreateOwn_Validation(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	s := newProfileService(profileStore, accountStore, storage)

	_, err := s.CreateOwn(ctx, uuid.New(), model.CreateProfileParams{})

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	profileStore.AssertNotCalled(t, "Create")
}

func TestProfile_Bootstrap_DuplicateSubject(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	profileStore.On("Create", mock.Anything, mock.Anything).Return(model.Profile{}, model.ErrDuplicate)

	s := newProfileService(profileStore, accountStore, storage)

	_, err := s.Bootstrap(ctx, model.CreateProfileParams{SubjectID: "uid-7", Email: "x@y.com"})

	var cerr *model.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "subject_id", cerr.Field)
	assert.Contains(t, cerr.Message, "uid-7")
}

func TestProfile_Bootstrap_CreatesUnlinked(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	profileStore.On("Create", mock.Anything, mock.MatchedBy(func(p model.Profile) bool {
		return p.AccountID == nil && p.SubjectID == "uid-42" && p.Email == "a@b.com"
	})).Return(model.Profile{ID: uuid.New(), SubjectID: "uid-42", Email: "a@b.com"}, nil)

	s := newProfileService(profileStore, accountStore, storage)

	got, err := s.Bootstrap(ctx, model.CreateProfileParams{SubjectID: "uid-42", Email: "a@b.com"})
	require.NoError(t, err)
	assert.Nil(t, got.AccountID)
}

func TestProfile_UpdateOwn_ProfileFieldsOnly(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	accountID := uuid.New()
	profile := model.Profile{
		ID:        uuid.New(),
		SubjectID: "uid-1",
		AccountID: &accountID,
		Bio:       "old bio",
		Location:  "Riga",
	}

	profileStore.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	profileStore.On("Update", mock.Anything, mock.MatchedBy(func(p model.Profile) bool {
		return p.Bio == "new bio" && p.Location == "Riga"
	})).Return(model.Profile{ID: profile.ID, Bio: "new bio", Location: "Riga"}, nil)

	s := newProfileService(profileStore, accountStore, storage)

	got, err := s.UpdateOwn(ctx, accountID, profile.ID, model.UpdateProfileParams{Bio: strp("new bio")})
	require.NoError(t, err)
	assert.Equal(t, "new bio", got.Bio)

	// No account field was touched, so the account must stay out of it.
	accountStore.AssertNotCalled(t, "GetByID")
	profileStore.AssertNotCalled(t, "UpdateWithAccount")
}

func TestProfile_UpdateOwn_AccountFields(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	accountID := uuid.New()
	profile := model.Profile{ID: uuid.New(), SubjectID: "uid-1", AccountID: &accountID, Email: "old@x.com"}
	account := model.Account{ID: accountID, Handle: "old-handle", Email: "old@x.com"}

	profileStore.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	accountStore.On("GetByID", mock.Anything, accountID).Return(account, nil)
	profileStore.On("UpdateWithAccount", mock.Anything,
		mock.MatchedBy(func(p model.Profile) bool { return p.Email == "new@x.com" }),
		mock.MatchedBy(func(a model.Account) bool { return a.Handle == "chef" && a.Email == "new@x.com" }),
	).Return(model.Profile{ID: profile.ID, Email: "new@x.com"}, model.Account{ID: accountID, Handle: "chef"}, nil)

	s := newProfileService(profileStore, accountStore, storage)

	params := model.UpdateProfileParams{Handle: strp("chef"), Email: strp("new@x.com")}
	got, err := s.UpdateOwn(ctx, accountID, profile.ID, params)
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", got.Email)
	profileStore.AssertNotCalled(t, "Update")
}

func TestProfile_UpdateOwn_HandleTaken(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	accountID := uuid.New()
	profile := model.Profile{ID: uuid.New(), SubjectID: "uid-1", AccountID: &accountID}
	account := model.Account{ID: accountID, Handle: "old"}

	profileStore.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	accountStore.On("GetByID", mock.Anything, accountID).Return(account, nil)
	profileStore.On("UpdateWithAccount", mock.Anything, mock.Anything, mock.Anything).
		Return(model.Profile{}, model.Account{}, model.ErrDuplicate)

	s := newProfileService(profileStore, accountStore, storage)

	_, err := s.UpdateOwn(ctx, accountID, profile.ID, model.UpdateProfileParams{Handle: strp("taken")})

	var cerr *model.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "handle", cerr.Field)
}

func TestProfile_UpdateOwn_BlankHandle(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	s := newProfileService(profileStore, accountStore, storage)

	_, err := s.UpdateOwn(ctx, uuid.New(), uuid.New(), model.UpdateProfileParams{Handle: strp("  ")})

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "user.username", verr.Fields[0].Field)
	profileStore.AssertNotCalled(t, "GetByID")
}

func TestProfile_UpdateBySubject_NotOwned(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	ownerID := uuid.New()
	profile := model.Profile{ID: uuid.New(), SubjectID: "uid-9", AccountID: &ownerID}

	profileStore.On("GetBySubjectID", mock.Anything, "uid-9").Return(profile, nil)

	s := newProfileService(profileStore, accountStore, storage)

	_, err := s.UpdateBySubject(ctx, uuid.New(), "uid-9", model.UpdateProfileParams{Bio: strp("hi")})
	assert.ErrorIs(t, err, model.ErrNotFound)
	profileStore.AssertNotCalled(t, "Update")
}

func TestProfile_DeleteOwn(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	accountID := uuid.New()
	profile := model.Profile{ID: uuid.New(), SubjectID: "uid-1", AccountID: &accountID}

	profileStore.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	profileStore.On("Delete", mock.Anything, profile.ID).Return(nil)

	s := newProfileService(profileStore, accountStore, storage)

	require.NoError(t, s.DeleteOwn(ctx, accountID, profile.ID))

	err := s.DeleteOwn(ctx, uuid.New(), profile.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	profileStore.AssertNumberOfCalls(t, "Delete", 1)
}

func TestProfile_UploadImage(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	accountID := uuid.New()
	profile := model.Profile{ID: uuid.New(), SubjectID: "uid-1", AccountID: &accountID}
	key := "profile_pictures/" + profile.ID.String()

	profileStore.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	storage.On("Upload", mock.Anything, key, mock.Anything).Return(nil)
	profileStore.On("Update", mock.Anything, mock.MatchedBy(func(p model.Profile) bool {
		return p.ImageKey == key
	})).Return(model.Profile{ID: profile.ID, ImageKey: key}, nil)

	s := newProfileService(profileStore, accountStore, storage)

	got, err := s.UploadImage(ctx, accountID, profile.ID, strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.Equal(t, key, got.ImageKey)
}

func TestProfile_UploadImage_StorageFailure(t *testing.T) {
	ctx := context.Background()
	profileStore := &servermocks.ProfileStore{}
	accountStore := &servermocks.AccountStore{}
	storage := &servermocks.Storage{}

	accountID := uuid.New()
	profile := model.Profile{ID: uuid.New(), SubjectID: "uid-1", AccountID: &accountID}

	profileStore.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket unavailable"))

	s := newProfileService(profileStore, accountStore, storage)

	_, err := s.UploadImage(ctx, accountID, profile.ID, strings.NewReader("png bytes"))
	require.Error(t, err)
	profileStore.AssertNotCalled(t, "Update")
}
