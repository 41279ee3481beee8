package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/easyeats/easyeats-server/internal/api/http/context"
	"github.com/easyeats/easyeats-server/internal/model"
	"github.com/easyeats/easyeats-server/internal/testutil"
)

type stubBootstrapService struct {
	profile model.Profile
	err     error

	gotParams       model.CreateProfileParams
	gotSubjectID    string
	gotAccountID    uuid.UUID
	gotUpdateParams model.UpdateProfileParams
}

func (s *stubBootstrapService) Bootstrap(_ context.Context, params model.CreateProfileParams) (model.Profile, error) {
	s.gotParams = params
	return s.profile, s.err
}

func (s *stubBootstrapService) GetBySubject(_ context.Context, subjectID string) (model.Profile, error) {
	s.gotSubjectID = subjectID
	return s.profile, s.err
}

func (s *stubBootstrapService) UpdateBySubject(_ context.Context, accountID uuid.UUID, subjectID string, params model.UpdateProfileParams) (model.Profile, error) {
	s.gotAccountID, s.gotSubjectID, s.gotUpdateParams = accountID, subjectID, params
	return s.profile, s.err
}

type stubAccountService struct {
	account model.Account
	err     error

	gotSignupParams model.SignupParams
	gotAccountID    uuid.UUID
}

func (s *stubAccountService) Signup(_ context.Context, params model.SignupParams) (model.Account, error) {
	s.gotSignupParams = params
	return s.account, s.err
}

func (s *stubAccountService) Get(_ context.Context, accountID uuid.UUID) (model.Account, error) {
	s.gotAccountID = accountID
	return s.account, s.err
}

func (s *stubAccountService) Delete(_ context.Context, accountID uuid.UUID) error {
	s.gotAccountID = accountID
	return s.err
}

func TestUserHandler_CreateProfile(t *testing.T) {
	cm := httpctx.NewManager()
	created := model.Profile{ID: uuid.New(), SubjectID: "uid-42", Email: "a@b.com"}
	bootstrap := &stubBootstrapService{profile: created}
	accounts := &stubAccountService{}

	h := NewUser(bootstrap, accounts, cm, testutil.MakeNoopLogger())

	// No Authorization header: this endpoint serves subjects that cannot
	// authenticate yet.
	payload := `{"subject_id":"uid-42","email":"a@b.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/create_profile", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h.CreateProfile(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "uid-42", bootstrap.gotParams.SubjectID)

	var body struct {
		Profile profileResponse `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, created.ID, body.Profile.ID)
	assert.Nil(t, body.Profile.AccountID)
}

func TestUserHandler_CreateProfile_Duplicate(t *testing.T) {
	cm := httpctx.NewManager()
	bootstrap := &stubBootstrapService{err: model.NewErrProfileExists("uid-42")}
	accounts := &stubAccountService{}

	h := NewUser(bootstrap, accounts, cm, testutil.MakeNoopLogger())

	payload := `{"subject_id":"uid-42","email":"a@b.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/create_profile", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h.CreateProfile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "subject_id")
}

func TestUserHandler_GetProfile(t *testing.T) {
	cm := httpctx.NewManager()
	bootstrap := &stubBootstrapService{profile: model.Profile{ID: uuid.New(), SubjectID: "uid-42"}}
	accounts := &stubAccountService{}

	h := NewUser(bootstrap, accounts, cm, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/users/uid-42/get_profile", nil)
	req = mux.SetURLVars(req, map[string]string{"subjectID": "uid-42"})
	rec := httptest.NewRecorder()

	h.GetProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-42", bootstrap.gotSubjectID)
}

func TestUserHandler_GetProfile_Unknown(t *testing.T) {
	cm := httpctx.NewManager()
	bootstrap := &stubBootstrapService{err: model.ErrNotFound}
	accounts := &stubAccountService{}

	h := NewUser(bootstrap, accounts, cm, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/users/uid-unknown/get_profile", nil)
	req = mux.SetURLVars(req, map[string]string{"subjectID": "uid-unknown"})
	rec := httptest.NewRecorder()

	h.GetProfile(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	cm := httpctx.NewManager()
	accountID := uuid.New()
	bootstrap := &stubBootstrapService{profile: model.Profile{ID: uuid.New(), SubjectID: "uid-42", AccountID: &accountID}}
	accounts := &stubAccountService{}

	h := NewUser(bootstrap, accounts, cm, testutil.MakeNoopLogger())

	payload := `{"user.username":"chef","location":"Riga"}`
	req := authedRequest(http.MethodPut, "/api/users/uid-42/update_profile", strings.NewReader(payload), cm, accountID)
	req = mux.SetURLVars(req, map[string]string{"subjectID": "uid-42"})
	rec := httptest.NewRecorder()

	h.UpdateProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accountID, bootstrap.gotAccountID)
	assert.Equal(t, "uid-42", bootstrap.gotSubjectID)
	require.NotNil(t, bootstrap.gotUpdateParams.Handle)
	assert.Equal(t, "chef", *bootstrap.gotUpdateParams.Handle)
}

func TestUserHandler_UpdateProfile_RequiresAuth(t *testing.T) {
	cm := httpctx.NewManager()
	bootstrap := &stubBootstrapService{}
	accounts := &stubAccountService{}

	h := NewUser(bootstrap, accounts, cm, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPut, "/api/users/uid-42/update_profile", strings.NewReader(`{}`))
	req = mux.SetURLVars(req, map[string]string{"subjectID": "uid-42"})
	rec := httptest.NewRecorder()

	h.UpdateProfile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_Signup(t *testing.T) {
	cm := httpctx.NewManager()
	bootstrap := &stubBootstrapService{}
	accounts := &stubAccountService{account: model.Account{ID: uuid.New(), Handle: "chef", Email: "c@x.com"}}

	h := NewUser(bootstrap, accounts, cm, testutil.MakeNoopLogger())

	payload := `{"username":"chef","email":"c@x.com","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "chef", accounts.gotSignupParams.Handle)
	assert.Equal(t, "s3cret", accounts.gotSignupParams.Password)

	// The password hash never appears on the wire.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Contains(t, rec.Body.String(), `"username":"chef"`)
}

func TestUserHandler_Me(t *testing.T) {
	cm := httpctx.NewManager()
	accountID := uuid.New()
	bootstrap := &stubBootstrapService{}
	accounts := &stubAccountService{account: model.Account{ID: accountID, Handle: "uid-42"}}

	h := NewUser(bootstrap, accounts, cm, testutil.MakeNoopLogger())

	req := authedRequest(http.MethodGet, "/api/users/me", nil, cm, accountID)
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accountID, accounts.gotAccountID)

	var body accountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "uid-42", body.Username)
}

func TestUserHandler_DeleteMe(t *testing.T) {
	cm := httpctx.NewManager()
	accountID := uuid.New()
	bootstrap := &stubBootstrapService{}
	accounts := &stubAccountService{}

	h := NewUser(bootstrap, accounts, cm, testutil.MakeNoopLogger())

	req := authedRequest(http.MethodDelete, "/api/users/me", nil, cm, accountID)
	rec := httptest.NewRecorder()

	h.DeleteMe(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, accountID, accounts.gotAccountID)
}
