package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobport/adminctl/internal/api"
	"github.com/jobport/adminctl/internal/cache"
	"github.com/jobport/adminctl/internal/logging"
	"github.com/jobport/adminctl/internal/models"
	"github.com/jobport/adminctl/internal/token"
)

type fakeAuthAPI struct {
	loginRes    api.AuthResult
	loginErr    error
	registerRes api.AuthResult
	registerErr error
	meRes       models.User
	meErr       error
	meCalls     int
}

func (f *fakeAuthAPI) Login(_ context.Context, in models.AuthInput) (api.AuthResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeAuthAPI) Register(_ context.Context, in models.AuthInput) (api.AuthResult, error) {
	return f.registerRes, f.registerErr
}

func (f *fakeAuthAPI) Me(_ context.Context) (models.User, error) {
	f.meCalls++
	return f.meRes, f.meErr
}

func newManager(t *testing.T, a AuthAPI) (*Manager, token.Store) {
	t.Helper()
	tokens := token.NewFileStore(filepath.Join(t.TempDir(), "token"), logging.Discard())
	m := NewManager(a, tokens, cache.New(logging.Discard()), logging.Discard())
	return m, tokens
}

func TestInit_NoToken(t *testing.T) {
	f := &fakeAuthAPI{}
	m, _ := newManager(t, f)

	assert.Equal(t, StateLoading, m.State())
	m.Init(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Nil(t, m.User())
	assert.Zero(t, f.meCalls, "no token means no who-am-I call")
}

func TestInit_WithToken(t *testing.T) {
	f := &fakeAuthAPI{meRes: models.User{ID: "u1", Email: "admin@jobport.example", Role: models.RoleAdmin}}
	m, tokens := newManager(t, f)
	tokens.Set("valid-token")

	m.Init(context.Background())

	assert.Equal(t, StateAuthenticated, m.State())
	require.NotNil(t, m.User())
	assert.Equal(t, "admin@jobport.example", m.User().Email)
	assert.True(t, m.User().IsAdmin())
}

func TestInit_WhoAmIFailure(t *testing.T) {
	f := &fakeAuthAPI{meErr: &api.Error{Kind: api.KindServer, Status: 500, Message: "oops"}}
	m, tokens := newManager(t, f)
	tokens.Set("some-token")

	m.Init(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Nil(t, m.User())
}

func TestLogin_PersistsTokenAndAuthenticates(t *testing.T) {
	f := &fakeAuthAPI{loginRes: api.AuthResult{
		User:  models.User{ID: "u1", Email: "admin@jobport.example"},
		Token: "fresh-token",
	}}
	m, tokens := newManager(t, f)
	m.Init(context.Background())

	err := m.Login(context.Background(), models.AuthInput{
		Email:    "admin@jobport.example",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "fresh-token", tokens.Get())
	require.NotNil(t, m.User())
	assert.Equal(t, "u1", m.User().ID)
}

func TestLogin_ValidationFailureNeverCallsAPI(t *testing.T) {
	f := &fakeAuthAPI{}
	m, tokens := newManager(t, f)
	m.Init(context.Background())

	err := m.Login(context.Background(), models.AuthInput{Email: "bad", Password: "x"})
	require.Error(t, err)
	assert.True(t, api.IsValidation(err))
	assert.Equal(t, "", tokens.Get())
	assert.Equal(t, StateUnauthenticated, m.State())
}

func TestLogin_ServerError(t *testing.T) {
	f := &fakeAuthAPI{loginErr: &api.Error{Kind: api.KindServer, Status: 400, Message: "invalid credentials"}}
	m, tokens := newManager(t, f)
	m.Init(context.Background())

	err := m.Login(context.Background(), models.AuthInput{
		Email:    "admin@jobport.example",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials")
	assert.Equal(t, "", tokens.Get())
	assert.Equal(t, StateUnauthenticated, m.State())
}

func TestRegister_LogsInDirectly(t *testing.T) {
	f := &fakeAuthAPI{registerRes: api.AuthResult{
		User:  models.User{ID: "u2", Email: "new@jobport.example"},
		Token: "new-token",
	}}
	m, tokens := newManager(t, f)
	m.Init(context.Background())

	err := m.Register(context.Background(), models.AuthInput{
		Email:    "new@jobport.example",
		Password: "long-enough",
	})
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "new-token", tokens.Get())
}

func TestLogout(t *testing.T) {
	f := &fakeAuthAPI{loginRes: api.AuthResult{User: models.User{ID: "u1"}, Token: "tok"}}
	m, tokens := newManager(t, f)
	m.Init(context.Background())
	require.NoError(t, m.Login(context.Background(), models.AuthInput{
		Email:    "admin@jobport.example",
		Password: "correct-horse",
	}))

	redirect := m.Logout(context.Background())

	assert.Equal(t, RouteLogin, redirect)
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Nil(t, m.User())
	assert.Equal(t, "", tokens.Get())
}

func TestRefresh_UpdatesUser(t *testing.T) {
	f := &fakeAuthAPI{meRes: models.User{ID: "u1", Favourites: models.FavouriteIDs("j1")}}
	m, tokens := newManager(t, f)
	tokens.Set("tok")
	m.Init(context.Background())
	require.Equal(t, 1, f.meCalls)

	// Same key, still fresh: served from cache.
	require.NoError(t, m.Refresh(context.Background()))
	assert.Equal(t, 1, f.meCalls)
}
