// Package session holds the process-wide authentication state: the current
// user (or none), derived once at startup from the "who am I" endpoint, and
// the login/register/logout operations the rest of the client uses.
package session

import (
	"context"

	"github.com/jobport/adminctl/internal/api"
	"github.com/jobport/adminctl/internal/cache"
	"github.com/jobport/adminctl/internal/logging"
	"github.com/jobport/adminctl/internal/models"
	"github.com/jobport/adminctl/internal/token"
)

// State is the session lifecycle: Loading until the startup "who am I" call
// settles, then Authenticated or Unauthenticated.
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// AuthAPI is the slice of the API client the session needs.
type AuthAPI interface {
	Register(ctx context.Context, in models.AuthInput) (api.AuthResult, error)
	Login(ctx context.Context, in models.AuthInput) (api.AuthResult, error)
	Me(ctx context.Context) (models.User, error)
}

// Manager owns the session state machine.
//
// It is meant for the single-threaded REPL turn model: all access happens
// from one goroutine, so no locking is done here. The token store and the
// cache carry their own synchronization.
type Manager struct {
	api    AuthAPI
	tokens token.Store
	cache  *cache.Store
	log    logging.Logger
	state  State
	user   *models.User
}

func NewManager(a AuthAPI, tokens token.Store, store *cache.Store, log logging.Logger) *Manager {
	return &Manager{
		api:    a,
		tokens: tokens,
		cache:  store,
		log:    log.With("component", "session"),
		state:  StateLoading,
	}
}

// Init attempts to restore the session: with no stored token it settles on
// Unauthenticated immediately, otherwise it resolves the current user
// through the cache. A failing "who am I" (including a 401, which clears
// the token as a side effect of the HTTP layer) also settles on
// Unauthenticated; the failure is logged, not surfaced.
func (m *Manager) Init(ctx context.Context) {
	if m.tokens.Get() == "" {
		m.setUnauthenticated()
		return
	}

	user, err := cache.Get(ctx, m.cache, cache.MeKey(), m.api.Me)
	if err != nil {
		m.log.Warn(ctx, "session restore failed", "error", err)
		m.setUnauthenticated()
		return
	}
	m.setAuthenticated(user)
}

// Login validates the credentials, authenticates, persists the returned
// token and transitions to Authenticated.
func (m *Manager) Login(ctx context.Context, in models.AuthInput) error {
	if err := models.Validate(in); err != nil {
		return api.ValidationError(err)
	}

	res, err := m.api.Login(ctx, in)
	if err != nil {
		return err
	}

	m.tokens.Set(res.Token)
	m.cache.Invalidate(cache.MeKey())
	m.setAuthenticated(res.User)
	m.log.Info(ctx, "logged in", "email", res.User.Email)
	return nil
}

// Register creates an account and logs the new user straight in with the
// returned token.
func (m *Manager) Register(ctx context.Context, in models.AuthInput) error {
	if err := models.Validate(in); err != nil {
		return api.ValidationError(err)
	}

	res, err := m.api.Register(ctx, in)
	if err != nil {
		return err
	}

	m.tokens.Set(res.Token)
	m.cache.Invalidate(cache.MeKey())
	m.setAuthenticated(res.User)
	m.log.Info(ctx, "registered", "email", res.User.Email)
	return nil
}

// Logout clears the token, drops the user record and returns the route the
// caller must navigate to.
func (m *Manager) Logout(ctx context.Context) string {
	m.tokens.Clear()
	m.cache.Invalidate(cache.MeKey(), cache.FavouritesKey())
	m.setUnauthenticated()
	m.log.Info(ctx, "logged out")
	return RouteLogin
}

// Refresh re-resolves the current user, e.g. after a profile mutation
// invalidated the "me" key.
func (m *Manager) Refresh(ctx context.Context) error {
	user, err := cache.Get(ctx, m.cache, cache.MeKey(), m.api.Me)
	if err != nil {
		if api.IsUnauthorized(err) {
			m.setUnauthenticated()
		}
		return err
	}
	m.setAuthenticated(user)
	return nil
}

func (m *Manager) setAuthenticated(user models.User) {
	m.user = &user
	m.state = StateAuthenticated
}

func (m *Manager) setUnauthenticated() {
	m.user = nil
	m.state = StateUnauthenticated
}

func (m *Manager) State() State { return m.state }

// User returns the current user, nil when not authenticated.
func (m *Manager) User() *models.User { return m.user }

func (m *Manager) IsAuthenticated() bool { return m.state == StateAuthenticated }
