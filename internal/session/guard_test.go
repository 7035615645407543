package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobport/adminctl/internal/api"
	"github.com/jobport/adminctl/internal/models"
)

func TestIsAuthRoute(t *testing.T) {
	assert.True(t, IsAuthRoute(RouteLogin))
	assert.True(t, IsAuthRoute(RouteRegister))
	assert.False(t, IsAuthRoute(RouteHome))
	assert.False(t, IsAuthRoute(RouteJobs))
}

func TestGuard_UnauthenticatedWithoutToken(t *testing.T) {
	m, _ := newManager(t, &fakeAuthAPI{})
	m.Init(context.Background())

	tests := []struct {
		route        string
		want         string
		wantRedirect bool
	}{
		{RouteHome, RouteLogin, true},
		{RouteJobs, RouteLogin, true},
		{RouteProfile, RouteLogin, true},
		{RouteLogin, RouteLogin, false},
		{RouteRegister, RouteRegister, false},
	}
	for _, tt := range tests {
		got, redirected := m.Guard(tt.route)
		assert.Equal(t, tt.want, got, "route %s", tt.route)
		assert.Equal(t, tt.wantRedirect, redirected, "route %s", tt.route)
	}
}

func TestGuard_AuthenticatedLeavesAuthRoutes(t *testing.T) {
	f := &fakeAuthAPI{loginRes: api.AuthResult{User: models.User{ID: "u1"}, Token: "tok"}}
	m, _ := newManager(t, f)
	m.Init(context.Background())
	require.NoError(t, m.Login(context.Background(), models.AuthInput{
		Email:    "admin@jobport.example",
		Password: "correct-horse",
	}))

	// Visiting /login while logged in bounces home.
	got, redirected := m.Guard(RouteLogin)
	assert.Equal(t, RouteHome, got)
	assert.True(t, redirected)

	got, redirected = m.Guard(RouteJobs)
	assert.Equal(t, RouteJobs, got)
	assert.False(t, redirected)
}

func TestGuard_TokenClearedByUnauthorizedResponse(t *testing.T) {
	// A 401 clears the stored token at the HTTP layer; the next guard
	// evaluation must redirect to /login even though the in-memory state
	// still says authenticated.
	f := &fakeAuthAPI{loginRes: api.AuthResult{User: models.User{ID: "u1"}, Token: "tok"}}
	m, tokens := newManager(t, f)
	m.Init(context.Background())
	require.NoError(t, m.Login(context.Background(), models.AuthInput{
		Email:    "admin@jobport.example",
		Password: "correct-horse",
	}))

	tokens.Clear()

	got, redirected := m.Guard(RouteJobs)
	assert.Equal(t, RouteLogin, got)
	assert.True(t, redirected)
}
