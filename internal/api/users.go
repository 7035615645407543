package api

import (
	"context"
	"net/http"

	"github.com/jobport/adminctl/internal/models"
)

// AuthResult is what both auth endpoints hand back on success.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (c *Client) Register(ctx context.Context, in models.AuthInput) (AuthResult, error) {
	return request[AuthResult](ctx, c, http.MethodPost, pathRegister, in)
}

func (c *Client) Login(ctx context.Context, in models.AuthInput) (AuthResult, error) {
	return request[AuthResult](ctx, c, http.MethodPost, pathLogin, in)
}

// Me returns the current user. Favourites arrive as plain job ids here.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	return request[models.User](ctx, c, http.MethodGet, pathMe, nil)
}

// UpdateMe replaces the sections present in in on the current user record.
func (c *Client) UpdateMe(ctx context.Context, in models.UserUpdate) (models.User, error) {
	return request[models.User](ctx, c, http.MethodPut, pathMe, in)
}

// Favourites returns the current user with favourite jobs embedded as full
// job objects rather than ids.
func (c *Client) Favourites(ctx context.Context) (models.User, error) {
	return request[models.User](ctx, c, http.MethodGet, pathFavourites, nil)
}

// ToggleFavourite adds jobID to the favourites list when absent and removes
// it when present.
func (c *Client) ToggleFavourite(ctx context.Context, jobID string) (models.User, error) {
	body := struct {
		JobID string `json:"jobId"`
	}{JobID: jobID}
	return request[models.User](ctx, c, http.MethodPut, pathFavourites, body)
}
