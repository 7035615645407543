package api

import (
	"context"
	"net/http"

	"github.com/jobport/adminctl/internal/models"
)

func (c *Client) ListJobs(ctx context.Context) ([]models.Job, error) {
	return request[[]models.Job](ctx, c, http.MethodGet, pathJobs, nil)
}

func (c *Client) GetJob(ctx context.Context, id string) (models.Job, error) {
	return request[models.Job](ctx, c, http.MethodGet, itemPath(pathJobs, id), nil)
}

func (c *Client) CreateJob(ctx context.Context, in models.JobInput) (models.Job, error) {
	return request[models.Job](ctx, c, http.MethodPost, pathJobs, in)
}

func (c *Client) UpdateJob(ctx context.Context, id string, in models.JobInput) (models.Job, error) {
	return request[models.Job](ctx, c, http.MethodPut, itemPath(pathJobs, id), in)
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	_, err := request[struct{}](ctx, c, http.MethodDelete, itemPath(pathJobs, id), nil)
	return err
}
