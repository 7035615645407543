package api

import (
	"context"
	"net/http"

	"github.com/jobport/adminctl/internal/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	return request[[]models.Category](ctx, c, http.MethodGet, pathCategories, nil)
}

func (c *Client) GetCategory(ctx context.Context, id string) (models.Category, error) {
	return request[models.Category](ctx, c, http.MethodGet, itemPath(pathCategories, id), nil)
}

func (c *Client) CreateCategory(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	return request[models.Category](ctx, c, http.MethodPost, pathCategories, in)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in models.CategoryInput) (models.Category, error) {
	return request[models.Category](ctx, c, http.MethodPut, itemPath(pathCategories, id), in)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, err := request[struct{}](ctx, c, http.MethodDelete, itemPath(pathCategories, id), nil)
	return err
}
