// Package services contains the page-facing application services: cached
// reads, validated mutations and the cache-key invalidation that ties them
// together.
package services

import (
	"context"

	"github.com/jobport/adminctl/internal/api"
	"github.com/jobport/adminctl/internal/cache"
	"github.com/jobport/adminctl/internal/models"
)

// CategoryAPI is the slice of the API client the category pages need.
type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (models.Category, error)
	CreateCategory(ctx context.Context, in models.CategoryInput) (models.Category, error)
	UpdateCategory(ctx context.Context, id string, in models.CategoryInput) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CategoryService struct {
	api   CategoryAPI
	cache *cache.Store
}

func NewCategoryService(a CategoryAPI, store *cache.Store) *CategoryService {
	return &CategoryService{api: a, cache: store}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return cache.Get(ctx, s.cache, cache.CategoriesKey(), s.api.ListCategories)
}

func (s *CategoryService) Get(ctx context.Context, id string) (models.Category, error) {
	return cache.Get(ctx, s.cache, cache.CategoryKey(id), func(ctx context.Context) (models.Category, error) {
		return s.api.GetCategory(ctx, id)
	})
}

// Category mutations invalidate the whole cache: jobs reference categories
// by id, so any job view may be rendering a name that just changed.

func (s *CategoryService) Create(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	if err := models.Validate(in); err != nil {
		return models.Category{}, api.ValidationError(err)
	}
	created, err := s.api.CreateCategory(ctx, in)
	if err != nil {
		return models.Category{}, err
	}
	s.cache.InvalidateAll()
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, in models.CategoryInput) (models.Category, error) {
	if err := models.Validate(in); err != nil {
		return models.Category{}, api.ValidationError(err)
	}
	updated, err := s.api.UpdateCategory(ctx, id, in)
	if err != nil {
		return models.Category{}, err
	}
	s.cache.InvalidateAll()
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateAll()
	return nil
}
