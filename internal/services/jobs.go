package services

import (
	"context"

	"github.com/jobport/adminctl/internal/api"
	"github.com/jobport/adminctl/internal/cache"
	"github.com/jobport/adminctl/internal/models"
)

// JobAPI is the slice of the API client the job pages need.
type JobAPI interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (models.Job, error)
	CreateJob(ctx context.Context, in models.JobInput) (models.Job, error)
	UpdateJob(ctx context.Context, id string, in models.JobInput) (models.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

type JobService struct {
	api   JobAPI
	cache *cache.Store
}

func NewJobService(a JobAPI, store *cache.Store) *JobService {
	return &JobService{api: a, cache: store}
}

func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	return cache.Get(ctx, s.cache, cache.JobsKey(), s.api.ListJobs)
}

func (s *JobService) Get(ctx context.Context, id string) (models.Job, error) {
	return cache.Get(ctx, s.cache, cache.JobKey(id), func(ctx context.Context) (models.Job, error) {
		return s.api.GetJob(ctx, id)
	})
}

func (s *JobService) Create(ctx context.Context, in models.JobInput) (models.Job, error) {
	if err := models.Validate(in); err != nil {
		return models.Job{}, api.ValidationError(err)
	}
	created, err := s.api.CreateJob(ctx, in)
	if err != nil {
		return models.Job{}, err
	}
	s.cache.Invalidate(cache.JobsKey())
	return created, nil
}

func (s *JobService) Update(ctx context.Context, id string, in models.JobInput) (models.Job, error) {
	if err := models.Validate(in); err != nil {
		return models.Job{}, api.ValidationError(err)
	}
	updated, err := s.api.UpdateJob(ctx, id, in)
	if err != nil {
		return models.Job{}, err
	}
	s.cache.Invalidate(cache.JobsKey(), cache.JobKey(id))
	return updated, nil
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteJob(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.JobsKey(), cache.JobKey(id))
	return nil
}
