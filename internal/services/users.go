package services

import (
	"context"

	"github.com/jobport/adminctl/internal/api"
	"github.com/jobport/adminctl/internal/cache"
	"github.com/jobport/adminctl/internal/models"
)

// UserAPI is the slice of the API client the profile and favourites pages
// need.
type UserAPI interface {
	Me(ctx context.Context) (models.User, error)
	UpdateMe(ctx context.Context, in models.UserUpdate) (models.User, error)
	Favourites(ctx context.Context) (models.User, error)
	ToggleFavourite(ctx context.Context, jobID string) (models.User, error)
}

type UserService struct {
	api   UserAPI
	cache *cache.Store
}

func NewUserService(a UserAPI, store *cache.Store) *UserService {
	return &UserService{api: a, cache: store}
}

func (s *UserService) Me(ctx context.Context) (models.User, error) {
	return cache.Get(ctx, s.cache, cache.MeKey(), s.api.Me)
}

// Update sends one section-wise full replace of the profile and invalidates
// the "me" key so dependent views refetch. Note there is no optimistic
// concurrency control on the wire: concurrent admin sessions last-write-win.
func (s *UserService) Update(ctx context.Context, in models.UserUpdate) (models.User, error) {
	if err := models.Validate(in); err != nil {
		return models.User{}, api.ValidationError(err)
	}
	updated, err := s.api.UpdateMe(ctx, in)
	if err != nil {
		return models.User{}, err
	}
	s.cache.Invalidate(cache.MeKey())
	return updated, nil
}

// Favourites returns the current user with favourite jobs embedded.
func (s *UserService) Favourites(ctx context.Context) (models.User, error) {
	return cache.Get(ctx, s.cache, cache.FavouritesKey(), s.api.Favourites)
}

// IsFavourite is the derived per-job boolean: membership of jobID in the
// cached "me" record's favourites list.
func (s *UserService) IsFavourite(ctx context.Context, jobID string) (bool, error) {
	me, err := s.Me(ctx)
	if err != nil {
		return false, err
	}
	return me.Favourites.Contains(jobID), nil
}

// ToggleFavourite flips jobID's membership in the favourites list. There is
// no optimistic update: the derived boolean changes only after the "me"
// refetch that the invalidation forces.
func (s *UserService) ToggleFavourite(ctx context.Context, jobID string) error {
	if _, err := s.api.ToggleFavourite(ctx, jobID); err != nil {
		return err
	}
	s.cache.Invalidate(cache.MeKey(), cache.FavouritesKey())
	return nil
}
