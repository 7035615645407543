// Package cache is the client's server-state cache: the most recent
// successful fetch per semantic key, plus just enough bookkeeping to know
// when a key must be fetched again.
//
// Mutations never write results into the cache. They invalidate keys, and
// the next read fetches fresh data. Invalidation marks data stale without
// deleting it, so views can keep rendering the old value while the refetch
// runs.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jobport/adminctl/internal/logging"
)

// Key identifies one fetchable resource or collection.
type Key string

func CategoriesKey() Key        { return "categories" }
func CategoryKey(id string) Key { return Key("category:" + id) }
func JobsKey() Key              { return "jobs" }
func JobKey(id string) Key      { return Key("job:" + id) }
func MeKey() Key                { return "me" }
func FavouritesKey() Key        { return "me:favourites" }

// Status is the lifecycle of one cached key.
type Status int

const (
	// Idle: never fetched.
	Idle Status = iota
	// Loading: a fetch is in flight.
	Loading
	// Ready: last fetch succeeded; data is served without refetching.
	Ready
	// Stale: invalidated; data is retained but the next read refetches.
	Stale
	// Failed: last fetch errored; the next read retries.
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Stale:
		return "stale"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type entry struct {
	data        any
	status      Status
	err         error
	lastFetched time.Time
}

// Store maps semantic keys to their latest fetch result.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
	group   singleflight.Group
	log     logging.Logger
	now     func() time.Time
}

func New(log logging.Logger) *Store {
	return &Store{
		entries: make(map[Key]*entry),
		log:     log.With("component", "cache"),
		now:     time.Now,
	}
}

// Get returns the cached value for key, fetching it first when the key is
// idle, stale or failed. Concurrent reads of one key while a fetch is in
// flight share that single request instead of issuing their own.
func (s *Store) Get(ctx context.Context, key Key, fetch func(ctx context.Context) (any, error)) (any, error) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok && e.status == Ready {
		data := e.data
		s.mu.Unlock()
		return data, nil
	}
	if !ok {
		e = &entry{}
		s.entries[key] = e
	}
	e.status = Loading
	s.mu.Unlock()

	v, err, shared := s.group.Do(string(key), func() (any, error) {
		return fetch(ctx)
	})
	if shared {
		s.log.Debug(ctx, "coalesced fetch", "key", string(key))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		e.status = Failed
		e.err = err
		return nil, err
	}
	e.data = v
	e.status = Ready
	e.err = nil
	e.lastFetched = s.now()
	return v, nil
}

// Invalidate marks the given keys stale. Data is retained; unknown keys are
// ignored.
func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		if e, ok := s.entries[key]; ok && e.status == Ready {
			e.status = Stale
		}
	}
}

// InvalidateAll marks every cached key stale.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.status == Ready {
			e.status = Stale
		}
	}
}

// Status reports the lifecycle state of key. Unknown keys are Idle.
func (s *Store) Status(key Key) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		return e.status
	}
	return Idle
}

// Peek returns whatever data the key currently holds, fresh or stale,
// without triggering a fetch.
func (s *Store) Peek(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || e.data == nil {
		return nil, false
	}
	return e.data, true
}

// LastFetched returns when key last fetched successfully, zero if never.
func (s *Store) LastFetched(key Key) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		return e.lastFetched
	}
	return time.Time{}
}

// Get is the typed read: same contract as Store.Get, with the concrete type
// restored for the caller.
func Get[T any](ctx context.Context, s *Store, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	v, err := s.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: key %q holds %T, want %T", key, v, zero)
	}
	return t, nil
}
