package session

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
)

// MemoryStore keeps sessions in process memory. Used when no redis url is
// configured and in tests. Sessions are lost on restart.
type MemoryStore struct {
	cache *gocache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

func (s *MemoryStore) Create(_ context.Context, principal *model.Principal) (string, error) {
	token := newToken()
	copy := *principal
	s.cache.SetDefault(token, &copy)
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*model.Principal, error) {
	v, ok := s.cache.Get(token)
	if !ok {
		return nil, ErrNotFound
	}

	// Hand back a copy so callers cannot mutate the stored principal.
	stored := v.(*model.Principal)
	copy := *stored
	return &copy, nil
}

func (s *MemoryStore) Update(_ context.Context, token string, principal *model.Principal) error {
	if _, ok := s.cache.Get(token); !ok {
		return ErrNotFound
	}

	copy := *principal
	s.cache.SetDefault(token, &copy)
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.cache.Delete(token)
	return nil
}
