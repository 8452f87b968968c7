package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in redis with the configured TTL, so sessions
// survive process restarts and are shared across instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Create(ctx context.Context, principal *model.Principal) (string, error) {
	token := newToken()
	if err := s.set(ctx, token, principal); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*model.Principal, error) {
	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var principal model.Principal
	if err := json.Unmarshal(payload, &principal); err != nil {
		return nil, fmt.Errorf("failed to decode session payload: %w", err)
	}

	return &principal, nil
}

func (s *RedisStore) Update(ctx context.Context, token string, principal *model.Principal) error {
	if _, err := s.Get(ctx, token); err != nil {
		return err
	}
	return s.set(ctx, token, principal)
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func (s *RedisStore) set(ctx context.Context, token string, principal *model.Principal) error {
	payload, err := json.Marshal(principal)
	if err != nil {
		return fmt.Errorf("failed to encode session payload: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}
