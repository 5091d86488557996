package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStateStore keeps scopes as JSON strings with a per-key TTL. Expired
// keys are dropped by Redis itself, so Prune has nothing to do.
type RedisStateStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStateStore connects to redisURL and checks the connection.
func NewRedisStateStore(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStateStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return NewRedisStateStoreFromClient(client, ttl), nil
}

func NewRedisStateStoreFromClient(client *redis.Client, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{client: client, keyPrefix: "portfolio:scope", ttl: ttl}
}

func (s *RedisStateStore) key(scope, page string) string {
	return fmt.Sprintf("%s:%s:%s", s.keyPrefix, page, scope)
}

func (s *RedisStateStore) Load(ctx context.Context, scope, page string, dst any) error {
	raw, err := s.client.Get(ctx, s.key(scope, page)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrScopeNotFound
	}
	if err != nil {
		return fmt.Errorf("load %s/%s: %w", page, scope, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s/%s: %w", page, scope, err)
	}
	return nil
}

func (s *RedisStateStore) Save(ctx context.Context, scope, page string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", page, scope, err)
	}
	if err := s.client.Set(ctx, s.key(scope, page), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("save %s/%s: %w", page, scope, err)
	}
	return nil
}

func (s *RedisStateStore) Prune(context.Context, time.Time) (int64, error) { return 0, nil }

func (s *RedisStateStore) Close() error { return s.client.Close() }
