package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"game_catalog/internal/model"
)

const redisKeyPrefix = "session:"

// RedisStore is the distributed session backend. Snapshots are stored as
// JSON under a prefixed key; expiry is enforced by redis itself via the
// per-key TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore with the given time-to-live
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(sid string) string {
	return redisKeyPrefix + sid
}

func (s *RedisStore) Get(ctx context.Context, sid string) (*model.SessionUser, error) {
	val, err := s.client.Get(ctx, s.key(sid)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	user := &model.SessionUser{}
	if err := json.Unmarshal([]byte(val), user); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return user, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, user *model.SessionUser) error {
	val, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sid), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
