package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "session:"

// RedisStore keeps each session as a hash under session:<id>.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a store whose hashes expire ttl after their last write.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, id, field string) (string, error) {
	value, err := s.rdb.HGet(ctx, keyPrefix+id, field).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis hget %s: %w", field, err)
	}
	return value, nil
}

func (s *RedisStore) SetNX(ctx context.Context, id, field, value string) (bool, error) {
	key := keyPrefix + id

	var set *redis.BoolCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		set = pipe.HSetNX(ctx, key, field, value)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis hsetnx %s: %w", field, err)
	}
	return set.Val(), nil
}
