package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the slots in Redis, for installations that already run
// one and want the reference shared across machines. Keys never expire.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(url, password string, db int, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	if db != 0 {
		opts.DB = db
	}

	return &RedisStore{rdb: redis.NewClient(opts), prefix: prefix}, nil
}

var _ Store = (*RedisStore)(nil)

func (s *RedisStore) LastBookingID(ctx context.Context) (string, error) {
	return s.get(ctx, s.key("last_booking_id"))
}

func (s *RedisStore) SetLastBookingID(ctx context.Context, id string) error {
	return s.rdb.Set(ctx, s.key("last_booking_id"), id, 0).Err()
}

func (s *RedisStore) SessionToken(ctx context.Context) (string, error) {
	return s.get(ctx, s.key("session_token"))
}

func (s *RedisStore) SetSessionToken(ctx context.Context, token string) error {
	return s.rdb.Set(ctx, s.key("session_token"), token, 0).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func (s *RedisStore) get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}
