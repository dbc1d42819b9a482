package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const (
	accessKey  = "farmatech:access_token"
	refreshKey = "farmatech:refresh_token"
)

// RedisStore keeps the token pair in Redis, for deployments where the
// client runs on more than one host.
type RedisStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisStore(rdb *redis.Client, ctx context.Context) *RedisStore {
	return &RedisStore{rdb: rdb, ctx: ctx}
}

func (s *RedisStore) Tokens() (Tokens, error) {
	access, err := s.rdb.Get(s.ctx, accessKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Tokens{}, err
	}
	refresh, err := s.rdb.Get(s.ctx, refreshKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Tokens{}, err
	}
	if access == "" && refresh == "" {
		return Tokens{}, ErrNoSession
	}
	return Tokens{Access: access, Refresh: refresh}, nil
}

func (s *RedisStore) SetTokens(t Tokens) error {
	if err := s.rdb.Set(s.ctx, accessKey, t.Access, 0).Err(); err != nil {
		return err
	}
	return s.rdb.Set(s.ctx, refreshKey, t.Refresh, 0).Err()
}

func (s *RedisStore) SetAccess(access string) error {
	return s.rdb.Set(s.ctx, accessKey, access, 0).Err()
}

func (s *RedisStore) Clear() error {
	return s.rdb.Del(s.ctx, accessKey, refreshKey).Err()
}
