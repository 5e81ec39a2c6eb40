package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SessionStore tracks which issued tokens are still live. A token missing
// from the store is treated as revoked even if its signature verifies.
type SessionStore interface {
	Put(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

const sessionKeyPrefix = "session"

type redisSessionStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisSessionStore(client *redis.Client, log *logrus.Logger) SessionStore {
	return &redisSessionStore{client: client, log: log}
}

func sessionKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", sessionKeyPrefix, userID.String(), tokenID)
}

func (s *redisSessionStore) Put(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(userID, tokenID), "valid", ttl).Err(); err != nil {
		s.log.Warnf("Failed to store session in Redis: %+v", err)
		return err
	}
	return nil
}

func (s *redisSessionStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, sessionKey(userID, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check session in Redis: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := s.client.Del(ctx, sessionKey(userID, tokenID)).Err(); err != nil {
		s.log.Warnf("Failed to revoke session: %+v", err)
		return err
	}
	return nil
}

// RevokeAll drops every session for the user, logging them out everywhere.
func (s *redisSessionStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("%s:%s:*", sessionKeyPrefix, userID.String())
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		s.log.Warnf("Failed to list sessions: %+v", err)
		return err
	}
	if len(keys) > 0 {
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			s.log.Warnf("Failed to revoke sessions: %+v", err)
			return err
		}
	}
	return nil
}
