package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore keeps the IDs of tokens invalidated before their expiry.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisRevocationStore struct {
	redis  redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRedisRevocationStore stores revocations under "<prefix>:<jti>" with a TTL
// matching the token's remaining lifetime.
func NewRedisRevocationStore(client redis.UniversalClient, prefix string) RevocationStore {
	if prefix == "" {
		prefix = "revoked"
	}
	return &redisRevocationStore{redis: client, prefix: prefix, now: time.Now}
}

func (s *redisRevocationStore) key(tokenID string) string {
	return s.prefix + ":" + tokenID
}

func (s *redisRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}
	if err := s.redis.Set(ctx, s.key(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.redis.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
