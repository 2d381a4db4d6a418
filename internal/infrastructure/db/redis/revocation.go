package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore tracks revoked bearer tokens by jti. A revoked entry lives
// only until the token's own expiry, so the set never grows unbounded.
// Key format: revoked:<jti>
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a RevocationStore wrapping the given Redis client.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke marks the token id as revoked for ttl.
func (s *RevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token id has been revoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevocationStore) key(jti string) string {
	return "revoked:" + jti
}
