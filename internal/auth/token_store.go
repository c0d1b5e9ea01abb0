package auth

import (
	"context"
	"time"

	"foodtruck/internal/cache"
)

const revokedSessionKeyPrefix = "revoked_session:"

// SessionRevoker tracks logged-out sessions until their tokens expire.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore keeps the revocation list in Redis. It inherits the cache
// client's fail-safe behavior: with Redis unreachable, revocation is a
// no-op and tokens pass as not revoked. Sessions then rely on their
// expiry alone, which keeps logins working without external
// infrastructure.
type TokenStore struct {
	cache *cache.Client
}

var _ SessionRevoker = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// Revoke marks a session id as logged out until the token expires.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.cache.Set(ctx, revokedSessionKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsRevoked reports whether a session id has been logged out.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	data, err := s.cache.Get(ctx, revokedSessionKeyPrefix+tokenID)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
