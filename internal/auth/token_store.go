package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"realty/internal/cache"
	"realty/internal/model"
)

const refreshTokenKeyPrefix = "refresh_token:"

// StoredIdentity is the identity persisted alongside a refresh token ID.
type StoredIdentity struct {
	UserID   uint       `json:"user_id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

// TokenStoreInterface defines the interface for token storage operations.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, identity StoredIdentity, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (StoredIdentity, error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore handles storage and retrieval of refresh tokens in Redis.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken stores a refresh token identity in Redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, identity StoredIdentity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal token identity: %w", err)
	}

	key := refreshTokenKeyPrefix + tokenID
	return s.cache.Set(ctx, key, payload, ttl)
}

// GetRefreshToken retrieves refresh token identity from Redis.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (StoredIdentity, error) {
	key := refreshTokenKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return StoredIdentity{}, fmt.Errorf("refresh token not found")
	}

	var identity StoredIdentity
	if err := json.Unmarshal(data, &identity); err != nil {
		return StoredIdentity{}, fmt.Errorf("unmarshal token identity: %w", err)
	}

	return identity, nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	key := refreshTokenKeyPrefix + tokenID
	return s.cache.Delete(ctx, key)
}
