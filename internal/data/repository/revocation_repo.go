package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RevocationRepository records token ids invalidated by logout.
type RevocationRepository interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisRevocationRepository struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisRevocationRepository(client *redis.Client, log *zap.Logger) RevocationRepository {
	return &redisRevocationRepository{
		client: client,
		log:    log.With(zap.String("repository", "revocation")),
	}
}

func revocationKey(tokenID string) string {
	return "revoked_token:" + tokenID
}

// Revoke keeps the entry until the token would have expired anyway.
func (r *redisRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := r.client.Set(ctx, revocationKey(tokenID), 1, ttl).Err(); err != nil {
		r.log.Error("Failed to revoke token",
			zap.Error(err),
			zap.String("token_id", tokenID),
		)
		return fmt.Errorf("revoke token %s: %w", tokenID, err)
	}

	return nil
}

func (r *redisRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revocationKey(tokenID)).Result()
	if err != nil {
		r.log.Error("Failed to check token revocation",
			zap.Error(err),
			zap.String("token_id", tokenID),
		)
		return false, fmt.Errorf("check token %s: %w", tokenID, err)
	}

	return n > 0, nil
}

type noopRevocationRepository struct{}

// NewNoopRevocationRepository is used when Redis is not configured.
func NewNoopRevocationRepository() RevocationRepository {
	return noopRevocationRepository{}
}

func (noopRevocationRepository) Revoke(context.Context, string, time.Duration) error {
	return nil
}

func (noopRevocationRepository) IsRevoked(context.Context, string) (bool, error) {
	return false, nil
}
