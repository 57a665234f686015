// Package cache provides the per-owner content list cache backed by
// Redis. Cache failures are never fatal; readers fall through to the
// database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/logger"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/models"
)

const keyPrefix = "content:list:"

// ErrCacheMiss is returned when no cached list exists for the owner.
var ErrCacheMiss = errors.New("cache miss")

// ContentCache caches content lists keyed by owner id.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewContentCache creates a new content cache.
func NewContentCache(client *redis.Client, ttl time.Duration, log logger.Logger) *ContentCache {
	return &ContentCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func ownerKey(ownerID uuid.UUID) string {
	return keyPrefix + ownerID.String()
}

// Get returns the cached list for the owner, or ErrCacheMiss.
func (c *ContentCache) Get(ctx context.Context, ownerID uuid.UUID) ([]models.Content, error) {
	data, err := c.client.Get(ctx, ownerKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var contents []models.Content
	if err := json.Unmarshal(data, &contents); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		c.logger.Warn("Dropping corrupt cache entry",
			logger.String("owner_id", ownerID.String()),
			logger.Error(err),
		)
		return nil, ErrCacheMiss
	}

	return contents, nil
}

// Set stores the owner's list with the configured TTL.
func (c *ContentCache) Set(ctx context.Context, ownerID uuid.UUID, contents []models.Content) error {
	data, err := json.Marshal(contents)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}

	if err := c.client.Set(ctx, ownerKey(ownerID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}

	return nil
}

// Invalidate removes the owner's cached list. Called after a create so
// the next read sees the new record.
func (c *ContentCache) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	if err := c.client.Del(ctx, ownerKey(ownerID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
