package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	CatalogKeySpecialists = "catalog:specialists"
	CatalogKeySpecialist  = "catalog:specialist:"
	CatalogKeyMedications = "catalog:medications"

	// Timeout for individual Redis operations
	cacheOpTimeout = 2 * time.Second
)

// CatalogCache is a read-through JSON cache for reference data. A nil Redis
// client turns every lookup into a direct load. Redis failures are logged and
// never surface to the caller.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewCatalogCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl, log: log}
}

func (c *CatalogCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Remember returns the cached value under key, or calls load and caches its
// result. Errors from load are returned as-is and nothing is cached.
func Remember[T any](ctx context.Context, c *CatalogCache, key string, load func() (T, error)) (T, error) {
	if !c.Enabled() {
		return load()
	}

	var cached T
	if hit, err := c.get(ctx, key, &cached); err != nil {
		c.log.Warnf("Failed to read cache key %s: %+v", key, err)
	} else if hit {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if err := c.set(ctx, key, value); err != nil {
		c.log.Warnf("Failed to write cache key %s: %+v", key, err)
	}
	return value, nil
}

// Invalidate drops the given keys; used by seeding after the catalog changes.
func (c *CatalogCache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := c.client.Del(opCtx, keys...).Err(); err != nil {
		c.log.Warnf("Failed to invalidate cache keys %v: %+v", keys, err)
	}
}

func (c *CatalogCache) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	raw, err := c.client.Get(opCtx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *CatalogCache) set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	return c.client.Set(opCtx, key, raw, c.ttl).Err()
}
