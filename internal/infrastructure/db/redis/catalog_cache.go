package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/theater-demo/theater-api/internal/api/metrics"
	"github.com/theater-demo/theater-api/internal/core/ports"
)

const (
	defaultCacheTTL = 5 * time.Minute
	generationKey   = "catalog:gen"
)

// CatalogCache is a read-through cache for catalog listings. Every entry key
// embeds the current generation number; Invalidate bumps the generation so
// older entries are never read again and simply expire.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Get decodes the entry for key into dst and reports whether it was present.
func (c *CatalogCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	full, err := c.entryKey(ctx, key)
	if err != nil {
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		return false, err
	}

	raw, err := c.client.Get(ctx, full).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
			return false, nil
		}
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return true, nil
}

func (c *CatalogCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	full, err := c.entryKey(ctx, key)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, full, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate drops every cached entry by moving to a new generation.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (c *CatalogCache) entryKey(ctx context.Context, key string) (string, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("cache generation: %w", err)
	}
	return fmt.Sprintf("catalog:%d:%s", gen, key), nil
}

var _ ports.CatalogCache = (*CatalogCache)(nil)
