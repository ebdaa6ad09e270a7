package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lumen-edu/lumen/internal/application/catalog/dto"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

const (
	subjectDetailKeyPrefix = "catalog:subject:"
	subjectDetailTTLJitter = 2 * time.Minute
)

// RedisSubjectDetailCache stores subject detail views as JSON strings
type RedisSubjectDetailCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewRedisSubjectDetailCache creates a Redis-backed subject detail cache
func NewRedisSubjectDetailCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisSubjectDetailCache {
	return &RedisSubjectDetailCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisSubjectDetailCache) key(slug string) string {
	return subjectDetailKeyPrefix + slug
}

// Get returns nil, nil on a cache miss
func (c *RedisSubjectDetailCache) Get(ctx context.Context, slug string) (*dto.SubjectDetailDTO, error) {
	raw, err := c.client.Get(ctx, c.key(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subject detail from cache: %w", err)
	}

	var detail dto.SubjectDetailDTO
	if err := json.Unmarshal(raw, &detail); err != nil {
		// A stale layout is treated as a miss and dropped
		c.logger.Warnw("discarding undecodable subject detail cache entry", "slug", slug, "error", err)
		_ = c.client.Del(ctx, c.key(slug)).Err()
		return nil, nil
	}
	return &detail, nil
}

// Set stores the detail with a jittered TTL (anti-stampede)
func (c *RedisSubjectDetailCache) Set(ctx context.Context, slug string, detail *dto.SubjectDetailDTO) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to encode subject detail: %w", err)
	}

	ttl := c.ttl + time.Duration(rand.Int63n(int64(subjectDetailTTLJitter)))
	if err := c.client.Set(ctx, c.key(slug), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache subject detail: %w", err)
	}
	return nil
}

func (c *RedisSubjectDetailCache) Delete(ctx context.Context, slug string) error {
	if err := c.client.Del(ctx, c.key(slug)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate subject detail: %w", err)
	}
	return nil
}

// NoopSubjectDetailCache is used when Redis is disabled. Every Get is a miss.
type NoopSubjectDetailCache struct{}

func (NoopSubjectDetailCache) Get(context.Context, string) (*dto.SubjectDetailDTO, error) {
	return nil, nil
}

func (NoopSubjectDetailCache) Set(context.Context, string, *dto.SubjectDetailDTO) error {
	return nil
}

func (NoopSubjectDetailCache) Delete(context.Context, string) error {
	return nil
}
