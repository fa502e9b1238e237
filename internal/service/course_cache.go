package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/minglu-edu/schedule-proxy/internal/dto"
	"github.com/minglu-edu/schedule-proxy/pkg/config"
)

// RedisCourseCache stores the normalized course list as one JSON blob
// with a short TTL. Cache failures degrade to an upstream query.
type RedisCourseCache struct {
	client  *redis.Client
	key     string
	ttl     time.Duration
	metrics *MetricsService
	logger  *zap.Logger
}

// NewRedisCourseCache builds the cache around an existing client.
func NewRedisCourseCache(client *redis.Client, cfg config.CacheConfig, metrics *MetricsService, logger *zap.Logger) *RedisCourseCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCourseCache{
		client:  client,
		key:     cfg.CacheKey,
		ttl:     cfg.TTL,
		metrics: metrics,
		logger:  logger,
	}
}

// Get returns the cached list when present and decodable.
func (c *RedisCourseCache) Get(ctx context.Context) ([]dto.CourseRecord, bool) {
	start := time.Now()
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		c.metrics.RecordCacheOperation(false, time.Since(start))
		if err != redis.Nil {
			c.logger.Warn("course cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var courses []dto.CourseRecord
	if err := json.Unmarshal(raw, &courses); err != nil {
		c.metrics.RecordCacheOperation(false, time.Since(start))
		c.logger.Warn("course cache decode failed", zap.Error(err))
		return nil, false
	}

	c.metrics.RecordCacheOperation(true, time.Since(start))
	return courses, true
}

// Set stores the list, logging and swallowing failures.
func (c *RedisCourseCache) Set(ctx context.Context, courses []dto.CourseRecord) {
	raw, err := json.Marshal(courses)
	if err != nil {
		c.logger.Warn("course cache encode failed", zap.Error(err))
		return
	}

	start := time.Now()
	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("course cache write failed", zap.Error(err))
		return
	}
	c.metrics.ObserveCacheWrite(time.Since(start))
}
