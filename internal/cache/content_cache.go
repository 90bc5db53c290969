package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ContentCache is a read-through cache for roadmap and quiz documents.
// Content is immutable from this service's point of view, so a short
// TTL is enough. Derived progress is deliberately never cached here:
// it must always be recomputed from the result log.
type ContentCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewContentCache wraps a redis client. A nil client yields a disabled
// cache, so callers never need to branch on configuration.
func NewContentCache(rdb *redis.Client, ttl time.Duration) *ContentCache {
	return &ContentCache{rdb: rdb, ttl: ttl}
}

func (c *ContentCache) enabled() bool {
	return c != nil && c.rdb != nil
}

// Get loads a cached document into v. A miss, a disabled cache, and a
// decode failure all report false.
func (c *ContentCache) Get(ctx context.Context, key string, v interface{}) bool {
	if !c.enabled() {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// Set stores a document best-effort; cache failures are invisible to
// callers.
func (c *ContentCache) Set(ctx context.Context, key string, v interface{}) {
	if !c.enabled() {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, data, c.ttl)
}

func QuizKey(id string) string    { return "tutor:quiz:" + id }
func RoadmapKey(id string) string { return "tutor:roadmap:" + id }
