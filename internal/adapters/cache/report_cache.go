package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/analytics"
)

const ReportTTL = 10 * time.Minute

// RedisReportCache keeps generated feedback reports per identity. Every
// failure is logged and treated as a miss.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	if ttl <= 0 {
		ttl = ReportTTL
	}
	return &RedisReportCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisReportCache) Get(ctx context.Context, identity string) (*analytics.Report, bool) {
	val, err := c.client.Get(ctx, ReportKey(identity)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[CACHE] Redis read error: %v", err)
		}
		return nil, false
	}

	var report analytics.Report
	if err := json.Unmarshal(val, &report); err != nil {
		log.Printf("[CACHE] Corrupted report for %s, cleaning up key", identity)
		c.client.Del(ctx, ReportKey(identity))
		return nil, false
	}
	return &report, true
}

func (c *RedisReportCache) Set(ctx context.Context, identity string, report *analytics.Report) {
	data, err := json.Marshal(report)
	if err != nil {
		log.Printf("[CACHE] Encode report for %s: %v", identity, err)
		return
	}
	if err := c.client.Set(ctx, ReportKey(identity), data, c.ttl).Err(); err != nil {
		log.Printf("[CACHE] Redis set error: %v", err)
	}
}

func (c *RedisReportCache) Invalidate(ctx context.Context, identity string) {
	if err := c.client.Del(ctx, ReportKey(identity)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate report for %s: %v", identity, err)
	}
}
