package cache

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key namespaces shared by every Redis user in the service.
const (
	ledgerPrefix    = "ledger:"
	reportPrefix    = "report:"
	rateLimitPrefix = "rate_limit:"
)

func LedgerKey(identity string) string { return ledgerPrefix + identity }

func ReportKey(identity string) string { return reportPrefix + identity }

// RateLimitKey namespaces a limiter bucket, e.g. RateLimitKey("ip", "10.0.0.1").
func RateLimitKey(kind, subject string) string {
	return rateLimitPrefix + kind + ":" + subject
}

// NewRedisClient connects and pings. The dial budget is short so that a
// missing Redis degrades the server to uncached mode quickly.
func NewRedisClient(host, port, password string, dbIndex int) (*redis.Client, error) {
	addr := net.JoinHostPort(host, port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           dbIndex,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("cache: ping redis at %s: %w", addr, err)
	}

	log.Printf("[CACHE] Connected to redis at %s (db %d)", addr, dbIndex)
	return rdb, nil
}
