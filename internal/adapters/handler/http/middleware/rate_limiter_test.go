package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestRedis(t *testing.T) *redis.Client {
	_ = godotenv.Load("../../../../../.env")

	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	pass := os.Getenv("REDIS_PASSWORD")
	if pass == "" {
		pass = "secret_redis_pass_local"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: pass,
		DB:       1,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Skipping integration test (Redis down): %v", err)
	}

	rdb.FlushDB(ctx)
	return rdb
}

func hit(router *gin.Engine, path, ip, identity string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("X-Forwarded-For", ip)
	if identity != "" {
		req.Header.Set("X-Identity", identity)
	}
	router.ServeHTTP(w, req)
	return w
}

func limitedRouter(rdb *redis.Client, limit int) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Identity"); id != "" {
			c.Set(ContextIdentityKey, id)
		}
		c.Next()
	})
	router.Use(RateLimiterMiddleware(rdb, limit, time.Minute))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "passed")
	})
	return router
}

func TestRateLimiterMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := setupTestRedis(t)
	defer rdb.Close()

	ctx := context.Background()

	t.Run("Allow Requests under limit", func(t *testing.T) {
		rdb.FlushDB(ctx)
		limit := 5
		router := limitedRouter(rdb, limit)

		for i := 1; i <= limit; i++ {
			w := hit(router, "/test", "192.168.1.100", "")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, fmt.Sprintf("%d", limit), w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, fmt.Sprintf("%d", limit-i), w.Header().Get("X-RateLimit-Remaining"))
		}
	})

	t.Run("Block Requests over limit", func(t *testing.T) {
		rdb.FlushDB(ctx)
		router := limitedRouter(rdb, 2)

		assert.Equal(t, http.StatusOK, hit(router, "/test", "192.168.1.101", "").Code)
		assert.Equal(t, http.StatusOK, hit(router, "/test", "192.168.1.101", "").Code)

		w := hit(router, "/test", "192.168.1.101", "")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "too many requests")
	})

	t.Run("Identities are counted separately from their IP", func(t *testing.T) {
		rdb.FlushDB(ctx)
		router := limitedRouter(rdb, 1)

		assert.Equal(t, http.StatusOK, hit(router, "/test", "10.0.0.1", "a@kanso.app").Code)
		assert.Equal(t, http.StatusOK, hit(router, "/test", "10.0.0.1", "b@kanso.app").Code)
		assert.Equal(t, http.StatusTooManyRequests, hit(router, "/test", "10.0.0.1", "a@kanso.app").Code)

		ttl, err := rdb.TTL(ctx, "rate_limit:id:a@kanso.app").Result()
		assert.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("Fail Open (Redis Down)", func(t *testing.T) {
		badRdb := redis.NewClient(&redis.Options{
			Addr: "localhost:9999",
		})

		w := hit(limitedRouter(badRdb, 5), "/test", "10.0.0.2", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "passed", w.Body.String())
	})
}
