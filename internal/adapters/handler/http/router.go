package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/comitanigiacomo/kanso-ledger/docs"
	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/handler/http/middleware"
)

// Pinger is the health probe of the backing database. *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterDependencies struct {
	AuthHandler    *AuthHandler
	LedgerHandler  *LedgerHandler
	StudentHandler *StudentHandler
	Tokens         middleware.TokenValidator
	// AuthDisabled serves every request as the guest identity.
	AuthDisabled bool
	DB           Pinger
	Redis        *redis.Client
	RateLimit    int
	RateWindow   time.Duration
	StartTime    time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, "+timezoneHeader)
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.GET("/health", healthHandler(deps))

	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	public := apiV1.Group("")
	protected := apiV1.Group("")
	if deps.AuthDisabled {
		protected.Use(middleware.GuestMiddleware())
	} else {
		protected.Use(middleware.AuthMiddleware(deps.Tokens))
	}

	// The limiter must follow auth so that signed-in callers are counted per
	// identity; public routes are counted per client IP.
	if deps.Redis != nil && deps.RateLimit > 0 {
		limiter := middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, deps.RateWindow)
		public.Use(limiter)
		protected.Use(limiter)
	}

	deps.AuthHandler.RegisterRoutes(public)
	{
		deps.LedgerHandler.RegisterRoutes(protected)
		deps.StudentHandler.RegisterRoutes(protected)
	}

	return router
}

func healthHandler(deps RouterDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "in-memory"
		if deps.DB != nil {
			dbStatus = "connected"
			if err := deps.DB.PingContext(ctx); err != nil {
				dbStatus = "unreachable"
			}
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if err := deps.Redis.Ping(ctx).Err(); err != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode := http.StatusOK
		if dbStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	}
}
