package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-ledger/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-ledger/internal/config"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/services"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/workers"
)

//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs

// @title                       Kanso Ledger API
// @version                     1.0
// @description                 Daily skill ledger, analytics and feedback for language learners.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

type app struct {
	router *gin.Engine
	worker *workers.ReportWorker // nil without Redis
	db     *sqlx.DB
	redis  *redis.Client
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.redis != nil {
		a.redis.Close()
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}

	a, err := buildApp(cfg)
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}
	defer a.Close()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if a.worker != nil {
		a.worker.Start(workerCtx)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Kanso Ledger running on http://localhost:%s (store: %s)", cfg.Port, cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}

// buildApp wires stores, caches, services and the router from cfg.
func buildApp(cfg *config.Config) (*app, error) {
	a := &app{}

	var (
		ledgerRepo domain.LedgerRepository
		userRepo   domain.UserRepository
	)

	switch cfg.DBDriver {
	case config.DriverMemory:
		log.Println("Using in-memory store; data is lost on restart.")
		ledgerRepo = repository.NewInMemoryLedgerRepository()
		userRepo = repository.NewInMemoryUserRepository()
	default:
		log.Printf("Connecting to %s database...", cfg.DBDriver)
		db, err := repository.Open(cfg.DBDriver, cfg.DSN())
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := repository.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		log.Println("Database connected successfully.")

		a.db = db
		ledgerRepo = repository.NewSQLLedgerRepository(db)
		userRepo = repository.NewSQLUserRepository(db)
	}

	var reports workers.ReportCache
	if cfg.RedisEnabled {
		rdb, err := cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Printf("[CACHE] Redis unavailable, continuing without cache: %v", err)
		} else {
			a.redis = rdb
			ledgerRepo = repository.NewCachedLedgerRepository(ledgerRepo, rdb)
			reports = cache.NewRedisReportCache(rdb, cache.ReportTTL)
		}
	}
	if reports != nil {
		a.worker = workers.NewReportWorker(ledgerRepo, reports)
	}

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL, userRepo)
	authService := services.NewAuthService(userRepo, tokenService)
	ledgerService := services.NewLedgerService(ledgerRepo, reports, a.worker, cfg.PersistTimeout)

	if err := adapterHTTP.RegisterValidators(); err != nil {
		a.Close()
		return nil, fmt.Errorf("register validators: %w", err)
	}

	if cfg.AuthDisabled {
		log.Printf("Authentication disabled: every request acts as %s", domain.GuestIdentity)
	}

	deps := adapterHTTP.RouterDependencies{
		AuthHandler:    adapterHTTP.NewAuthHandler(authService),
		LedgerHandler:  adapterHTTP.NewLedgerHandler(ledgerService),
		StudentHandler: adapterHTTP.NewStudentHandler(ledgerService, services.NewRosterService(userRepo, ledgerService)),
		Tokens:         tokenService,
		AuthDisabled:   cfg.AuthDisabled,
		Redis:          a.redis,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
		StartTime:      time.Now(),
	}
	if a.db != nil {
		deps.DB = a.db
	}
	a.router = adapterHTTP.NewRouter(deps)

	return a, nil
}
