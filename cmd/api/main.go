package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webhook-resender/config"
	httpHandler "webhook-resender/internal/adapter/http/handler"
	"webhook-resender/internal/adapter/http/middleware"
	pgStorage "webhook-resender/internal/adapter/storage/postgres"
	redisStorage "webhook-resender/internal/adapter/storage/redis"
	"webhook-resender/internal/core/breaker"
	"webhook-resender/internal/core/ports"
	"webhook-resender/internal/service"
	"webhook-resender/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Webhook Resender")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	tenantRepo := pgStorage.NewTenantRepo(pool)
	protocolRepo := pgStorage.NewProtocolRepo(pool)

	// Initialize Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	protocolCache := redisStorage.NewProtocolCache(rdb)

	// Initialize outbound gateway client (breaker-protected)
	dispatcher := service.NewGatewayClient(breaker.Config{
		VolumeThreshold:       cfg.Gateway.VolumeThreshold,
		ErrorThresholdPercent: cfg.Gateway.ErrorThresholdPercent,
		Window:                cfg.Gateway.Window,
		ResetTimeout:          cfg.Gateway.ResetTimeout,
		CallTimeout:           cfg.Gateway.CallTimeout,
	}, log)

	// Initialize business services
	resendSvc := service.NewResendService(tenantRepo, protocolRepo, dispatcher, idempotencyCache, cfg.Cache.IdempotencyTTL, log)
	protocolSvc := service.NewProtocolQueryService(protocolRepo, protocolCache, cfg.Cache.ProtocolTTL, log)

	// Initialize rate limit store
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.RateLimit.Enabled {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ResendSvc:      resendSvc,
		ProtocolSvc:    protocolSvc,
		TenantRepo:     tenantRepo,
		RateLimitStore: rateLimitStore,
		RateLimitRule:  middleware.RateLimitRule{Limit: cfg.RateLimit.Limit, Window: cfg.RateLimit.Window},
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
