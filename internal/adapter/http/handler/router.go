package handler

import (
	"webhook-resender/internal/adapter/http/middleware"
	redisStore "webhook-resender/internal/adapter/storage/redis"
	"webhook-resender/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ResendSvc      ports.ResendService
	ProtocolSvc    ports.ProtocolQueryService
	TenantRepo     ports.TenantRepository
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimitRule  middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, deps.RateLimitRule, deps.Logger)
	}

	// API v1 routes, all tenant-authenticated
	tenantAuth := middleware.TenantAuth(deps.TenantRepo, deps.Logger)
	v1 := r.Group("/api/v1", tenantAuth)

	resendHandler := NewResendHandler(deps.ResendSvc)
	reenvios := v1.Group("/reenvios")
	{
		reenvios.POST("", rl("reenvios"), resendHandler.Resend)
	}

	protocolHandler := NewProtocolHandler(deps.ProtocolSvc)
	protocolos := v1.Group("/protocolos")
	{
		protocolos.GET("", rl("protocolos"), protocolHandler.List)
		protocolos.GET("/:id", rl("protocolos"), protocolHandler.GetByID)
	}

	return r
}
