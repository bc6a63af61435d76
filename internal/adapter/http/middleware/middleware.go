package middleware

import (
	"fmt"
	"net/http"
	"time"

	"webhook-resender/internal/core/ports"
	"webhook-resender/pkg/apperror"
	"webhook-resender/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// Header names for tenant authentication
	HeaderCnpjSH      = "cnpj-sh"
	HeaderTokenSH     = "token-sh"
	HeaderCnpjCedente = "cnpj-cedente"
	HeaderTokenCed    = "token-cedente"

	// Context keys
	CtxCedenteID  = "cedente_id"
	CtxCedenteKey = "cedente"
)

// TenantAuth verifies the software house and cedente credential pairs.
// Every failure mode returns the same generic 401 so callers cannot probe
// which credential was wrong.
func TenantAuth(tenantRepo ports.TenantRepository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cnpjSH := c.GetHeader(HeaderCnpjSH)
		tokenSH := c.GetHeader(HeaderTokenSH)
		cnpjCed := c.GetHeader(HeaderCnpjCedente)
		tokenCed := c.GetHeader(HeaderTokenCed)

		if cnpjSH == "" || tokenSH == "" || cnpjCed == "" || tokenCed == "" {
			response.Error(c, apperror.Unauthorized())
			c.Abort()
			return
		}

		sh, err := tenantRepo.FindSoftwareHouse(c.Request.Context(), cnpjSH, tokenSH)
		if err != nil {
			log.Error().Err(err).Msg("failed to fetch software house")
			response.Error(c, apperror.InternalError(err))
			c.Abort()
			return
		}
		if sh == nil || !sh.IsActive() {
			response.Error(c, apperror.Unauthorized())
			c.Abort()
			return
		}

		ced, err := tenantRepo.FindCedente(c.Request.Context(), cnpjCed, tokenCed, sh.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to fetch cedente")
			response.Error(c, apperror.InternalError(err))
			c.Abort()
			return
		}
		if ced == nil || !ced.IsActive() {
			response.Error(c, apperror.Unauthorized())
			c.Abort()
			return
		}

		c.Set(CtxCedenteID, ced.ID)
		c.Set(CtxCedenteKey, ced)

		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				response.Error(c, apperror.InternalError(fmt.Errorf("panic: %v", r)))
				c.Abort()
			}
		}()
		c.Next()
	}
}
