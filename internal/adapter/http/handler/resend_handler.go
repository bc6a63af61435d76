package handler

import (
	"net/http"

	"webhook-resender/internal/adapter/http/dto"
	"webhook-resender/internal/adapter/http/middleware"
	"webhook-resender/internal/core/domain"
	"webhook-resender/internal/core/ports"
	"webhook-resender/pkg/apperror"
	"webhook-resender/pkg/response"

	"github.com/gin-gonic/gin"
)

// ResendHandler handles the webhook resend endpoint.
type ResendHandler struct {
	resendSvc ports.ResendService
}

// NewResendHandler creates a new ResendHandler.
func NewResendHandler(resendSvc ports.ResendService) *ResendHandler {
	return &ResendHandler{resendSvc: resendSvc}
}

// Resend handles POST /api/v1/reenvios.
func (h *ResendHandler) Resend(c *gin.Context) {
	cedenteID := c.GetString(middleware.CtxCedenteID)
	if cedenteID == "" {
		response.Error(c, apperror.Unauthorized())
		return
	}

	var req dto.ResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.InvalidFields(err.Error()))
		return
	}

	result, err := h.resendSvc.Resend(c.Request.Context(), ports.ResendRequest{
		CedenteID:  cedenteID,
		Product:    domain.Product(req.Product),
		ServiceIDs: req.ServiceIDs,
		Kind:       req.Kind,
		Type:       req.Type,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
