package handler

import (
	"webhook-resender/internal/adapter/http/dto"
	"webhook-resender/internal/adapter/http/middleware"
	"webhook-resender/internal/core/ports"
	"webhook-resender/pkg/apperror"
	"webhook-resender/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProtocolHandler handles the protocol query endpoints.
type ProtocolHandler struct {
	protocolSvc ports.ProtocolQueryService
}

// NewProtocolHandler creates a new ProtocolHandler.
func NewProtocolHandler(protocolSvc ports.ProtocolQueryService) *ProtocolHandler {
	return &ProtocolHandler{protocolSvc: protocolSvc}
}

// GetByID handles GET /api/v1/protocolos/:id.
func (h *ProtocolHandler) GetByID(c *gin.Context) {
	cedenteID := c.GetString(middleware.CtxCedenteID)
	if cedenteID == "" {
		response.Error(c, apperror.Unauthorized())
		return
	}

	rec, err := h.protocolSvc.GetByID(c.Request.Context(), cedenteID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, rec)
}

// List handles GET /api/v1/protocolos.
func (h *ProtocolHandler) List(c *gin.Context) {
	cedenteID := c.GetString(middleware.CtxCedenteID)
	if cedenteID == "" {
		response.Error(c, apperror.Unauthorized())
		return
	}

	// Unknown query params are a hard error, not silently ignored.
	if err := dto.CheckListQueryParams(c.Request.URL.Query()); err != nil {
		response.Error(c, err)
		return
	}

	var q dto.ListProtocolsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.InvalidFields(err.Error()))
		return
	}

	params, err := q.ToListParams(cedenteID)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.protocolSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, page)
}
