package ports

import (
	"context"
	"encoding/json"
	"time"

	"webhook-resender/internal/core/domain"
)

// IdempotencyCache is the short-TTL store that deduplicates resend
// requests. Get returns nil, nil on a miss.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ProtocolCache is the cache-aside store for the protocol read path.
// Keys are fully namespaced by the caller. Get returns nil, nil on a miss.
type ProtocolCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// OutboundPayload is one fully built notification ready for dispatch.
type OutboundPayload struct {
	Method        string
	URL           string
	Headers       map[string]string
	Body          json.RawMessage
	CorrelationID string
}

// GatewayDispatcher sends one payload to the downstream notification
// gateway and returns the protocol identifier it assigned. Implementations
// wrap the call in the circuit breaker.
type GatewayDispatcher interface {
	Dispatch(ctx context.Context, payload OutboundPayload) (string, error)
}

// --- Service Ports (Business Logic) ---

// ResendRequest holds validated input for a webhook resend.
type ResendRequest struct {
	CedenteID  string
	Product    domain.Product
	ServiceIDs []string
	Kind       string
	Type       string
}

// ResendResult is the caller-visible outcome of a resend. Protocol holds
// the first protocol id for the single-dispatch common case; Protocols
// lists every account group dispatched.
type ResendResult struct {
	Message   string   `json:"message"`
	Protocol  string   `json:"protocolo,omitempty"`
	Protocols []string `json:"protocolos,omitempty"`
}

// ResendService orchestrates validation, config resolution, payload
// building, breaker-protected dispatch, persistence and idempotency.
type ResendService interface {
	Resend(ctx context.Context, req ResendRequest) (*ResendResult, error)
}

// Pagination describes one page of a listing response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ProtocolPage is the paginated listing envelope.
type ProtocolPage struct {
	Data       []domain.ReprocessedWebhook `json:"data"`
	Pagination Pagination                  `json:"pagination"`
}

// ProtocolQueryService is the cache-aside read path over stored protocols.
type ProtocolQueryService interface {
	GetByID(ctx context.Context, cedenteID, protocolID string) (*domain.ReprocessedWebhook, error)
	List(ctx context.Context, params ProtocolListParams) (*ProtocolPage, error)
}
