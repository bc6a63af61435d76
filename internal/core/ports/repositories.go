package ports

import (
	"context"
	"time"

	"webhook-resender/internal/core/domain"
)

// TenantRepository defines read-only lookups over the tenant hierarchy.
// Lookups return nil, nil when no record matches.
type TenantRepository interface {
	FindSoftwareHouse(ctx context.Context, taxID, token string) (*domain.SoftwareHouse, error)
	FindCedente(ctx context.Context, taxID, token, softwareHouseID string) (*domain.Cedente, error)
	// FindServicesByIDs loads services with their full ownership chain
	// (Agreement -> Account -> Cedente) in one batched query. Unresolvable
	// ids are simply absent from the result.
	FindServicesByIDs(ctx context.Context, ids []string) ([]domain.Service, error)
}

// ProtocolRepository defines persistence for reprocessed webhook records.
type ProtocolRepository interface {
	Create(ctx context.Context, rec *domain.ReprocessedWebhook) error
	// GetByID fetches a protocol scoped to the cedente. Returns nil, nil
	// when not found or owned by another cedente.
	GetByID(ctx context.Context, cedenteID, protocolID string) (*domain.ReprocessedWebhook, error)
	List(ctx context.Context, params ProtocolListParams) ([]domain.ReprocessedWebhook, int64, error)
}

// ProtocolListParams holds filter + pagination for listing protocols.
// StartDate/EndDate are mandatory; the remaining filters are ANDed when set.
type ProtocolListParams struct {
	CedenteID  string
	StartDate  time.Time
	EndDate    time.Time
	Product    *domain.Product
	Kind       *string
	Type       *string
	ServiceIDs []string
	Page       int // 1-based
	Limit      int
}
