package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"webhook-resender/internal/core/domain"
	"webhook-resender/internal/core/ports"
	"webhook-resender/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultProtocolTTL is the cache window for the protocol read path.
const defaultProtocolTTL = time.Hour

const defaultListLimit = 10

// ProtocolQueryImpl implements ports.ProtocolQueryService with cache-aside
// reads over the protocol store.
type ProtocolQueryImpl struct {
	repo  ports.ProtocolRepository
	cache ports.ProtocolCache
	ttl   time.Duration
	log   zerolog.Logger
}

// NewProtocolQueryService creates the query service. ttl <= 0 falls back
// to the 1h default.
func NewProtocolQueryService(repo ports.ProtocolRepository, cache ports.ProtocolCache, ttl time.Duration, log zerolog.Logger) *ProtocolQueryImpl {
	if ttl <= 0 {
		ttl = defaultProtocolTTL
	}
	return &ProtocolQueryImpl{repo: repo, cache: cache, ttl: ttl, log: log}
}

// GetByID fetches one protocol scoped to the cedente. Malformed ids fail
// fast as INVALID_FIELDS, not NOT_FOUND.
func (s *ProtocolQueryImpl) GetByID(ctx context.Context, cedenteID, protocolID string) (*domain.ReprocessedWebhook, error) {
	if _, err := uuid.Parse(protocolID); err != nil {
		return nil, apperror.InvalidFields("Protocolo inválido")
	}

	key := itemCacheKey(cedenteID, protocolID)

	if cached, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("protocol cache read failed")
	} else if cached != nil {
		var rec domain.ReprocessedWebhook
		if jsonErr := json.Unmarshal(cached, &rec); jsonErr == nil {
			return &rec, nil
		}
	}

	rec, err := s.repo.GetByID(ctx, cedenteID, protocolID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if rec == nil {
		return nil, apperror.NotFound("Protocolo não encontrado.")
	}

	s.populate(ctx, key, rec)
	return rec, nil
}

// List returns a filtered, paginated page of protocols. Date-window and
// parameter validation happens at the DTO boundary; defaults are
// normalized here.
func (s *ProtocolQueryImpl) List(ctx context.Context, params ports.ProtocolListParams) (*ports.ProtocolPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = defaultListLimit
	}

	key := listCacheKey(params)

	if cached, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("protocol cache read failed")
	} else if cached != nil {
		var page ports.ProtocolPage
		if jsonErr := json.Unmarshal(cached, &page); jsonErr == nil {
			return &page, nil
		}
	}

	records, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if records == nil {
		records = []domain.ReprocessedWebhook{}
	}

	page := &ports.ProtocolPage{
		Data: records,
		Pagination: ports.Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(params.Limit))),
		},
	}

	s.populate(ctx, key, page)
	return page, nil
}

// populate writes through to the cache; failures are logged, never fatal.
func (s *ProtocolQueryImpl) populate(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("protocol cache write failed")
	}
}

func itemCacheKey(cedenteID, protocolID string) string {
	return fmt.Sprintf("protocolo:%s:%s", cedenteID, protocolID)
}

// listCacheKey encodes every filter and pagination parameter plus the
// cedente id, so distinct combinations never collide.
func listCacheKey(p ports.ProtocolListParams) string {
	product, kind, typ := "-", "-", "-"
	if p.Product != nil {
		product = string(*p.Product)
	}
	if p.Kind != nil {
		kind = *p.Kind
	}
	if p.Type != nil {
		typ = *p.Type
	}
	return fmt.Sprintf(
		"protocolos:%s:%s:%s:%s:%s:%s:%s:%d:%d",
		p.CedenteID,
		p.StartDate.UTC().Format(time.RFC3339),
		p.EndDate.UTC().Format(time.RFC3339),
		product, kind, typ,
		strings.Join(p.ServiceIDs, ","),
		p.Page, p.Limit,
	)
}
