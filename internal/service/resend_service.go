package service

import (
	"context"
	"encoding/json"
	"time"

	"webhook-resender/internal/core/domain"
	"webhook-resender/internal/core/ports"
	"webhook-resender/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultIdempotencyTTL is the resend-dedup window.
const defaultIdempotencyTTL = time.Hour

// Result messages shown to the caller.
const (
	msgResendOK      = "Webhook reenviado com sucesso"
	msgNothingToSend = "Nenhuma notificação para reenviar"
)

// ResendServiceImpl implements ports.ResendService: the state machine
// Validate -> CheckIdempotency -> Resolve+Build -> GroupByAccount ->
// Dispatch -> Persist -> SetIdempotency.
type ResendServiceImpl struct {
	validator    *Validator
	builder      *PayloadBuilder
	dispatcher   ports.GatewayDispatcher
	protocolRepo ports.ProtocolRepository
	idempCache   ports.IdempotencyCache
	idempTTL     time.Duration
	log          zerolog.Logger
}

// NewResendService creates the resend orchestrator. ttl <= 0 falls back to
// the 1h default.
func NewResendService(
	tenantRepo ports.TenantRepository,
	protocolRepo ports.ProtocolRepository,
	dispatcher ports.GatewayDispatcher,
	idempCache ports.IdempotencyCache,
	ttl time.Duration,
	log zerolog.Logger,
) *ResendServiceImpl {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &ResendServiceImpl{
		validator:    NewValidator(tenantRepo),
		builder:      NewPayloadBuilder(),
		dispatcher:   dispatcher,
		protocolRepo: protocolRepo,
		idempCache:   idempCache,
		idempTTL:     ttl,
		log:          log,
	}
}

// Resend reprocesses one webhook notification for the cedente. An
// idempotency hit within the TTL window returns ALREADY_PROCESSED with the
// stored outcome instead of re-dispatching.
func (s *ResendServiceImpl) Resend(ctx context.Context, req ports.ResendRequest) (*ports.ResendResult, error) {
	if req.Kind != domain.KindWebhook {
		return nil, apperror.NotImplemented(req.Kind)
	}

	// Unknown product: nothing to dispatch, nothing to persist.
	if !domain.KnownProduct(req.Product) {
		return &ports.ResendResult{Message: msgNothingToSend}, nil
	}

	services, err := s.validator.Validate(ctx, req.CedenteID, req.Product, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// Key is derived from the validated tuple, so a cache hit guarantees
	// the services were valid at least once.
	key := domain.BuildResendKey(req.Product, req.ServiceIDs, req.Kind, req.Type)

	cached, err := s.idempCache.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if cached != nil {
		var prior ports.ResendResult
		if jsonErr := json.Unmarshal(cached, &prior); jsonErr != nil {
			return nil, apperror.InternalError(jsonErr)
		}
		s.log.Info().Str("key", key).Msg("resend deduplicated by idempotency cache")
		return nil, apperror.AlreadyProcessed(prior)
	}

	groups := groupByAccount(services)

	protocols := make([]string, 0, len(groups))
	for _, group := range groups {
		protocol, err := s.dispatchGroup(ctx, req, group)
		if err != nil {
			return nil, err
		}
		protocols = append(protocols, protocol)
	}

	result := &ports.ResendResult{
		Message:   msgResendOK,
		Protocols: protocols,
	}
	if len(protocols) > 0 {
		result.Protocol = protocols[0]
	}

	// Persist happened per group above; only a fully successful request is
	// cached, so a hit is never observable without durable records.
	if data, jsonErr := json.Marshal(result); jsonErr == nil {
		if cacheErr := s.idempCache.Set(ctx, key, data, s.idempTTL); cacheErr != nil {
			s.log.Warn().Err(cacheErr).Str("key", key).Msg("failed to populate idempotency cache")
		}
	}

	return result, nil
}

// dispatchGroup resolves config, builds the payload, dispatches it through
// the breaker and persists the protocol record for one account group.
func (s *ResendServiceImpl) dispatchGroup(ctx context.Context, req ports.ResendRequest, group []domain.Service) (string, error) {
	cfg, err := group[0].ResolveConfig()
	if err != nil {
		return "", apperror.InternalError(err)
	}
	if !cfg.EventEnabled(req.Type) {
		return "", apperror.BusinessRule("Notificação desabilitada para o evento " + req.Type)
	}

	correlationID := uuid.New().String()
	payload, ok := s.builder.Build(req.Product, req.Type, group, cfg, correlationID)
	if !ok {
		return "", apperror.InternalError(domain.ErrNoConfig)
	}

	protocol, err := s.dispatcher.Dispatch(ctx, payload)
	if err != nil {
		// Nothing cached or persisted for a failed attempt, permitting retry.
		return "", apperror.DispatchError(err)
	}

	ids := make([]string, 0, len(group))
	for _, svc := range group {
		ids = append(ids, svc.ID)
	}

	rec := &domain.ReprocessedWebhook{
		ProtocolID: protocol,
		CedenteID:  req.CedenteID,
		Product:    req.Product,
		Kind:       req.Kind,
		Type:       req.Type,
		ServiceIDs: ids,
		RawPayload: payload.Body,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.protocolRepo.Create(ctx, rec); err != nil {
		return "", apperror.InternalError(err)
	}

	return protocol, nil
}

// groupByAccount buckets services by owning account, preserving request
// order, so ids resolving to the same account produce one payload.
func groupByAccount(services []domain.Service) [][]domain.Service {
	var order []string
	buckets := make(map[string][]domain.Service)

	for _, svc := range services {
		accID := ""
		if acc := svc.OwnerAccount(); acc != nil {
			accID = acc.ID
		}
		if _, seen := buckets[accID]; !seen {
			order = append(order, accID)
		}
		buckets[accID] = append(buckets[accID], svc)
	}

	groups := make([][]domain.Service, 0, len(order))
	for _, accID := range order {
		groups = append(groups, buckets[accID])
	}
	return groups
}
