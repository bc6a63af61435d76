package integration

import (
	"context"
	"sort"
	"sync"

	"webhook-resender/internal/core/domain"
	"webhook-resender/internal/core/ports"
)

// In-memory implementations of the storage ports so integration tests can
// exercise the full HTTP stack without PostgreSQL.

type credential struct {
	taxID string
	token string
}

type inMemoryTenantRepo struct {
	mu             sync.RWMutex
	softwareHouses map[credential]*domain.SoftwareHouse
	cedentes       map[credential]*domain.Cedente
	services       map[string]domain.Service
}

func newInMemoryTenantRepo() *inMemoryTenantRepo {
	return &inMemoryTenantRepo{
		softwareHouses: make(map[credential]*domain.SoftwareHouse),
		cedentes:       make(map[credential]*domain.Cedente),
		services:       make(map[string]domain.Service),
	}
}

func (r *inMemoryTenantRepo) addSoftwareHouse(sh domain.SoftwareHouse, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.softwareHouses[credential{sh.TaxID, token}] = &sh
}

func (r *inMemoryTenantRepo) addCedente(c domain.Cedente, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cedentes[credential{c.TaxID, token}] = &c
}

func (r *inMemoryTenantRepo) addService(svc domain.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[svc.ID] = svc
}

func (r *inMemoryTenantRepo) FindSoftwareHouse(_ context.Context, taxID, token string) (*domain.SoftwareHouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sh, ok := r.softwareHouses[credential{taxID, token}]
	if !ok {
		return nil, nil
	}
	return sh, nil
}

func (r *inMemoryTenantRepo) FindCedente(_ context.Context, taxID, token, softwareHouseID string) (*domain.Cedente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cedentes[credential{taxID, token}]
	if !ok || c.SoftwareHouseID != softwareHouseID {
		return nil, nil
	}
	return c, nil
}

func (r *inMemoryTenantRepo) FindServicesByIDs(_ context.Context, ids []string) ([]domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var services []domain.Service
	for _, id := range ids {
		if svc, ok := r.services[id]; ok {
			services = append(services, svc)
		}
	}
	return services, nil
}

type inMemoryProtocolRepo struct {
	mu      sync.RWMutex
	records []domain.ReprocessedWebhook
}

func newInMemoryProtocolRepo() *inMemoryProtocolRepo {
	return &inMemoryProtocolRepo{}
}

func (r *inMemoryProtocolRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

func (r *inMemoryProtocolRepo) Create(_ context.Context, rec *domain.ReprocessedWebhook) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

func (r *inMemoryProtocolRepo) GetByID(_ context.Context, cedenteID, protocolID string) (*domain.ReprocessedWebhook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].CedenteID == cedenteID && r.records[i].ProtocolID == protocolID {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (r *inMemoryProtocolRepo) List(_ context.Context, params ports.ProtocolListParams) ([]domain.ReprocessedWebhook, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.ReprocessedWebhook
	for _, rec := range r.records {
		if rec.CedenteID != params.CedenteID {
			continue
		}
		if rec.CreatedAt.Before(params.StartDate) || rec.CreatedAt.After(params.EndDate) {
			continue
		}
		if params.Product != nil && rec.Product != *params.Product {
			continue
		}
		if params.Kind != nil && rec.Kind != *params.Kind {
			continue
		}
		if params.Type != nil && rec.Type != *params.Type {
			continue
		}
		if len(params.ServiceIDs) > 0 && !containsAny(rec.ServiceIDs, params.ServiceIDs) {
			continue
		}
		matched = append(matched, rec)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	offset := (params.Page - 1) * params.Limit
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func containsAny(haystack, needles []string) bool {
	for _, h := range haystack {
		for _, n := range needles {
			if h == n {
				return true
			}
		}
	}
	return false
}
