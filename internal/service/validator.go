package service

import (
	"context"
	"fmt"

	"webhook-resender/internal/core/domain"
	"webhook-resender/internal/core/ports"
	"webhook-resender/pkg/apperror"
)

// Validator confirms that requested service ids exist, are active, belong
// to the authenticated cedente and match the requested product. The caller
// guarantees 1..100 ids (enforced by the DTO layer).
type Validator struct {
	tenantRepo ports.TenantRepository
}

// NewValidator creates a Validator.
func NewValidator(tenantRepo ports.TenantRepository) *Validator {
	return &Validator{tenantRepo: tenantRepo}
}

// Validate loads the services with their full ownership chain in one
// batched lookup and returns them, in the requested order, for downstream
// use — no second fetch.
func (v *Validator) Validate(ctx context.Context, cedenteID string, product domain.Product, serviceIDs []string) ([]domain.Service, error) {
	services, err := v.tenantRepo.FindServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	byID := make(map[string]domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	var missing []string
	for _, id := range serviceIDs {
		if _, ok := byID[id]; !ok {
			missing = append(missing, fmt.Sprintf("Serviço não encontrado: %s", id))
		}
	}
	if len(missing) > 0 {
		return nil, apperror.InvalidFields(missing)
	}

	ordered := make([]domain.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc := byID[id]

		owner := svc.OwnerCedente()
		if owner == nil {
			return nil, apperror.InternalError(fmt.Errorf("service %s loaded without ownership chain", svc.ID))
		}
		if owner.ID != cedenteID {
			return nil, apperror.BusinessRule(fmt.Sprintf("Serviço %s não pertence ao cedente informado", svc.ID))
		}
		if !svc.IsActive() {
			return nil, apperror.BusinessRule(fmt.Sprintf("Serviço %s está inativo", svc.ID))
		}
		if svc.Product != product {
			return nil, apperror.BusinessRule(fmt.Sprintf("Serviço %s não pertence ao produto %s", svc.ID, product))
		}

		ordered = append(ordered, svc)
	}

	return ordered, nil
}
