package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"webhook-resender/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TenantRepo implements ports.TenantRepository over the relational tenant
// store. All lookups are read-only.
type TenantRepo struct {
	pool Pool
}

// NewTenantRepo creates a new TenantRepo.
func NewTenantRepo(pool Pool) *TenantRepo {
	return &TenantRepo{pool: pool}
}

// FindSoftwareHouse looks up a software house by credential pair.
// Returns nil, nil when no record matches.
func (r *TenantRepo) FindSoftwareHouse(ctx context.Context, taxID, token string) (*domain.SoftwareHouse, error) {
	query := `SELECT id, tax_id, status FROM software_houses WHERE tax_id = $1 AND token = $2`

	sh := &domain.SoftwareHouse{}
	err := r.pool.QueryRow(ctx, query, taxID, token).Scan(&sh.ID, &sh.TaxID, &sh.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find software house: %w", err)
	}
	return sh, nil
}

// FindCedente looks up a cedente by credential pair under a software house.
// Returns nil, nil when no record matches.
func (r *TenantRepo) FindCedente(ctx context.Context, taxID, token, softwareHouseID string) (*domain.Cedente, error) {
	query := `SELECT id, tax_id, status, software_house_id, notification_config
		FROM cedentes WHERE tax_id = $1 AND token = $2 AND software_house_id = $3`

	c := &domain.Cedente{}
	var rawCfg []byte
	err := r.pool.QueryRow(ctx, query, taxID, token, softwareHouseID).
		Scan(&c.ID, &c.TaxID, &c.Status, &c.SoftwareHouseID, &rawCfg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find cedente: %w", err)
	}

	cfg, err := decodeConfig(rawCfg)
	if err != nil {
		return nil, fmt.Errorf("find cedente: %w", err)
	}
	c.Config = cfg
	return c, nil
}

// FindServicesByIDs loads services and their full ownership chain
// (Agreement -> Account -> Cedente) in one batched query. Ids with no
// matching row are simply absent from the result.
func (r *TenantRepo) FindServicesByIDs(ctx context.Context, ids []string) ([]domain.Service, error) {
	query := `SELECT s.id, s.product, s.status, s.situation, s.nosso_numero, s.pix_id,
		ag.id, ag.agreement_number,
		ac.id, ac.product, ac.bank_code, ac.status, ac.notification_config,
		c.id, c.tax_id, c.status, c.software_house_id, c.notification_config
		FROM services s
		JOIN agreements ag ON ag.id = s.agreement_id
		JOIN accounts ac ON ac.id = ag.account_id
		JOIN cedentes c ON c.id = ac.cedente_id
		WHERE s.id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		svc, err := scanServiceChain(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}
	return services, nil
}

// scanServiceChain materializes one joined row into a service with its
// chain attached.
func scanServiceChain(row pgx.Row) (domain.Service, error) {
	var (
		svc       domain.Service
		ag        domain.Agreement
		ac        domain.Account
		ced       domain.Cedente
		rawAccCfg []byte
		rawCedCfg []byte
	)

	err := row.Scan(
		&svc.ID, &svc.Product, &svc.Status, &svc.Situation, &svc.NossoNumero, &svc.PixID,
		&ag.ID, &ag.AgreementNumber,
		&ac.ID, &ac.Product, &ac.BankCode, &ac.Status, &rawAccCfg,
		&ced.ID, &ced.TaxID, &ced.Status, &ced.SoftwareHouseID, &rawCedCfg,
	)
	if err != nil {
		return domain.Service{}, err
	}

	if ac.Config, err = decodeConfig(rawAccCfg); err != nil {
		return domain.Service{}, err
	}
	if ced.Config, err = decodeConfig(rawCedCfg); err != nil {
		return domain.Service{}, err
	}

	ac.Cedente = &ced
	ag.Account = &ac
	svc.Agreement = &ag
	return svc, nil
}

// decodeConfig deserializes the jsonb notification_config column; a NULL
// column means no config at that level.
func decodeConfig(raw []byte) (*domain.NotificationConfig, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	cfg := &domain.NotificationConfig{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode notification config: %w", err)
	}
	return cfg, nil
}
