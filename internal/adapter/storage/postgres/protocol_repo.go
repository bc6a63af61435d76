package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"webhook-resender/internal/core/domain"
	"webhook-resender/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// ProtocolRepo implements ports.ProtocolRepository. The service_ids column
// holds a JSON-encoded array; encoding and decoding happen only at this
// edge so callers always see []string.
type ProtocolRepo struct {
	pool Pool
}

// NewProtocolRepo creates a new ProtocolRepo.
func NewProtocolRepo(pool Pool) *ProtocolRepo {
	return &ProtocolRepo{pool: pool}
}

// Create inserts one protocol record. Records are immutable after insert.
func (r *ProtocolRepo) Create(ctx context.Context, rec *domain.ReprocessedWebhook) error {
	query := `INSERT INTO reprocessed_webhooks
		(protocol_id, cedente_id, product, kind, "type", service_ids, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	ids, err := encodeServiceIDs(rec.ServiceIDs)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		rec.ProtocolID, rec.CedenteID, rec.Product, rec.Kind, rec.Type,
		ids, []byte(rec.RawPayload), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert protocol: %w", err)
	}
	return nil
}

// GetByID fetches a protocol scoped to the cedente; cross-tenant ids are
// invisible. Returns nil, nil when not found.
func (r *ProtocolRepo) GetByID(ctx context.Context, cedenteID, protocolID string) (*domain.ReprocessedWebhook, error) {
	query := `SELECT protocol_id, cedente_id, product, kind, "type", service_ids, payload, created_at
		FROM reprocessed_webhooks WHERE cedente_id = $1 AND protocol_id = $2`

	rec, err := scanProtocol(r.pool.QueryRow(ctx, query, cedenteID, protocolID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get protocol: %w", err)
	}
	return rec, nil
}

// List fetches protocols with filtering and pagination.
func (r *ProtocolRepo) List(ctx context.Context, params ports.ProtocolListParams) ([]domain.ReprocessedWebhook, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	add := func(cond string, value any) {
		conditions = append(conditions, fmt.Sprintf(cond, argIdx))
		args = append(args, value)
		argIdx++
	}

	add("cedente_id = $%d", params.CedenteID)
	add("created_at >= $%d", params.StartDate)
	add("created_at <= $%d", params.EndDate)

	if params.Product != nil {
		add("product = $%d", *params.Product)
	}
	if params.Kind != nil {
		add("kind = $%d", *params.Kind)
	}
	if params.Type != nil {
		add(`"type" = $%d`, *params.Type)
	}
	if len(params.ServiceIDs) > 0 {
		var ors []string
		for _, id := range params.ServiceIDs {
			encoded, err := encodeServiceIDs([]string{id})
			if err != nil {
				return nil, 0, err
			}
			ors = append(ors, fmt.Sprintf("service_ids @> $%d", argIdx))
			args = append(args, encoded)
			argIdx++
		}
		conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM reprocessed_webhooks %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count protocols: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.Limit
	dataQuery := fmt.Sprintf(`SELECT protocol_id, cedente_id, product, kind, "type", service_ids, payload, created_at
		FROM reprocessed_webhooks %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.Limit, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list protocols: %w", err)
	}
	defer rows.Close()

	var records []domain.ReprocessedWebhook
	for rows.Next() {
		rec, err := scanProtocol(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan protocol row: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate protocol rows: %w", err)
	}
	return records, total, nil
}

func scanProtocol(row pgx.Row) (*domain.ReprocessedWebhook, error) {
	rec := &domain.ReprocessedWebhook{}
	var rawIDs, rawPayload []byte

	err := row.Scan(
		&rec.ProtocolID, &rec.CedenteID, &rec.Product, &rec.Kind, &rec.Type,
		&rawIDs, &rawPayload, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	ids, err := decodeServiceIDs(rawIDs)
	if err != nil {
		return nil, err
	}
	rec.ServiceIDs = ids
	rec.RawPayload = json.RawMessage(rawPayload)
	return rec, nil
}

func encodeServiceIDs(ids []string) ([]byte, error) {
	encoded, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encode service ids: %w", err)
	}
	return encoded, nil
}

func decodeServiceIDs(raw []byte) ([]string, error) {
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decode service ids: %w", err)
	}
	return ids, nil
}
