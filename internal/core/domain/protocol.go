package domain

import (
	"encoding/json"
	"time"
)

// ReprocessedWebhook is the durable record of one successful dispatch.
// Created exactly once per dispatch, never mutated, queried only within
// the owning cedente's scope.
type ReprocessedWebhook struct {
	ProtocolID string          `json:"protocolo"`
	CedenteID  string          `json:"cedente_id"`
	Product    Product         `json:"product"`
	Kind       string          `json:"kind"`
	Type       string          `json:"type"`
	ServiceIDs []string        `json:"servico_id"` // Ordered as requested
	RawPayload json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
}
