package domain

import (
	"sort"
	"strings"
)

// Notification kinds. Only webhook resends are supported; other kinds map
// to a 501 at the boundary.
const (
	KindWebhook = "webhook"
)

// Boleto event types mirror the service situation values.
const (
	EventBoletoAvailable = "disponivel"
	EventBoletoCanceled  = "cancelado"
	EventBoletoPaid      = "pago"
)

// BuildResendKey derives the canonical idempotency key for a resend
// request. Service ids are sorted ascending before joining so requests
// differing only in id order collide to the same key.
func BuildResendKey(product Product, serviceIDs []string, kind, eventType string) string {
	ids := make([]string, len(serviceIDs))
	copy(ids, serviceIDs)
	sort.Strings(ids)
	return string(product) + ":" + strings.Join(ids, ",") + ":" + kind + ":" + eventType
}
