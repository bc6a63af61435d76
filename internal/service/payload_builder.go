package service

import (
	"encoding/json"
	"net/http"
	"time"

	"webhook-resender/internal/core/domain"
	"webhook-resender/internal/core/ports"
)

// Wire formats fixed by the downstream contract.
const (
	boletoTimestampLayout = "02/01/2006 15:04:05"
)

// boletoBody is the BOLETO notification shape.
type boletoBody struct {
	TipoWH         string       `json:"tipoWH"`
	DataHoraEnvio  string       `json:"dataHoraEnvio"`
	CpfCnpjCedente string       `json:"CpfCnpjCedente"`
	Titulo         boletoTitulo `json:"titulo"`
}

type boletoTitulo struct {
	Situacao          string            `json:"situacao"`
	IDIntegracao      string            `json:"idintegracao"`
	TituloNossoNumero string            `json:"TituloNossoNumero"`
	TituloMovimentos  []boletoMovimento `json:"TituloMovimentos"`
}

type boletoMovimento struct {
	ServicoID   string `json:"servicoId"`
	NossoNumero string `json:"nossoNumero"`
	Situacao    string `json:"situacao"`
}

// pixBody is the PIX notification shape.
type pixBody struct {
	Type          string   `json:"type"`
	CompanyID     string   `json:"companyId"`
	Event         string   `json:"event"`
	TransactionID string   `json:"transactionId"`
	Tags          []string `json:"tags"`
	ID            pixID    `json:"id"`
}

type pixID struct {
	PixID string `json:"pixId"`
}

// pagamentoBody is the PAGAMENTO notification shape. Ocurrences and
// Occurrences are both populated identically — known upstream schema
// quirk, preserved for downstream compatibility.
type pagamentoBody struct {
	Status      string   `json:"status"`
	UniqueID    string   `json:"uniqueid"`
	CreatedAt   string   `json:"createdAt"`
	Ocurrences  []string `json:"ocurrences"`
	AccountHash string   `json:"accountHash"`
	Occurrences []string `json:"occurrences"`
}

// PayloadBuilder maps a (product, event type, service group) tuple to the
// product-specific outbound payload. Services in one group share the same
// owning account and therefore the same resolved config.
type PayloadBuilder struct {
	now func() time.Time
}

// NewPayloadBuilder creates a PayloadBuilder using the wall clock.
func NewPayloadBuilder() *PayloadBuilder {
	return &PayloadBuilder{now: time.Now}
}

// Build assembles one outbound payload for an account group. The second
// return value is false for unknown products: nothing to dispatch, not an
// error.
func (b *PayloadBuilder) Build(
	product domain.Product,
	eventType string,
	services []domain.Service,
	cfg *domain.NotificationConfig,
	correlationID string,
) (ports.OutboundPayload, bool) {
	var body any

	switch product {
	case domain.ProductBoleto:
		body = b.buildBoleto(eventType, services, correlationID)
	case domain.ProductPix:
		body = b.buildPix(eventType, services, correlationID)
	case domain.ProductPagamento:
		body = b.buildPagamento(eventType, services, correlationID)
	default:
		return ports.OutboundPayload{}, false
	}

	raw, _ := json.Marshal(body)

	return ports.OutboundPayload{
		Method:        http.MethodPost,
		URL:           cfg.URL,
		Headers:       buildHeaders(cfg),
		Body:          raw,
		CorrelationID: correlationID,
	}, true
}

func (b *PayloadBuilder) buildBoleto(eventType string, services []domain.Service, correlationID string) boletoBody {
	first := services[0]

	movimentos := make([]boletoMovimento, 0, len(services))
	for _, svc := range services {
		movimentos = append(movimentos, boletoMovimento{
			ServicoID:   svc.ID,
			NossoNumero: svc.NossoNumero,
			Situacao:    string(svc.Situation),
		})
	}

	var cnpj string
	if ced := first.OwnerCedente(); ced != nil {
		cnpj = ced.TaxID
	}

	return boletoBody{
		TipoWH:         eventType,
		DataHoraEnvio:  b.now().Format(boletoTimestampLayout),
		CpfCnpjCedente: cnpj,
		Titulo: boletoTitulo{
			Situacao:          situationForEvent(eventType, first.Situation),
			IDIntegracao:      correlationID,
			TituloNossoNumero: first.NossoNumero,
			TituloMovimentos:  movimentos,
		},
	}
}

func (b *PayloadBuilder) buildPix(eventType string, services []domain.Service, correlationID string) pixBody {
	first := services[0]

	tags := make([]string, 0, len(services))
	for _, svc := range services {
		tags = append(tags, svc.ID)
	}

	var companyID string
	if ced := first.OwnerCedente(); ced != nil {
		companyID = ced.ID
	}

	return pixBody{
		Type:          domain.KindWebhook,
		CompanyID:     companyID,
		Event:         eventType,
		TransactionID: correlationID,
		Tags:          tags,
		ID:            pixID{PixID: first.PixID},
	}
}

func (b *PayloadBuilder) buildPagamento(eventType string, services []domain.Service, correlationID string) pagamentoBody {
	ids := make([]string, 0, len(services))
	for _, svc := range services {
		ids = append(ids, svc.ID)
	}

	var accountHash string
	if acc := services[0].OwnerAccount(); acc != nil {
		accountHash = acc.ID
	}

	return pagamentoBody{
		Status:      eventType,
		UniqueID:    correlationID,
		CreatedAt:   b.now().UTC().Format(time.RFC3339),
		Ocurrences:  ids,
		AccountHash: accountHash,
		Occurrences: ids,
	}
}

// buildHeaders merges the configured single named header (when enabled)
// followed by the extra headers.
func buildHeaders(cfg *domain.NotificationConfig) map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if cfg.HeaderEnabled && cfg.HeaderName != "" {
		headers[cfg.HeaderName] = cfg.HeaderValue
	}
	for _, h := range cfg.ExtraHeaders {
		headers[h.Name] = h.Value
	}
	return headers
}

// situationForEvent maps a boleto event type onto the titulo situacao,
// falling back to the service's stored situation for unknown types.
func situationForEvent(eventType string, fallback domain.Situation) string {
	switch eventType {
	case domain.EventBoletoAvailable:
		return string(domain.SituationAvailable)
	case domain.EventBoletoCanceled:
		return string(domain.SituationCanceled)
	case domain.EventBoletoPaid:
		return string(domain.SituationPaid)
	}
	return string(fallback)
}
