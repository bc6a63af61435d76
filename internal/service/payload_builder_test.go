package service

import (
	"encoding/json"
	"testing"
	"time"

	"webhook-resender/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClockBuilder(t time.Time) *PayloadBuilder {
	b := NewPayloadBuilder()
	b.now = func() time.Time { return t }
	return b
}

func TestPayloadBuilder_Boleto(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	b := fixedClockBuilder(at)

	account := accountFor("ced-1", nil)
	cfg := &domain.NotificationConfig{URL: "https://hooks.example.com/boleto"}
	svc := boletoService("42", account)

	payload, ok := b.Build(domain.ProductBoleto, domain.EventBoletoPaid, []domain.Service{svc}, cfg, "corr-1")
	require.True(t, ok)
	assert.Equal(t, "POST", payload.Method)
	assert.Equal(t, "https://hooks.example.com/boleto", payload.URL)
	assert.Equal(t, "corr-1", payload.CorrelationID)

	var body boletoBody
	require.NoError(t, json.Unmarshal(payload.Body, &body))
	assert.Equal(t, "pago", body.TipoWH)
	assert.Equal(t, "14/03/2026 09:30:00", body.DataHoraEnvio)
	assert.Equal(t, "12345678000199", body.CpfCnpjCedente)
	assert.Equal(t, "PAGO", body.Titulo.Situacao)
	assert.Equal(t, "corr-1", body.Titulo.IDIntegracao)
	assert.Equal(t, "NN-42", body.Titulo.TituloNossoNumero)
	require.Len(t, body.Titulo.TituloMovimentos, 1)
	assert.Equal(t, "42", body.Titulo.TituloMovimentos[0].ServicoID)
}

func TestPayloadBuilder_Pix(t *testing.T) {
	b := NewPayloadBuilder()

	account := accountFor("ced-7", nil)
	cfg := &domain.NotificationConfig{URL: "https://hooks.example.com/pix"}
	svc := domain.Service{
		ID:        "5",
		Product:   domain.ProductPix,
		Status:    domain.StatusActive,
		PixID:     "pix-555",
		Agreement: &domain.Agreement{ID: "ag-5", Account: account},
	}

	payload, ok := b.Build(domain.ProductPix, "recebido", []domain.Service{svc}, cfg, "corr-2")
	require.True(t, ok)

	var body pixBody
	require.NoError(t, json.Unmarshal(payload.Body, &body))
	assert.Equal(t, "webhook", body.Type)
	assert.Equal(t, "ced-7", body.CompanyID)
	assert.Equal(t, "recebido", body.Event)
	assert.Equal(t, "corr-2", body.TransactionID)
	assert.Equal(t, []string{"5"}, body.Tags)
	assert.Equal(t, "pix-555", body.ID.PixID)
}

func TestPayloadBuilder_Pagamento_DuplicatedOccurrences(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	b := fixedClockBuilder(at)

	account := accountFor("ced-1", nil)
	cfg := &domain.NotificationConfig{URL: "https://hooks.example.com/pag"}
	services := []domain.Service{
		{ID: "8", Product: domain.ProductPagamento, Status: domain.StatusActive, Agreement: &domain.Agreement{Account: account}},
		{ID: "9", Product: domain.ProductPagamento, Status: domain.StatusActive, Agreement: &domain.Agreement{Account: account}},
	}

	payload, ok := b.Build(domain.ProductPagamento, "efetivado", services, cfg, "corr-3")
	require.True(t, ok)

	var body pagamentoBody
	require.NoError(t, json.Unmarshal(payload.Body, &body))
	assert.Equal(t, "efetivado", body.Status)
	assert.Equal(t, "corr-3", body.UniqueID)
	assert.Equal(t, "2026-03-14T09:30:00Z", body.CreatedAt)
	assert.Equal(t, account.ID, body.AccountHash)
	// Upstream schema quirk: both spellings populated identically.
	assert.Equal(t, []string{"8", "9"}, body.Ocurrences)
	assert.Equal(t, body.Ocurrences, body.Occurrences)
}

func TestPayloadBuilder_UnknownProduct(t *testing.T) {
	b := NewPayloadBuilder()
	cfg := &domain.NotificationConfig{URL: "https://hooks.example.com"}

	_, ok := b.Build(domain.Product("carne"), "x", []domain.Service{{ID: "1"}}, cfg, "corr")
	assert.False(t, ok)
}

func TestPayloadBuilder_Headers(t *testing.T) {
	b := NewPayloadBuilder()
	account := accountFor("ced-1", nil)
	cfg := &domain.NotificationConfig{
		URL:           "https://hooks.example.com",
		HeaderEnabled: true,
		HeaderName:    "X-Auth",
		HeaderValue:   "secret",
		ExtraHeaders: []domain.ExtraHeader{
			{Name: "X-Trace", Value: "abc"},
		},
	}

	payload, ok := b.Build(domain.ProductBoleto, domain.EventBoletoAvailable, []domain.Service{boletoService("1", account)}, cfg, "corr")
	require.True(t, ok)
	assert.Equal(t, "application/json", payload.Headers["Content-Type"])
	assert.Equal(t, "secret", payload.Headers["X-Auth"])
	assert.Equal(t, "abc", payload.Headers["X-Trace"])
}

func TestPayloadBuilder_HeaderDisabled(t *testing.T) {
	b := NewPayloadBuilder()
	account := accountFor("ced-1", nil)
	cfg := &domain.NotificationConfig{
		URL:         "https://hooks.example.com",
		HeaderName:  "X-Auth",
		HeaderValue: "secret",
	}

	payload, _ := b.Build(domain.ProductBoleto, domain.EventBoletoAvailable, []domain.Service{boletoService("1", account)}, cfg, "corr")
	_, present := payload.Headers["X-Auth"]
	assert.False(t, present)
}
