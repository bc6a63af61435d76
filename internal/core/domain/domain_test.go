package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResendKey_SortsIDs(t *testing.T) {
	a := BuildResendKey(ProductBoleto, []string{"4", "2", "1", "3"}, KindWebhook, EventBoletoAvailable)
	b := BuildResendKey(ProductBoleto, []string{"1", "2", "3", "4"}, KindWebhook, EventBoletoAvailable)

	assert.Equal(t, a, b)
	assert.Equal(t, "boleto:1,2,3,4:webhook:disponivel", a)
}

func TestBuildResendKey_DoesNotMutateInput(t *testing.T) {
	ids := []string{"9", "1", "5"}
	_ = BuildResendKey(ProductPix, ids, KindWebhook, "recebido")
	assert.Equal(t, []string{"9", "1", "5"}, ids)
}

func TestBuildResendKey_DistinctRequestsNeverCollide(t *testing.T) {
	base := BuildResendKey(ProductBoleto, []string{"1"}, KindWebhook, EventBoletoAvailable)

	assert.NotEqual(t, base, BuildResendKey(ProductPix, []string{"1"}, KindWebhook, EventBoletoAvailable))
	assert.NotEqual(t, base, BuildResendKey(ProductBoleto, []string{"2"}, KindWebhook, EventBoletoAvailable))
	assert.NotEqual(t, base, BuildResendKey(ProductBoleto, []string{"1"}, KindWebhook, EventBoletoPaid))
}

func chainWith(accountCfg, cedenteCfg *NotificationConfig) *Service {
	return &Service{
		ID:      "1",
		Product: ProductBoleto,
		Status:  StatusActive,
		Agreement: &Agreement{
			ID: "10",
			Account: &Account{
				ID:     "100",
				Config: accountCfg,
				Cedente: &Cedente{
					ID:     "1000",
					Config: cedenteCfg,
				},
			},
		},
	}
}

func TestResolveConfig_AccountTakesPrecedence(t *testing.T) {
	accountCfg := &NotificationConfig{URL: "https://account.example.com/hook"}
	cedenteCfg := &NotificationConfig{URL: "https://cedente.example.com/hook"}

	svc := chainWith(accountCfg, cedenteCfg)
	cfg, err := svc.ResolveConfig()
	require.NoError(t, err)
	assert.Same(t, accountCfg, cfg)
}

func TestResolveConfig_FallsBackToCedente(t *testing.T) {
	cedenteCfg := &NotificationConfig{URL: "https://cedente.example.com/hook"}

	svc := chainWith(nil, cedenteCfg)
	cfg, err := svc.ResolveConfig()
	require.NoError(t, err)
	assert.Same(t, cedenteCfg, cfg)
}

func TestResolveConfig_BothAbsentIsAnError(t *testing.T) {
	svc := chainWith(nil, nil)
	cfg, err := svc.ResolveConfig()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestResolveConfig_UnloadedChainIsAnError(t *testing.T) {
	svc := &Service{ID: "1"}
	_, err := svc.ResolveConfig()
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestNotificationConfig_EventEnabled(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]bool
		event string
		want  bool
	}{
		{"nil flags default enabled", nil, EventBoletoAvailable, true},
		{"missing flag default enabled", map[string]bool{"pago": true}, EventBoletoAvailable, true},
		{"explicitly enabled", map[string]bool{"disponivel": true}, EventBoletoAvailable, true},
		{"explicitly disabled", map[string]bool{"disponivel": false}, EventBoletoAvailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &NotificationConfig{EventFlags: tt.flags}
			assert.Equal(t, tt.want, cfg.EventEnabled(tt.event))
		})
	}
}

func TestService_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"active", StatusActive, true},
		{"inactive", StatusInactive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Service{Status: tt.status}
			assert.Equal(t, tt.want, s.IsActive())
		})
	}
}

func TestKnownProduct(t *testing.T) {
	assert.True(t, KnownProduct(ProductBoleto))
	assert.True(t, KnownProduct(ProductPix))
	assert.True(t, KnownProduct(ProductPagamento))
	assert.False(t, KnownProduct(Product("carne")))
}

func TestService_OwnerCedente(t *testing.T) {
	svc := chainWith(nil, nil)
	require.NotNil(t, svc.OwnerCedente())
	assert.Equal(t, "1000", svc.OwnerCedente().ID)

	assert.Nil(t, (&Service{}).OwnerCedente())
}
