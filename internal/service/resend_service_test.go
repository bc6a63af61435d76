package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"webhook-resender/internal/core/domain"
	"webhook-resender/internal/core/ports"
	"webhook-resender/internal/core/ports/mocks"
	"webhook-resender/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

type resendTestDeps struct {
	svc        *ResendServiceImpl
	tenantRepo *mocks.MockTenantRepository
	protoRepo  *mocks.MockProtocolRepository
	dispatcher *mocks.MockGatewayDispatcher
	idempCache *mocks.MockIdempotencyCache
	ctrl       *gomock.Controller
}

func setupResendService(t *testing.T) *resendTestDeps {
	ctrl := gomock.NewController(t)
	d := &resendTestDeps{
		tenantRepo: mocks.NewMockTenantRepository(ctrl),
		protoRepo:  mocks.NewMockProtocolRepository(ctrl),
		dispatcher: mocks.NewMockGatewayDispatcher(ctrl),
		idempCache: mocks.NewMockIdempotencyCache(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewResendService(
		d.tenantRepo, d.protoRepo, d.dispatcher, d.idempCache,
		time.Hour, zerolog.Nop(),
	)
	return d
}

// boletoService builds a service with a full ownership chain. Services
// created with the same account share one *Account.
func boletoService(id string, account *domain.Account) domain.Service {
	return domain.Service{
		ID:          id,
		Product:     domain.ProductBoleto,
		Status:      domain.StatusActive,
		Situation:   domain.SituationAvailable,
		NossoNumero: "NN-" + id,
		Agreement:   &domain.Agreement{ID: "ag-" + id, Account: account},
	}
}

func accountFor(cedenteID string, cfg *domain.NotificationConfig) *domain.Account {
	return &domain.Account{
		ID:      "acc-" + cedenteID,
		Product: domain.ProductBoleto,
		Status:  domain.StatusActive,
		Config:  cfg,
		Cedente: &domain.Cedente{
			ID:     cedenteID,
			TaxID:  "12345678000199",
			Status: domain.StatusActive,
		},
	}
}

func TestResendService_Resend_Success(t *testing.T) {
	d := setupResendService(t)

	ctx := context.Background()
	account := accountFor("ced-1", &domain.NotificationConfig{URL: "https://hooks.example.com/wh"})

	req := ports.ResendRequest{
		CedenteID:  "ced-1",
		Product:    domain.ProductBoleto,
		ServiceIDs: []string{"1"},
		Kind:       domain.KindWebhook,
		Type:       domain.EventBoletoAvailable,
	}
	key := domain.BuildResendKey(req.Product, req.ServiceIDs, req.Kind, req.Type)

	d.tenantRepo.EXPECT().FindServicesByIDs(ctx, []string{"1"}).
		Return([]domain.Service{boletoService("1", account)}, nil)
	d.idempCache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Return("proto-abc", nil)
	d.protoRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.ReprocessedWebhook) error {
			assert.Equal(t, "proto-abc", rec.ProtocolID)
			assert.Equal(t, "ced-1", rec.CedenteID)
			assert.Equal(t, []string{"1"}, rec.ServiceIDs)
			assert.Equal(t, domain.KindWebhook, rec.Kind)
			return nil
		})
	d.idempCache.EXPECT().Set(ctx, key, gomock.Any(), time.Hour).Return(nil)

	result, err := d.svc.Resend(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Webhook reenviado com sucesso", result.Message)
	assert.Equal(t, "proto-abc", result.Protocol)
	assert.Equal(t, []string{"proto-abc"}, result.Protocols)
}

func TestResendService_Resend_IdempotencyHit(t *testing.T) {
	d := setupResendService(t)

	ctx := context.Background()
	account := accountFor("ced-1", &domain.NotificationConfig{URL: "https://hooks.example.com/wh"})

	req := ports.ResendRequest{
		CedenteID:  "ced-1",
		Product:    domain.ProductBoleto,
		ServiceIDs: []string{"1"},
		Kind:       domain.KindWebhook,
		Type:       domain.EventBoletoAvailable,
	}
	key := domain.BuildResendKey(req.Product, req.ServiceIDs, req.Kind, req.Type)

	prior := ports.ResendResult{Message: "Webhook reenviado com sucesso", Protocol: "proto-old"}
	cached, _ := json.Marshal(prior)

	d.tenantRepo.EXPECT().FindServicesByIDs(ctx, []string{"1"}).
		Return([]domain.Service{boletoService("1", account)}, nil)
	d.idempCache.EXPECT().Get(ctx, key).Return(cached, nil)
	// No dispatch, no persistence, no cache set.

	result, err := d.svc.Resend(ctx, req)
	assert.Nil(t, result)
	assertAppError(t, err, "ALREADY_PROCESSED")

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	got, ok := appErr.Details.(ports.ResendResult)
	require.True(t, ok)
	assert.Equal(t, "proto-old", got.Protocol)
}

func TestResendService_Resend_UnsupportedKind(t *testing.T) {
	d := setupResendService(t)

	_, err := d.svc.Resend(context.Background(), ports.ResendRequest{
		CedenteID:  "ced-1",
		Product:    domain.ProductBoleto,
		ServiceIDs: []string{"1"},
		Kind:       "email",
		Type:       domain.EventBoletoAvailable,
	})
	assertAppError(t, err, "NOT_IMPLEMENTED")
}

func TestResendService_Resend_UnknownProductIsEmptyResult(t *testing.T) {
	d := setupResendService(t)

	result, err := d.svc.Resend(context.Background(), ports.ResendRequest{
		CedenteID:  "ced-1",
		Product:    domain.Product("carne"),
		ServiceIDs: []string{"1"},
		Kind:       domain.KindWebhook,
		Type:       "qualquer",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Protocols)
	assert.Empty(t, result.Protocol)
}

func TestResendService_Resend_DispatchFailureNotCached(t *testing.T) {
	d := setupResendService(t)

	ctx := context.Background()
	account := accountFor("ced-1", &domain.NotificationConfig{URL: "https://hooks.example.com/wh"})

	req := ports.ResendRequest{
		CedenteID:  "ced-1",
		Product:    domain.ProductBoleto,
		ServiceIDs: []string{"1"},
		Kind:       domain.KindWebhook,
		Type:       domain.EventBoletoAvailable,
	}
	key := domain.BuildResendKey(req.Product, req.ServiceIDs, req.Kind, req.Type)

	d.tenantRepo.EXPECT().FindServicesByIDs(ctx, []string{"1"}).
		Return([]domain.Service{boletoService("1", account)}, nil)
	d.idempCache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Return("", errors.New("gateway returned status 503"))
	// No Create, no Set: a failed attempt can always be retried.

	result, err := d.svc.Resend(ctx, req)
	assert.Nil(t, result)
	assertAppError(t, err, "DISPATCH_ERROR")
}

func TestResendService_Resend_GroupsByAccount(t *testing.T) {
	d := setupResendService(t)

	ctx := context.Background()
	shared := accountFor("ced-1", &domain.NotificationConfig{URL: "https://hooks.example.com/wh"})

	req := ports.ResendRequest{
		CedenteID:  "ced-1",
		Product:    domain.ProductBoleto,
		ServiceIDs: []string{"1", "2"},
		Kind:       domain.KindWebhook,
		Type:       domain.EventBoletoPaid,
	}
	key := domain.BuildResendKey(req.Product, req.ServiceIDs, req.Kind, req.Type)

	d.tenantRepo.EXPECT().FindServicesByIDs(ctx, []string{"1", "2"}).
		Return([]domain.Service{boletoService("1", shared), boletoService("2", shared)}, nil)
	d.idempCache.EXPECT().Get(ctx, key).Return(nil, nil)
	// Two services, one account: exactly one outbound payload.
	d.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Return("proto-1", nil).Times(1)
	d.protoRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.ReprocessedWebhook) error {
			assert.Equal(t, []string{"1", "2"}, rec.ServiceIDs)
			return nil
		}).Times(1)
	d.idempCache.EXPECT().Set(ctx, key, gomock.Any(), time.Hour).Return(nil)

	result, err := d.svc.Resend(ctx, req)
	require.NoError(t, err)
	assert.Len(t, result.Protocols, 1)
}

func TestResendService_Resend_EventDisabledByConfig(t *testing.T) {
	d := setupResendService(t)

	ctx := context.Background()
	account := accountFor("ced-1", &domain.NotificationConfig{
		URL:        "https://hooks.example.com/wh",
		EventFlags: map[string]bool{domain.EventBoletoPaid: false},
	})

	req := ports.ResendRequest{
		CedenteID:  "ced-1",
		Product:    domain.ProductBoleto,
		ServiceIDs: []string{"1"},
		Kind:       domain.KindWebhook,
		Type:       domain.EventBoletoPaid,
	}
	key := domain.BuildResendKey(req.Product, req.ServiceIDs, req.Kind, req.Type)

	d.tenantRepo.EXPECT().FindServicesByIDs(ctx, []string{"1"}).
		Return([]domain.Service{boletoService("1", account)}, nil)
	d.idempCache.EXPECT().Get(ctx, key).Return(nil, nil)

	_, err := d.svc.Resend(ctx, req)
	assertAppError(t, err, "BUSINESS_RULE")
}

func TestResendService_Resend_MissingConfigIsInternal(t *testing.T) {
	d := setupResendService(t)

	ctx := context.Background()
	account := accountFor("ced-1", nil) // no account config, no cedente config

	req := ports.ResendRequest{
		CedenteID:  "ced-1",
		Product:    domain.ProductBoleto,
		ServiceIDs: []string{"1"},
		Kind:       domain.KindWebhook,
		Type:       domain.EventBoletoAvailable,
	}
	key := domain.BuildResendKey(req.Product, req.ServiceIDs, req.Kind, req.Type)

	d.tenantRepo.EXPECT().FindServicesByIDs(ctx, []string{"1"}).
		Return([]domain.Service{boletoService("1", account)}, nil)
	d.idempCache.EXPECT().Get(ctx, key).Return(nil, nil)

	_, err := d.svc.Resend(ctx, req)
	assertAppError(t, err, "INTERNAL_ERROR")
}
