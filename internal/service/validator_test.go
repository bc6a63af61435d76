package service

import (
	"context"
	"errors"
	"testing"

	"webhook-resender/internal/core/domain"
	"webhook-resender/internal/core/ports/mocks"
	"webhook-resender/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupValidator(t *testing.T) (*Validator, *mocks.MockTenantRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTenantRepository(ctrl)
	return NewValidator(repo), repo
}

func TestValidator_Validate_Success(t *testing.T) {
	v, repo := setupValidator(t)
	ctx := context.Background()
	account := accountFor("ced-1", nil)

	repo.EXPECT().FindServicesByIDs(ctx, []string{"2", "1"}).
		Return([]domain.Service{boletoService("1", account), boletoService("2", account)}, nil)

	services, err := v.Validate(ctx, "ced-1", domain.ProductBoleto, []string{"2", "1"})
	require.NoError(t, err)
	require.Len(t, services, 2)
	// Returned in requested order, not store order
	assert.Equal(t, "2", services[0].ID)
	assert.Equal(t, "1", services[1].ID)
}

func TestValidator_Validate_ServiceNotFound(t *testing.T) {
	v, repo := setupValidator(t)
	ctx := context.Background()
	account := accountFor("ced-1", nil)

	repo.EXPECT().FindServicesByIDs(ctx, []string{"1", "99"}).
		Return([]domain.Service{boletoService("1", account)}, nil)

	_, err := v.Validate(ctx, "ced-1", domain.ProductBoleto, []string{"1", "99"})
	assertAppError(t, err, "INVALID_FIELDS")

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	msgs, ok := appErr.Details.([]string)
	require.True(t, ok)
	assert.Contains(t, msgs[0], "99")
}

func TestValidator_Validate_ForeignCedenteRejected(t *testing.T) {
	v, repo := setupValidator(t)
	ctx := context.Background()
	accountB := accountFor("ced-B", nil)

	repo.EXPECT().FindServicesByIDs(ctx, []string{"1"}).
		Return([]domain.Service{boletoService("1", accountB)}, nil)

	_, err := v.Validate(ctx, "ced-A", domain.ProductBoleto, []string{"1"})
	assertAppError(t, err, "BUSINESS_RULE")
}

func TestValidator_Validate_InactiveService(t *testing.T) {
	v, repo := setupValidator(t)
	ctx := context.Background()
	account := accountFor("ced-1", nil)

	svc := boletoService("1", account)
	svc.Status = domain.StatusInactive

	repo.EXPECT().FindServicesByIDs(ctx, []string{"1"}).
		Return([]domain.Service{svc}, nil)

	_, err := v.Validate(ctx, "ced-1", domain.ProductBoleto, []string{"1"})
	assertAppError(t, err, "BUSINESS_RULE")
}

func TestValidator_Validate_ProductMismatch(t *testing.T) {
	v, repo := setupValidator(t)
	ctx := context.Background()
	account := accountFor("ced-1", nil)

	repo.EXPECT().FindServicesByIDs(ctx, []string{"1"}).
		Return([]domain.Service{boletoService("1", account)}, nil)

	_, err := v.Validate(ctx, "ced-1", domain.ProductPix, []string{"1"})
	assertAppError(t, err, "BUSINESS_RULE")
}

func TestValidator_Validate_RepoError(t *testing.T) {
	v, repo := setupValidator(t)
	ctx := context.Background()

	repo.EXPECT().FindServicesByIDs(ctx, []string{"1"}).
		Return(nil, errors.New("connection refused"))

	_, err := v.Validate(ctx, "ced-1", domain.ProductBoleto, []string{"1"})
	assertAppError(t, err, "INTERNAL_ERROR")
}
