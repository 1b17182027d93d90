package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/catalog"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/SscSPs/exchange_shop/internal/core/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
)

func TestDisplay_DefaultConfigShowsCatalog(t *testing.T) {
	repo := new(MockDisplayRepository)
	repo.On("GetDisplayConfig", mock.Anything).Return(nil, apperrors.ErrNotFound)
	cat := catalog.New()
	svc := services.NewDisplayService(repo, cat, fakeEngine{"USD": quote(1.08, 1.0584, 1.1016)})

	direction, rows, err := svc.Screen(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DirectionEurToLocal, direction)
	assert.Len(t, rows, len(cat.Codes()))
	assert.Equal(t, "USD", rows[0].Code)
	assert.Equal(t, "EUR", rows[0].PrefixCode)
	assert.Equal(t, "USD", rows[0].SuffixCode)
	assert.Equal(t, 1.1016, *rows[0].DisplaySell)
	assert.Nil(t, rows[1].DisplayBuy)
}

func TestDisplay_LocalToEurInvertsRates(t *testing.T) {
	repo := new(MockDisplayRepository)
	repo.On("GetDisplayConfig", mock.Anything).
		Return(&domain.DisplayConfig{Codes: []string{"USD"}, Direction: domain.DirectionLocalToEur}, nil)
	svc := services.NewDisplayService(repo, catalog.New(), fakeEngine{"USD": quote(1.08, 1.0, 1.25)})

	_, rows, err := svc.Screen(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "USD", rows[0].PrefixCode)
	assert.Equal(t, "EUR", rows[0].SuffixCode)
	assert.Equal(t, 1.0, *rows[0].DisplayBuy)
	assert.Equal(t, 0.8, *rows[0].DisplaySell)
	assert.Equal(t, "États-Unis", rows[0].Name)
}

func TestDisplay_UpdateCleansCodes(t *testing.T) {
	repo := new(MockDisplayRepository)
	want := domain.DisplayConfig{Codes: []string{"USD", "GBP"}, Direction: domain.DirectionLocalToEur}
	repo.On("SaveDisplayConfig", mock.Anything, want).Return(nil).Once()
	svc := services.NewDisplayService(repo, catalog.New(), fakeEngine{})

	cfg, err := svc.UpdateDisplayConfig(context.Background(), dto.UpdateDisplayRequest{
		Codes:     []string{"usd", "XYZ", " gbp ", "USD"},
		Direction: "local_to_eur",
	})

	require.NoError(t, err)
	assert.Equal(t, want, *cfg)
	repo.AssertExpectations(t)
}
