package services

import (
	"context"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/SscSPs/exchange_shop/internal/dto"
)

// DisplaySvcFacade manages the in-shop rate screen
type DisplaySvcFacade interface {
	GetDisplayConfig(ctx context.Context) (*domain.DisplayConfig, error)
	UpdateDisplayConfig(ctx context.Context, req dto.UpdateDisplayRequest) (*domain.DisplayConfig, error)

	// Screen renders the rows of the configured currencies in the configured direction.
	Screen(ctx context.Context) (domain.DisplayDirection, []domain.ScreenRow, error)
}
