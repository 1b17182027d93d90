package repositories

import (
	"context"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
)

// DisplayConfigRepository stores the single rate-screen configuration row.
type DisplayConfigRepository interface {
	// GetDisplayConfig returns apperrors.ErrNotFound until a configuration has been saved.
	GetDisplayConfig(ctx context.Context) (*domain.DisplayConfig, error)
	SaveDisplayConfig(ctx context.Context, cfg domain.DisplayConfig) error
}
