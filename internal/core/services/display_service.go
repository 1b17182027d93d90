package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/catalog"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_shop/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
)

const baseCurrency = "EUR"

// displayService implements the DisplaySvcFacade interface
type displayService struct {
	BaseService
	repo    portsrepo.DisplayConfigRepository
	catalog *catalog.Catalog
	engine  portssvc.RateEngine
}

// NewDisplayService creates a new display service
func NewDisplayService(repo portsrepo.DisplayConfigRepository, cat *catalog.Catalog, engine portssvc.RateEngine) portssvc.DisplaySvcFacade {
	return &displayService{repo: repo, catalog: cat, engine: engine}
}

// GetDisplayConfig returns the stored configuration, or the default one (every currency, EUR first) when none is saved.
func (s *displayService) GetDisplayConfig(ctx context.Context) (*domain.DisplayConfig, error) {
	cfg, err := s.repo.GetDisplayConfig(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.DisplayConfig{Direction: domain.DirectionEurToLocal}, nil
		}
		s.LogError(ctx, err, "Failed to load display config")
		return nil, fmt.Errorf("failed to load display config: %w", err)
	}
	return cfg, nil
}

// UpdateDisplayConfig keeps the supported codes of req in order, without duplicates.
func (s *displayService) UpdateDisplayConfig(ctx context.Context, req dto.UpdateDisplayRequest) (*domain.DisplayConfig, error) {
	seen := make(map[string]bool, len(req.Codes))
	codes := make([]string, 0, len(req.Codes))
	for _, raw := range req.Codes {
		code := catalog.Normalize(raw)
		if seen[code] {
			continue
		}
		seen[code] = true
		if !s.catalog.IsSupported(code) {
			s.LogWarn(ctx, "Ignoring unsupported currency on display", slog.String("code", code))
			continue
		}
		codes = append(codes, code)
	}

	cfg := domain.DisplayConfig{Codes: codes, Direction: domain.ParseDisplayDirection(req.Direction)}
	if err := s.repo.SaveDisplayConfig(ctx, cfg); err != nil {
		s.LogError(ctx, err, "Failed to save display config")
		return nil, fmt.Errorf("failed to save display config: %w", err)
	}
	s.LogInfo(ctx, "Display config saved", slog.Int("codes", len(codes)), slog.String("direction", string(cfg.Direction)))
	return &cfg, nil
}

// Screen renders one row per configured currency. An empty selection shows the whole catalog.
func (s *displayService) Screen(ctx context.Context) (domain.DisplayDirection, []domain.ScreenRow, error) {
	cfg, err := s.GetDisplayConfig(ctx)
	if err != nil {
		return "", nil, err
	}
	codes := cfg.Codes
	if len(codes) == 0 {
		codes = s.catalog.Codes()
	}

	rows := make([]domain.ScreenRow, 0, len(codes))
	for _, code := range codes {
		meta, ok := s.catalog.MetaFor(code)
		if !ok {
			continue
		}
		q := s.engine.ComputeBuySell(ctx, code)
		row := domain.ScreenRow{Code: meta.Code, Flag: meta.Flag, Name: meta.Country}
		if cfg.Direction == domain.DirectionLocalToEur {
			row.DisplayBuy, row.DisplaySell = reciprocal(q.Buy), reciprocal(q.Sell)
			row.PrefixCode, row.SuffixCode = meta.Code, baseCurrency
		} else {
			row.DisplayBuy, row.DisplaySell = q.Buy, q.Sell
			row.PrefixCode, row.SuffixCode = baseCurrency, meta.Code
		}
		rows = append(rows, row)
	}
	return cfg.Direction, rows, nil
}

func reciprocal(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	r := 1 / *v
	return &r
}
