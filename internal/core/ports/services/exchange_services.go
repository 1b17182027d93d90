package services

import (
	"context"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/SscSPs/exchange_shop/internal/dto"
)

// ExchangeSvc previews conversions without booking anything.
type ExchangeSvc interface {
	Simulate(ctx context.Context, req dto.SimulateRequest) (*domain.ExchangeSimulation, error)
}

// LineReconcilerSvc resolves partially filled currency lines into priced snapshots.
type LineReconcilerSvc interface {
	// ReservationLines prices lines at the sell rate for buy operations and at the buy rate for sell operations.
	ReservationLines(ctx context.Context, op domain.Operation, lines []dto.LineInput) ([]domain.ReservationItem, []domain.LineWarning, error)

	// InvoiceLines resolves both rate directions of every line, filling gaps according to mode.
	InvoiceLines(ctx context.Context, mode domain.RateFillMode, lines []dto.LineInput) ([]domain.InvoiceItem, []domain.LineWarning, error)
}
