package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
)

// exchangeService implements the ExchangeSvc interface
type exchangeService struct {
	BaseService
	lines portssvc.LineReconcilerSvc
}

// NewExchangeService creates a simulator sharing the reservation pricing of lines.
func NewExchangeService(lines portssvc.LineReconcilerSvc) portssvc.ExchangeSvc {
	return &exchangeService{lines: lines}
}

// Simulate prices a single conversion exactly as a one-line reservation would be priced.
func (s *exchangeService) Simulate(ctx context.Context, req dto.SimulateRequest) (*domain.ExchangeSimulation, error) {
	op := domain.Operation(req.Direction)
	if !op.IsValid() {
		return nil, apperrors.FieldErrors{"direction": "must be one of buy, sell"}
	}

	items, warnings, err := s.lines.ReservationLines(ctx, op, []dto.LineInput{{
		Currency:    req.Code,
		AmountEur:   req.AmountEur,
		AmountLocal: req.AmountLocal,
	}})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoLineItems) {
			return nil, err
		}
		if len(warnings) == 0 {
			return nil, apperrors.FieldErrors{"amountEur": "enter an amount in EUR or in the foreign currency"}
		}
		switch warnings[0].Reason {
		case domain.ReasonUnsupportedCurrency:
			return nil, apperrors.FieldErrors{"code": "unsupported currency"}
		default:
			return nil, fmt.Errorf("%w: %s", apperrors.ErrRateUnavailable, warnings[0].Currency)
		}
	}

	item := items[0]
	rate := item.RateSell
	if op == domain.OperationSell {
		rate = item.RateBuy
	}
	return &domain.ExchangeSimulation{
		Direction:   op,
		Code:        item.Currency,
		Rate:        rate,
		AmountEuro:  item.AmountEuro,
		AmountLocal: item.AmountLocal,
	}, nil
}
