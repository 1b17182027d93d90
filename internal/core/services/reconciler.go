package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/catalog"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/utils"
)

// lineReconciler implements the LineReconcilerSvc interface
type lineReconciler struct {
	BaseService
	catalog *catalog.Catalog
	engine  portssvc.RateEngine
}

// NewLineReconciler creates a reconciler pricing lines through engine.
func NewLineReconciler(cat *catalog.Catalog, engine portssvc.RateEngine) portssvc.LineReconcilerSvc {
	return &lineReconciler{catalog: cat, engine: engine}
}

// parsedLine is a line whose free-text amounts have been parsed. An amount that is
// missing, unparseable or not strictly positive is absent.
type parsedLine struct {
	number     int
	code       string
	eur        decimal.Decimal
	hasEur     bool
	local      decimal.Decimal
	hasLocal   bool
	eurToLocal float64
	hasE2L     bool
	localToEur float64
	hasL2E     bool
}

func parseLine(i int, in dto.LineInput) parsedLine {
	p := parsedLine{number: i + 1, code: catalog.Normalize(in.Currency)}
	p.eur, p.hasEur = parseSnapshotAmount(in.AmountEur)
	p.local, p.hasLocal = parseSnapshotAmount(in.AmountLocal)
	p.eurToLocal, p.hasE2L = utils.ParseRate(in.RateEurToLocal)
	p.localToEur, p.hasL2E = utils.ParseRate(in.RateLocalToEur)
	return p
}

// parseSnapshotAmount rounds before the positivity check so amounts that round to zero are absent.
func parseSnapshotAmount(raw string) (decimal.Decimal, bool) {
	d, ok := utils.ParseAmount(raw)
	if !ok {
		return decimal.Zero, false
	}
	d = utils.Round2(d)
	return d, d.IsPositive()
}

// blank reports an intentionally empty form row.
func (p parsedLine) blank() bool {
	return p.code == "" || (!p.hasEur && !p.hasLocal)
}

func (p parsedLine) warn(reason string) domain.LineWarning {
	return domain.LineWarning{Line: p.number, Currency: p.code, Reason: reason}
}

// ReservationLines prices every line at one side of the quote: sell for buy operations, buy for sell operations.
func (r *lineReconciler) ReservationLines(ctx context.Context, op domain.Operation, lines []dto.LineInput) ([]domain.ReservationItem, []domain.LineWarning, error) {
	items := make([]domain.ReservationItem, 0, len(lines))
	var warnings []domain.LineWarning

	for i, in := range lines {
		p := parseLine(i, in)
		if p.blank() {
			continue
		}
		if !r.catalog.IsSupported(p.code) {
			warnings = append(warnings, p.warn(domain.ReasonUnsupportedCurrency))
			continue
		}
		q := r.engine.ComputeBuySell(ctx, p.code)
		if !q.Priced() || !utils.IsUsableRate(*q.Buy) || !utils.IsUsableRate(*q.Sell) {
			r.LogWarn(ctx, "Reservation line skipped, rate unavailable", slog.String("currency", p.code))
			warnings = append(warnings, p.warn(domain.ReasonRateUnavailable))
			continue
		}

		rate := *q.Sell
		if op == domain.OperationSell {
			rate = *q.Buy
		}
		multiplier := decimal.NewFromFloat(rate)

		item := domain.ReservationItem{
			Currency:    p.code,
			AmountEuro:  p.eur,
			AmountLocal: p.local,
			RateBuy:     *q.Buy,
			RateSell:    *q.Sell,
		}
		if !p.hasLocal {
			item.AmountLocal = utils.Round2(p.eur.Mul(multiplier))
		}
		if !p.hasEur {
			item.AmountEuro = utils.Round2(p.local.Div(multiplier))
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, warnings, apperrors.ErrNoLineItems
	}
	return items, warnings, nil
}

// InvoiceLines resolves both rate directions of every line. A single supplied rate is completed by its
// reciprocal in reciprocal mode, or from the engine quote in engine mode. Lines without any rate are
// priced from the engine in both modes.
func (r *lineReconciler) InvoiceLines(ctx context.Context, mode domain.RateFillMode, lines []dto.LineInput) ([]domain.InvoiceItem, []domain.LineWarning, error) {
	items := make([]domain.InvoiceItem, 0, len(lines))
	var warnings []domain.LineWarning

	for i, in := range lines {
		p := parseLine(i, in)
		if p.blank() {
			continue
		}
		if !r.catalog.IsSupported(p.code) {
			warnings = append(warnings, p.warn(domain.ReasonUnsupportedCurrency))
			continue
		}

		e2l, l2e, ok := r.resolveRates(ctx, mode, p)
		if !ok {
			r.LogWarn(ctx, "Invoice line skipped, rate unavailable", slog.String("currency", p.code))
			warnings = append(warnings, p.warn(domain.ReasonRateUnavailable))
			continue
		}

		item := domain.InvoiceItem{
			Currency:       p.code,
			AmountEuro:     p.eur,
			AmountLocal:    p.local,
			RateEurToLocal: e2l,
			RateLocalToEur: l2e,
		}
		if !p.hasLocal {
			item.AmountLocal = utils.Round2(p.eur.Mul(decimal.NewFromFloat(e2l)))
		}
		if !p.hasEur {
			item.AmountEuro = utils.Round2(p.local.Mul(decimal.NewFromFloat(l2e)))
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, warnings, apperrors.ErrNoLineItems
	}
	return items, warnings, nil
}

// resolveRates returns strictly positive, finite rates in both directions or ok=false.
func (r *lineReconciler) resolveRates(ctx context.Context, mode domain.RateFillMode, p parsedLine) (e2l, l2e float64, ok bool) {
	e2l, l2e = p.eurToLocal, p.localToEur
	hasE2L, hasL2E := p.hasE2L, p.hasL2E

	if hasE2L && hasL2E {
		return e2l, l2e, true
	}

	if mode == domain.RateFillReciprocal && (hasE2L || hasL2E) {
		if hasE2L {
			l2e = 1 / e2l
		} else {
			e2l = 1 / l2e
		}
		return e2l, l2e, utils.IsUsableRate(e2l) && utils.IsUsableRate(l2e)
	}

	q := r.engine.ComputeBuySell(ctx, p.code)
	if !hasE2L && q.Sell != nil && utils.IsUsableRate(*q.Sell) {
		e2l, hasE2L = *q.Sell, true
	}
	if !hasL2E && q.Buy != nil && utils.IsUsableRate(*q.Buy) {
		l2e, hasL2E = 1 / *q.Buy, true
	}
	return e2l, l2e, hasE2L && hasL2E && utils.IsUsableRate(e2l) && utils.IsUsableRate(l2e)
}
