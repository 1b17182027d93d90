package services

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/catalog"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_shop/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/utils"
)

const (
	defaultRateCacheTTL = 30 * time.Second
	tablesKey           = "tables"
)

// rateTables is the admin-editable pricing state, loaded and cached as a whole.
type rateTables struct {
	overrides map[string]float64
	rules     map[string]domain.RateRule
}

// rateService implements the RateSvcFacade interface
type rateService struct {
	BaseService
	catalog  *catalog.Catalog
	repo     portsrepo.RateRepositoryFacade
	spot     portssvc.SpotSource
	quotes   *prometheus.CounterVec
	cacheTTL time.Duration
	tables   *expirable.LRU[string, rateTables]
	validate *validator.Validate
	now      func() time.Time
}

// RateServiceOption is a functional option for configuring the rate service
type RateServiceOption func(*rateService)

// WithSpotSource enables live spot pricing for percent rules.
func WithSpotSource(spot portssvc.SpotSource) RateServiceOption {
	return func(s *rateService) {
		s.spot = spot
	}
}

// WithQuoteCounter counts computed quotes by strategy.
func WithQuoteCounter(c *prometheus.CounterVec) RateServiceOption {
	return func(s *rateService) {
		s.quotes = c
	}
}

// WithRateCacheTTL sets how long loaded overrides and rules are reused.
func WithRateCacheTTL(ttl time.Duration) RateServiceOption {
	return func(s *rateService) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithRateClock replaces the clock stamping rule updates.
func WithRateClock(now func() time.Time) RateServiceOption {
	return func(s *rateService) {
		s.now = now
	}
}

// NewRateService creates the rate engine over the catalog and the override/rule store.
func NewRateService(cat *catalog.Catalog, repo portsrepo.RateRepositoryFacade, options ...RateServiceOption) portssvc.RateSvcFacade {
	svc := &rateService{
		catalog:  cat,
		repo:     repo,
		cacheTTL: defaultRateCacheTTL,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	svc.tables = expirable.NewLRU[string, rateTables](1, nil, svc.cacheTTL)
	svc.validate = newFormValidator()
	return svc
}

// ComputeBuySell resolves the quote of code from the current pricing state.
func (s *rateService) ComputeBuySell(ctx context.Context, code string) domain.Quote {
	return s.quote(ctx, catalog.Normalize(code), s.loadTables(ctx))
}

// ListCurrencies returns the supported currencies in display order.
func (s *rateService) ListCurrencies(_ context.Context) []domain.CurrencyMeta {
	return s.catalog.ListSupported()
}

// GetQuote returns the pricing picture of one supported currency.
func (s *rateService) GetQuote(ctx context.Context, code string) (*domain.RateSheetEntry, error) {
	meta, ok := s.catalog.MetaFor(code)
	if !ok {
		return nil, fmt.Errorf("%w: currency %q is not supported", apperrors.ErrNotFound, code)
	}
	entry := s.entry(ctx, meta, s.loadTables(ctx))
	return &entry, nil
}

// RateSheet returns the pricing picture of every supported currency.
func (s *rateService) RateSheet(ctx context.Context) []domain.RateSheetEntry {
	t := s.loadTables(ctx)
	metas := s.catalog.ListSupported()
	entries := make([]domain.RateSheetEntry, 0, len(metas))
	for _, meta := range metas {
		entries = append(entries, s.entry(ctx, meta, t))
	}
	return entries
}

// RateBoard returns the public quote of every supported currency, without the admin inputs.
func (s *rateService) RateBoard(ctx context.Context) []domain.RateSheetEntry {
	t := s.loadTables(ctx)
	metas := s.catalog.ListSupported()
	board := make([]domain.RateSheetEntry, 0, len(metas))
	for _, meta := range metas {
		board = append(board, domain.RateSheetEntry{Meta: meta, Quote: s.quote(ctx, meta.Code, t)})
	}
	return board
}

// ConvertFromEur converts eur into code at the sell rate.
func (s *rateService) ConvertFromEur(ctx context.Context, code string, eur decimal.Decimal) (decimal.Decimal, bool) {
	q := s.ComputeBuySell(ctx, code)
	if !q.Priced() {
		return decimal.Zero, false
	}
	return utils.Round2(eur.Mul(decimal.NewFromFloat(*q.Sell))), true
}

// ConvertToEur converts an amount of code into EUR at the buy rate.
func (s *rateService) ConvertToEur(ctx context.Context, code string, local decimal.Decimal) (decimal.Decimal, bool) {
	q := s.ComputeBuySell(ctx, code)
	if !q.Priced() {
		return decimal.Zero, false
	}
	return utils.Round2(local.Div(decimal.NewFromFloat(*q.Buy))), true
}

// SaveOverrides upserts positive values and clears the override of values <= 0.
func (s *rateService) SaveOverrides(ctx context.Context, overrides map[string]float64) error {
	fieldErrs := apperrors.FieldErrors{}
	for code := range overrides {
		if !s.catalog.IsSupported(code) {
			fieldErrs[catalog.Normalize(code)] = "unsupported currency"
		}
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	defer s.invalidate()
	for code, value := range overrides {
		if err := s.writeOverride(ctx, catalog.Normalize(code), value); err != nil {
			return err
		}
	}
	return nil
}

// SaveRule validates and stores a pricing rule.
func (s *rateService) SaveRule(ctx context.Context, input dto.RateRuleInput) (*domain.RateRule, error) {
	rule, fieldErrs := s.buildRule(input)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	defer s.invalidate()
	if err := s.repo.UpsertRule(ctx, rule); err != nil {
		s.LogError(ctx, err, "Failed to save rate rule", slog.String("code", rule.Code))
		return nil, fmt.Errorf("failed to save rate rule for %s: %w", rule.Code, err)
	}
	s.LogInfo(ctx, "Rate rule saved", slog.String("code", rule.Code), slog.String("mode", string(rule.Mode)))
	return &rule, nil
}

// SaveRateSheet validates every submitted row before writing any of them.
func (s *rateService) SaveRateSheet(ctx context.Context, req dto.SaveRateSheetRequest) error {
	fieldErrs := apperrors.FieldErrors{}
	rules := make([]domain.RateRule, 0, len(req.Rows))
	for _, row := range req.Rows {
		code := catalog.Normalize(row.Code)
		if !s.catalog.IsSupported(code) {
			fieldErrs[code+".code"] = "unsupported currency"
			continue
		}
		if row.Mode == "" {
			continue
		}
		rule, errs := s.buildRule(row.RateRuleInput)
		for field, msg := range errs {
			if field == "code" {
				continue
			}
			fieldErrs[code+"."+field] = msg
		}
		if len(errs) == 0 {
			rules = append(rules, rule)
		}
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	defer s.invalidate()
	for _, row := range req.Rows {
		if row.Override == nil {
			continue
		}
		if err := s.writeOverride(ctx, catalog.Normalize(row.Code), *row.Override); err != nil {
			return err
		}
	}
	for _, rule := range rules {
		if err := s.repo.UpsertRule(ctx, rule); err != nil {
			s.LogError(ctx, err, "Failed to save rate rule", slog.String("code", rule.Code))
			return fmt.Errorf("failed to save rate rule for %s: %w", rule.Code, err)
		}
	}
	s.LogInfo(ctx, "Rate sheet saved", slog.Int("rows", len(req.Rows)))
	return nil
}

func (s *rateService) writeOverride(ctx context.Context, code string, value float64) error {
	if value <= 0 {
		if err := s.repo.DeleteOverride(ctx, code); err != nil {
			s.LogError(ctx, err, "Failed to clear rate override", slog.String("code", code))
			return fmt.Errorf("failed to clear override for %s: %w", code, err)
		}
		return nil
	}
	if err := s.repo.UpsertOverride(ctx, domain.RateOverride{Code: code, Value: value}); err != nil {
		s.LogError(ctx, err, "Failed to save rate override", slog.String("code", code))
		return fmt.Errorf("failed to save override for %s: %w", code, err)
	}
	return nil
}

func (s *rateService) invalidate() {
	s.tables.Purge()
}

// loadTables returns the cached pricing state. A store failure degrades to empty tables
// and is not cached, so the next call retries.
func (s *rateService) loadTables(ctx context.Context) rateTables {
	if t, ok := s.tables.Get(tablesKey); ok {
		return t
	}
	overrides, err := s.repo.ListOverrides(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load rate overrides, using static mids")
		return rateTables{}
	}
	rules, err := s.repo.ListRules(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load rate rules, using default spreads")
		return rateTables{overrides: overrides}
	}
	t := rateTables{overrides: overrides, rules: rules}
	s.tables.Add(tablesKey, t)
	return t
}

func (s *rateService) entry(ctx context.Context, meta domain.CurrencyMeta, t rateTables) domain.RateSheetEntry {
	e := domain.RateSheetEntry{Meta: meta, Quote: s.quote(ctx, meta.Code, t)}
	if mid, ok := s.catalog.MidFor(meta.Code); ok {
		e.StaticMid = &mid
	}
	if v, ok := t.overrides[meta.Code]; ok {
		e.Override = &v
	}
	if r, ok := t.rules[meta.Code]; ok {
		e.Rule = &r
	}
	return e
}

func (s *rateService) quote(ctx context.Context, code string, t rateTables) domain.Quote {
	q := s.computeQuote(ctx, code, t)
	if s.quotes != nil {
		s.quotes.WithLabelValues(string(q.Strategy)).Inc()
	}
	return q
}

func (s *rateService) computeQuote(ctx context.Context, code string, t rateTables) domain.Quote {
	mid, ok := t.overrides[code]
	if !ok || mid <= 0 {
		mid, ok = s.catalog.MidFor(code)
	}
	if !ok {
		return domain.Quote{Strategy: domain.StrategyUnpriced}
	}

	var rule *domain.RateRule
	if r, found := t.rules[code]; found {
		rule = &r
	}

	switch rule.ActiveMode() {
	case domain.RuleModeManual:
		buy, sell := *rule.ManualBuy, *rule.ManualSell
		return domain.Quote{Mid: &mid, Buy: &buy, Sell: &sell, Strategy: domain.StrategyManual}

	case domain.RuleModePercent:
		pb, ps := rule.Percentages()
		// mid stays the override/static value even when spot is the base.
		base, strategy := mid, domain.StrategyPercentMid
		if s.spot != nil {
			if spot := s.spot.EurSpots(ctx)[code]; spot > 0 {
				base, strategy = spot, domain.StrategyPercentSpot
			}
		}
		buy := base * (1 - pb/100)
		sell := base * (1 + ps/100)
		return domain.Quote{Mid: &mid, Buy: &buy, Sell: &sell, Strategy: strategy}
	}

	spread := s.catalog.SpreadFor(code)
	buy := mid * (1 - spread/100)
	sell := mid * (1 + spread/100)
	return domain.Quote{Mid: &mid, Buy: &buy, Sell: &sell, Strategy: domain.StrategyDefault}
}

// ruleForm is the admin-boundary shape of a rate rule.
type ruleForm struct {
	Code        string   `json:"code" validate:"required,len=3"`
	Mode        string   `json:"mode" validate:"required,oneof=none manual percent"`
	ManualBuy   *float64 `json:"manualBuy" validate:"omitempty,gt=0"`
	ManualSell  *float64 `json:"manualSell" validate:"omitempty,gt=0"`
	PercentBuy  *float64 `json:"percentBuy" validate:"omitempty,gte=0,lt=100"`
	PercentSell *float64 `json:"percentSell" validate:"omitempty,gte=0,lt=100"`
}

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var ruleMessages = map[string]string{
	"required": "is required",
	"len":      "must be a 3-letter currency code",
	"oneof":    "must be one of none, manual, percent",
	"gt":       "must be greater than 0",
	"gte":      "must not be negative",
	"lt":       "must be less than 100",
}

// buildRule applies admin-save validation. Unlike the read path, incomplete rules are rejected
// here with field-level messages instead of silently falling back to the default spread.
func (s *rateService) buildRule(input dto.RateRuleInput) (domain.RateRule, apperrors.FieldErrors) {
	form := ruleForm{
		Code:        catalog.Normalize(input.Code),
		Mode:        strings.ToLower(strings.TrimSpace(input.Mode)),
		ManualBuy:   input.ManualBuy,
		ManualSell:  input.ManualSell,
		PercentBuy:  input.PercentBuy,
		PercentSell: input.PercentSell,
	}

	fieldErrs := apperrors.FieldErrors{}
	if err := s.validate.Struct(form); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				msg, found := ruleMessages[fe.Tag()]
				if !found {
					msg = "is invalid"
				}
				fieldErrs[fe.Field()] = msg
			}
		} else {
			fieldErrs["rule"] = err.Error()
		}
	}
	if _, bad := fieldErrs["code"]; !bad && !s.catalog.IsSupported(form.Code) {
		fieldErrs["code"] = "unsupported currency"
	}

	switch domain.RuleMode(form.Mode) {
	case domain.RuleModeManual:
		if form.ManualBuy == nil {
			fieldErrs["manualBuy"] = "is required in manual mode"
		}
		if form.ManualSell == nil {
			fieldErrs["manualSell"] = "is required in manual mode"
		}
	case domain.RuleModePercent:
		if form.PercentBuy == nil && form.PercentSell == nil {
			fieldErrs["percentBuy"] = "at least one percentage is required in percent mode"
		}
		if form.PercentBuy == nil {
			form.PercentBuy = form.PercentSell
		}
		if form.PercentSell == nil {
			form.PercentSell = form.PercentBuy
		}
	}
	if len(fieldErrs) > 0 {
		return domain.RateRule{}, fieldErrs
	}

	return domain.RateRule{
		Code:        form.Code,
		Mode:        domain.RuleMode(form.Mode),
		ManualBuy:   form.ManualBuy,
		ManualSell:  form.ManualSell,
		PercentBuy:  form.PercentBuy,
		PercentSell: form.PercentSell,
		UpdatedAt:   s.now().UTC(),
	}, nil
}
