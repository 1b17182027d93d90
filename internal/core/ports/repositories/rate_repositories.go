package repositories

import (
	"context"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
)

// RateOverrideReader defines read operations for admin mid-rate overrides
type RateOverrideReader interface {
	// ListOverrides returns every stored override keyed by currency code.
	ListOverrides(ctx context.Context) (map[string]float64, error)
}

// RateOverrideWriter defines write operations for admin mid-rate overrides
type RateOverrideWriter interface {
	// UpsertOverride stores value as the mid rate of code, replacing any previous one.
	UpsertOverride(ctx context.Context, override domain.RateOverride) error

	// DeleteOverride removes the override of code. Deleting a missing override is not an error.
	DeleteOverride(ctx context.Context, code string) error
}

// RateRuleReader defines read operations for per-currency pricing rules
type RateRuleReader interface {
	// ListRules returns every stored rule keyed by currency code.
	ListRules(ctx context.Context) (map[string]domain.RateRule, error)
}

// RateRuleWriter defines write operations for per-currency pricing rules
type RateRuleWriter interface {
	// UpsertRule replaces the rule stored for rule.Code.
	UpsertRule(ctx context.Context, rule domain.RateRule) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateOverrideReader
	RateOverrideWriter
	RateRuleReader
	RateRuleWriter
}
