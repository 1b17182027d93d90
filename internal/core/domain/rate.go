package domain

import "time"

// RateOverride is an admin-corrected mid rate (EUR -> Code) replacing the static table value.
type RateOverride struct {
	Code  string  `json:"code"`
	Value float64 `json:"value"` // > 0
}

// RuleMode selects the pricing strategy of a RateRule.
type RuleMode string

const (
	RuleModeNone    RuleMode = "none"
	RuleModeManual  RuleMode = "manual"
	RuleModePercent RuleMode = "percent"
)

// IsValid reports whether m is one of the known modes.
func (m RuleMode) IsValid() bool {
	switch m {
	case RuleModeNone, RuleModeManual, RuleModePercent:
		return true
	}
	return false
}

// RateRule is the admin-configured pricing strategy for one currency.
type RateRule struct {
	Code        string    `json:"code"`
	Mode        RuleMode  `json:"mode"`
	ManualBuy   *float64  `json:"manualBuy,omitempty"`
	ManualSell  *float64  `json:"manualSell,omitempty"`
	PercentBuy  *float64  `json:"percentBuy,omitempty"`
	PercentSell *float64  `json:"percentSell,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ActiveMode returns the mode that actually applies when pricing.
// An incomplete manual rule, or a percent rule without any percentage, counts as none.
func (r *RateRule) ActiveMode() RuleMode {
	if r == nil {
		return RuleModeNone
	}
	switch r.Mode {
	case RuleModeManual:
		if r.ManualBuy != nil && r.ManualSell != nil {
			return RuleModeManual
		}
	case RuleModePercent:
		if r.PercentBuy != nil || r.PercentSell != nil {
			return RuleModePercent
		}
	}
	return RuleModeNone
}

// Percentages returns the buy and sell percentages of a percent rule.
// A single supplied side is mirrored onto the other; negatives clamp to zero.
func (r *RateRule) Percentages() (buy, sell float64) {
	pb, ps := r.PercentBuy, r.PercentSell
	if pb == nil {
		pb = ps
	}
	if ps == nil {
		ps = pb
	}
	if pb != nil {
		buy = max(0, *pb)
	}
	if ps != nil {
		sell = max(0, *ps)
	}
	return buy, sell
}

// QuoteStrategy names the branch of the rate computation that produced a quote.
type QuoteStrategy string

const (
	StrategyUnpriced    QuoteStrategy = "unpriced"
	StrategyManual      QuoteStrategy = "manual"
	StrategyPercentSpot QuoteStrategy = "percent_spot"
	StrategyPercentMid  QuoteStrategy = "percent_mid"
	StrategyDefault     QuoteStrategy = "default"
)

// Quote is a computed, never persisted buy/sell pair around a mid rate.
// Buy is what the shop pays per EUR when acquiring foreign currency; Sell is what it charges.
// When Mid is nil both Buy and Sell are nil.
type Quote struct {
	Mid      *float64      `json:"mid"`
	Buy      *float64      `json:"buy"`
	Sell     *float64      `json:"sell"`
	Strategy QuoteStrategy `json:"strategy"`
}

// Priced reports whether both sides are present and positive.
func (q Quote) Priced() bool {
	return q.Buy != nil && q.Sell != nil && *q.Buy > 0 && *q.Sell > 0
}

// RateSheetEntry is the full pricing picture of one supported currency.
type RateSheetEntry struct {
	Meta      CurrencyMeta `json:"meta"`
	StaticMid *float64     `json:"staticMid"`
	Override  *float64     `json:"override"`
	Rule      *RateRule    `json:"rule"`
	Quote     Quote        `json:"quote"`
}
