// Package catalog holds the static list of currencies the shop trades,
// their editorial metadata, default spreads and reference mid rates.
package catalog

import (
	"strings"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
)

// DefaultSpreadPercent applies to codes without a catalog spread.
const DefaultSpreadPercent = 2.5

type entry struct {
	meta domain.CurrencyMeta
	mid  float64
}

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	order         []string
	entries       map[string]entry
	defaultSpread float64
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultSpread overrides the global spread used for codes without one.
// Negative values are ignored.
func WithDefaultSpread(percent float64) Option {
	return func(c *Catalog) {
		if percent >= 0 {
			c.defaultSpread = percent
		}
	}
}

// New builds the shop catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		order:         make([]string, 0, len(currencies)),
		entries:       make(map[string]entry, len(currencies)),
		defaultSpread: DefaultSpreadPercent,
	}
	for _, e := range currencies {
		c.order = append(c.order, e.meta.Code)
		c.entries[e.meta.Code] = e
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Normalize trims and upper-cases a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ListSupported returns the metadata of every supported currency in display order.
func (c *Catalog) ListSupported() []domain.CurrencyMeta {
	out := make([]domain.CurrencyMeta, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.entries[code].meta)
	}
	return out
}

// Codes returns the supported codes in display order.
func (c *Catalog) Codes() []string {
	return append([]string(nil), c.order...)
}

// MetaFor returns the metadata for code.
func (c *Catalog) MetaFor(code string) (domain.CurrencyMeta, bool) {
	e, ok := c.entries[Normalize(code)]
	return e.meta, ok
}

// IsSupported reports whether code is in the catalog.
func (c *Catalog) IsSupported(code string) bool {
	_, ok := c.entries[Normalize(code)]
	return ok
}

// MidFor returns the static reference mid rate (EUR -> code).
func (c *Catalog) MidFor(code string) (float64, bool) {
	e, ok := c.entries[Normalize(code)]
	if !ok || e.mid <= 0 {
		return 0, false
	}
	return e.mid, true
}

// SpreadFor returns the default spread percentage of code, or the global default.
func (c *Catalog) SpreadFor(code string) float64 {
	if e, ok := c.entries[Normalize(code)]; ok && e.meta.DefaultSpreadPercent > 0 {
		return e.meta.DefaultSpreadPercent
	}
	return c.defaultSpread
}

func cur(code, name, country, flag string, spread, mid float64) entry {
	return entry{
		meta: domain.CurrencyMeta{
			Code:                 code,
			DisplayName:          name,
			Country:              country,
			Flag:                 flag,
			DefaultSpreadPercent: spread,
		},
		mid: mid,
	}
}

var currencies = []entry{
	cur("USD", "Dollar américain", "États-Unis", "🇺🇸", 2.0, 1.08),
	cur("GBP", "Livre sterling", "Royaume-Uni", "🇬🇧", 2.2, 0.85),
	cur("CHF", "Franc suisse", "Suisse", "🇨🇭", 2.0, 0.96),
	cur("JPY", "Yen japonais", "Japon", "🇯🇵", 2.5, 170.0),
	cur("CAD", "Dollar canadien", "Canada", "🇨🇦", 2.3, 1.47),
	cur("AUD", "Dollar australien", "Australie", "🇦🇺", 2.3, 1.62),
	cur("NZD", "Dollar néo-zélandais", "Nouvelle-Zélande", "🇳🇿", 2.6, 1.78),
	cur("NOK", "Couronne norvégienne", "Norvège", "🇳🇴", 2.5, 11.6),
	cur("SEK", "Couronne suédoise", "Suède", "🇸🇪", 2.5, 11.4),
	cur("DKK", "Couronne danoise", "Danemark", "🇩🇰", 2.0, 7.45),
	cur("PLN", "Zloty polonais", "Pologne", "🇵🇱", 2.8, 4.3),
	cur("CZK", "Couronne tchèque", "République tchèque", "🇨🇿", 2.8, 25.3),
	cur("HUF", "Forint hongrois", "Hongrie", "🇭🇺", 3.0, 395.0),
	cur("RON", "Leu roumain", "Roumanie", "🇷🇴", 3.0, 4.98),
	cur("BGN", "Lev bulgare", "Bulgarie", "🇧🇬", 3.0, 1.96),
	cur("TRY", "Livre turque", "Turquie", "🇹🇷", 4.0, 36.0),
	cur("MAD", "Dirham marocain", "Maroc", "🇲🇦", 3.5, 10.8),
	cur("TND", "Dinar tunisien", "Tunisie", "🇹🇳", 3.5, 3.4),
	cur("EGP", "Livre égyptienne", "Égypte", "🇪🇬", 4.0, 54.0),
	cur("CNY", "Yuan renminbi", "Chine", "🇨🇳", 3.0, 7.7),
	cur("XOF", "Franc CFA (UEMOA)", "Afrique de l’Ouest", "🇸🇳", 3.0, 655.96),
	cur("XAF", "Franc CFA (CEMAC)", "Afrique centrale", "🇨🇲", 3.0, 655.96),
	cur("ZAR", "Rand sud-africain", "Afrique du Sud", "🇿🇦", 3.2, 19.7),
	cur("AED", "Dirham des Émirats arabes unis", "Émirats arabes unis", "🇦🇪", 2.6, 3.97),
	cur("HKD", "Dollar de Hong Kong", "Hong Kong", "🇭🇰", 2.8, 8.42),
	cur("RUB", "Rouble russe", "Russie", "🇷🇺", 3.5, 97.0),
	cur("SAR", "Riyal saoudien", "Arabie saoudite", "🇸🇦", 2.6, 4.05),
	cur("THB", "Baht thaïlandais", "Thaïlande", "🇹🇭", 3.0, 39.0),
}
