package domain

// CurrencyMeta describes a currency the shop trades. Code is the natural key.
type CurrencyMeta struct {
	Code                 string  `json:"code"`        // 3-letter uppercase, e.g. "USD"
	DisplayName          string  `json:"displayName"` // e.g. "Dollar américain"
	Country              string  `json:"country"`
	Flag                 string  `json:"flag"`
	DefaultSpreadPercent float64 `json:"defaultSpreadPercent"` // >= 0
}
