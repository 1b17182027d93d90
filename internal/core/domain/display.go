package domain

// DisplayDirection selects how the shop screen quotes rates.
type DisplayDirection string

const (
	DirectionEurToLocal DisplayDirection = "eur_to_local" // 1 EUR = x CODE
	DirectionLocalToEur DisplayDirection = "local_to_eur" // 1 CODE = x EUR
)

// ParseDisplayDirection returns the matching direction, defaulting to eur_to_local.
func ParseDisplayDirection(s string) DisplayDirection {
	if DisplayDirection(s) == DirectionLocalToEur {
		return DirectionLocalToEur
	}
	return DirectionEurToLocal
}

// DisplayConfig is the single-row configuration of the in-shop rate screen.
type DisplayConfig struct {
	Codes     []string         `json:"codes"`
	Direction DisplayDirection `json:"direction"`
}

// ScreenRow is one rendered line of the rate screen.
type ScreenRow struct {
	Code        string   `json:"code"`
	Flag        string   `json:"flag"`
	Name        string   `json:"name"`
	DisplayBuy  *float64 `json:"displayBuy"`
	DisplaySell *float64 `json:"displaySell"`
	PrefixCode  string   `json:"prefixCode"`
	SuffixCode  string   `json:"suffixCode"`
}
