package models

// DisplayConfig is the single row of the display_config table. Codes is a JSONB array.
type DisplayConfig struct {
	Codes     []string `db:"codes"`
	Direction string   `db:"direction"`
}
