package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName trims a person's name, collapses inner whitespace and title-cases it.
// Hyphenated parts are capitalised independently ("jean-luc" -> "Jean-Luc").
func NormalizeName(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	if s == "" {
		return ""
	}
	return cases.Title(language.French).String(s)
}
