package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Jean-Luc Picard", NormalizeName("  jean-luc   PICARD "))
	assert.Equal(t, "Élodie", NormalizeName("élodie"))
	assert.Equal(t, "", NormalizeName("   "))
}
