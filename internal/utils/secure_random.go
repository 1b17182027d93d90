package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeAlphabet omits characters that are easily confused when read aloud or handwritten (0/O, 1/I).
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the length of order and invoice codes.
const CodeLength = 10

// GenerateCode returns a cryptographically random code of length characters drawn from CodeAlphabet.
func GenerateCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	max := big.NewInt(int64(len(CodeAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		b[i] = CodeAlphabet[n.Int64()]
	}
	return string(b), nil
}
