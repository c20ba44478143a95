package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const otpDigits = 6

// RandomOTPGenerator draws codes from crypto/rand.
type RandomOTPGenerator struct{}

func NewRandomOTPGenerator() RandomOTPGenerator {
	return RandomOTPGenerator{}
}

func (RandomOTPGenerator) Generate() (string, error) {
	max := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generating otp: %w", err)
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
