// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"math/big"
)

func GenerateRandomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// GeneratePaymentRef creates the demo payment reference attached to a new
// order. There is no real payment processor behind it.
func GeneratePaymentRef() (string, error) {
	randomPart, err := GenerateRandomString(24)
	if err != nil {
		return "", err
	}
	return "demo_" + randomPart, nil
}
