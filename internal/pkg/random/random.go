package random

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// NumericCode returns n random decimal digits. Used for generated
// passwords and admin elevation codes.
func NumericCode(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}

// Hex returns n random bytes hex-encoded (2n characters). Used for
// temporary passwords on reset.
func Hex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
