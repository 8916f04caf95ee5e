package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
)

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// RandomHex returns n random bytes encoded as lowercase hex.
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GenerateShareToken returns an unguessable 32-character gallery share token.
func GenerateShareToken() (string, error) {
	return RandomHex(16)
}

// GenerateResetToken returns a single-use password reset token.
func GenerateResetToken() (string, error) {
	return RandomHex(32)
}

// GenerateDownloadPin returns a random 4-digit numeric PIN, zero-padded.
func GenerateDownloadPin() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// ValidDownloadPin reports whether pin is exactly four ASCII digits.
func ValidDownloadPin(pin string) bool {
	return pinPattern.MatchString(pin)
}

// PinMatches compares a submitted PIN against the stored one without leaking
// timing information.
func PinMatches(stored, submitted string) bool {
	if stored == "" || submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}
