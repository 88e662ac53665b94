// Package secret generates random credentials for provisioned services.
package secret

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// alphabet deliberately omits characters that need quoting in env files
// and shell-assembled SQL statements.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultPasswordLength is used when callers have no stronger requirement.
const DefaultPasswordLength = 32

// GeneratePassword returns a random password of the given length drawn
// from a shell-safe alphanumeric alphabet.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", length)
	}

	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}
