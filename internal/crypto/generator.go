package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// PasswordLength is the length of generated passwords: exactly one block.
	PasswordLength = BlockSize

	minPasswordChar = '!' // 33
	maxPasswordChar = '~' // 126

	passwordAlphabetSize = maxPasswordChar - minPasswordChar + 1
	// bytes at or above rejectionLimit are discarded so every character of
	// the alphabet is equally likely.
	rejectionLimit = 256 - 256%passwordAlphabetSize
)

type passwordGenerator struct {
	rand io.Reader
}

// NewPasswordGenerator returns a [PasswordGenerator] that draws from
// crypto/rand and picks every character uniformly from '!'..'~'.
func NewPasswordGenerator() PasswordGenerator {
	return &passwordGenerator{rand: rand.Reader}
}

// Generate implements [PasswordGenerator].
func (g *passwordGenerator) Generate() (string, error) {
	password := make([]byte, 0, PasswordLength)
	buf := make([]byte, 2*PasswordLength)

	for len(password) < PasswordLength {
		if _, err := io.ReadFull(g.rand, buf); err != nil {
			return "", fmt.Errorf("error reading random bytes: %w", err)
		}

		for _, b := range buf {
			if int(b) >= rejectionLimit {
				continue
			}
			password = append(password, byte(minPasswordChar+int(b)%passwordAlphabetSize))
			if len(password) == PasswordLength {
				break
			}
		}
	}

	return string(password), nil
}
