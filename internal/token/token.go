package token

import (
	"crypto/rand"
	"encoding/base64"
)

// 32 random bytes = 256 bits of entropy. Enough that tokens are never
// checked for uniqueness before insert: the primary key is the backstop.
const rawLen = 32

// New returns a fresh URL-safe capability token.
func New() (string, error) {
	buf := make([]byte, rawLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
