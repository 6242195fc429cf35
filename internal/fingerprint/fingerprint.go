// Package fingerprint turns raw caller numbers into the opaque key sent to
// the reputation service.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint is the lowercase hex SHA-256 of a digits-only number.
type Fingerprint string

// Size is the length of every Fingerprint in characters.
const Size = sha256.Size * 2

var empty = Generate("")

// Generate strips every non-digit from raw and hashes the rest.
func Generate(raw string) Fingerprint {
	sum := sha256.Sum256([]byte(Normalize(raw)))
	return Fingerprint(hex.EncodeToString(sum[:]))
}

// Normalize keeps ASCII digits only.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unknown reports whether f was derived from a number with no digits.
func (f Fingerprint) Unknown() bool {
	return f == empty
}

func (f Fingerprint) String() string {
	return string(f)
}

// Short returns a prefix suitable for logs.
func (f Fingerprint) Short() string {
	if len(f) <= 8 {
		return string(f)
	}
	return string(f[:8])
}
