package portfolios

import (
	"crypto/rand"

	"github.com/google/uuid"
)

// codeAlphabet is the 64-character URL-safe alphabet used for public codes.
// With 7 characters that is 64^7 (~4.4e12) values; collision probability is
// accepted as negligible and no collision check is performed.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

// CodeLength is the fixed length of a public portfolio code.
const CodeLength = 7

// NewCode returns a fresh random public code.
func NewCode() string {
	var buf [CodeLength]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// uuid-derived prefix rather than panicking mid-request.
		return uuid.NewString()[:CodeLength]
	}
	for i, b := range buf {
		// 64 characters, so masking keeps the distribution uniform.
		buf[i] = codeAlphabet[b&63]
	}
	return string(buf[:])
}
