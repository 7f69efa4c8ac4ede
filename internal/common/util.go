package common

import (
	"math/rand"
	"strings"
)

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used for password buffers read from the terminal. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// RandomDigits returns a string of n decimal digits, each drawn independently
// and uniformly from 0-9. The result is not guaranteed to be unique.
func RandomDigits(n int) string {
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}
	return sb.String()
}
