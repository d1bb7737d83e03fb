package common

import "crypto/rand"

// GenerateRandByteArray returns size random bytes. crypto/rand never fails on
// supported platforms, so the error is not surfaced.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	_, _ = rand.Read(b)
	return b
}

// WipeByteArray zeroes b in place. Used for passwords read from the terminal.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
