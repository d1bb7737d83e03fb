// Package cryptox implements the one-way password hashing used by the
// credential store.
//
// The default scheme is an unsalted SHA-256 digest rendered as lowercase hex.
// It matches hashes already persisted by earlier versions of the app and is a
// placeholder, not a production credential hash. The argon2id scheme can be
// selected in the config; hashes of both schemes are verified transparently.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/astroerik-coder/agrostock/internal/common"
	"golang.org/x/crypto/argon2"
)

// Scheme names a password hashing scheme.
type Scheme string

const (
	SchemeSHA256   Scheme = "sha256"
	SchemeArgon2id Scheme = "argon2id"
)

const (
	argon2Prefix  = string(SchemeArgon2id) + "$"
	argon2SaltLen = 16
	argon2KeyLen  = 32
)

// ParseScheme validates a scheme name coming from configuration.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case SchemeSHA256, "":
		return SchemeSHA256, nil
	case SchemeArgon2id:
		return SchemeArgon2id, nil
	}
	return "", fmt.Errorf("unknown password scheme %q", s)
}

// Digest returns the lowercase hex SHA-256 of password.
func Digest(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

// HashPassword hashes password with the given scheme.
func HashPassword(scheme Scheme, password []byte) string {
	if scheme == SchemeArgon2id {
		salt := common.GenerateRandByteArray(argon2SaltLen)
		return argon2Prefix + hex.EncodeToString(salt) + "$" + hex.EncodeToString(deriveKey(password, salt))
	}
	return Digest(password)
}

// VerifyPassword recomputes the hash of password using the scheme encoded in
// stored and compares the two in constant time.
func VerifyPassword(stored string, password []byte) bool {
	if strings.HasPrefix(stored, argon2Prefix) {
		parts := strings.Split(strings.TrimPrefix(stored, argon2Prefix), "$")
		if len(parts) != 2 {
			return false
		}
		salt, err := hex.DecodeString(parts[0])
		if err != nil {
			return false
		}
		want, err := hex.DecodeString(parts[1])
		if err != nil {
			return false
		}
		return subtle.ConstantTimeCompare(want, deriveKey(password, salt)) == 1
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(Digest(password))) == 1
}

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, argon2KeyLen)
}
