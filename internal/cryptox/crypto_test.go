package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest_KnownVector(t *testing.T) {
	assert.Equal(t,
		"5b11618c2e44027877d0cd0921ed166b9f176f50587fc91e7534dd2946db77d6",
		Digest([]byte("secret1")))
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Digest(nil))
	assert.Equal(t,
		"2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b",
		Digest([]byte("secret")))
}

func TestHashPassword_SHA256IsDeterministic(t *testing.T) {
	h1 := HashPassword(SchemeSHA256, []byte("secret1"))
	h2 := HashPassword(SchemeSHA256, []byte("secret1"))

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, HashPassword(SchemeSHA256, []byte("wrong")))
}

func TestHashPassword_Argon2idIsSalted(t *testing.T) {
	h1 := HashPassword(SchemeArgon2id, []byte("secret1"))
	h2 := HashPassword(SchemeArgon2id, []byte("secret1"))

	assert.True(t, strings.HasPrefix(h1, "argon2id$"))
	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword(h1, []byte("secret1")))
	assert.True(t, VerifyPassword(h2, []byte("secret1")))
	assert.False(t, VerifyPassword(h1, []byte("secret2")))
}

func TestVerifyPassword_SHA256(t *testing.T) {
	stored := HashPassword(SchemeSHA256, []byte("secret1"))

	assert.True(t, VerifyPassword(stored, []byte("secret1")))
	assert.False(t, VerifyPassword(stored, []byte("wrong")))
	assert.False(t, VerifyPassword(strings.ToUpper(stored), []byte("secret1")))
}

func TestVerifyPassword_MalformedArgon2(t *testing.T) {
	for _, stored := range []string{"argon2id$", "argon2id$zz$00", "argon2id$00$zz", "argon2id$a$b$c"} {
		assert.False(t, VerifyPassword(stored, []byte("x")), stored)
	}
}

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme("")
	require.NoError(t, err)
	assert.Equal(t, SchemeSHA256, s)

	s, err = ParseScheme(" Argon2id ")
	require.NoError(t, err)
	assert.Equal(t, SchemeArgon2id, s)

	_, err = ParseScheme("md5")
	assert.Error(t, err)
}
