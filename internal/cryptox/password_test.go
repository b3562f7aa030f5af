package cryptox

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Format(t *testing.T) {
	h, err := HashPassword("secreto123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(h, "$argon2id$v=19$m=65536,t=1,p=4$"))
	assert.Equal(t, FormatArgon2id, DetectFormat(h))
	assert.False(t, NeedsRehash(h))

	// salted: same password gives a different string
	h2, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, h, h2)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestVerifyPassword_Argon(t *testing.T) {
	h, err := HashPassword("correcta")
	require.NoError(t, err)

	ok, err := VerifyPassword(h, "correcta")
	require.NoError(t, err)
	assert.True(t, ok)

	for _, other := range []string{"incorrecta", "", "Correcta", "correcta "} {
		ok, err := VerifyPassword(h, other)
		require.NoError(t, err)
		assert.False(t, ok, "password %q must not match", other)
	}
}

func TestVerifyPassword_Bcrypt(t *testing.T) {
	raw, err := bcrypt.GenerateFromPassword([]byte("vieja"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := string(raw)

	assert.Equal(t, FormatBcrypt, DetectFormat(stored))
	assert.True(t, NeedsRehash(stored))

	ok, err := VerifyPassword(stored, "vieja")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(stored, "nueva")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_Plain(t *testing.T) {
	assert.Equal(t, FormatPlain, DetectFormat("hunter2"))
	assert.True(t, NeedsRehash("hunter2"))

	ok, err := VerifyPassword("hunter2", "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("hunter2", "hunter3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"too few parts", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA"},
		{"bad version", "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$a2V5"},
		{"bad params", "$argon2id$v=19$x$c2FsdA$a2V5"},
		{"bad salt", "$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5"},
		{"empty key", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$"},
		{"zero rounds", "$argon2id$v=19$m=65536,t=0,p=4$c2FsdA$a2V5"},
		{"too many rounds", "$argon2id$v=19$m=65536,t=1000000,p=4$c2FsdA$a2V5"},
		{"zero threads", "$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$a2V5"},
		{"huge memory", "$argon2id$v=19$m=4294967295,t=1,p=4$c2FsdA$a2V5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword(tt.stored, "x")
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrMalformedHash)
			assert.True(t, NeedsRehash(tt.stored))
		})
	}
}

func TestNeedsRehash_WeakerParams(t *testing.T) {
	assert.True(t, NeedsRehash("$argon2id$v=19$m=32768,t=1,p=4$c2FsdHNhbHQ$a2V5a2V5"))
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "argon2id", FormatArgon2id.String())
	assert.Equal(t, "bcrypt", FormatBcrypt.String())
	assert.Equal(t, "plain", FormatPlain.String())
}
