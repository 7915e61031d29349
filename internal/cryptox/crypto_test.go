package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt-16byt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	assert.Len(t, key1, KeySize)
	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
}

func TestDeriveKey_DifferentInputs(t *testing.T) {
	password := []byte("secret-password")
	salt1 := []byte("salt-1")
	salt2 := []byte("salt-2")

	assert.NotEqual(t, DeriveKey(password, salt1), DeriveKey(password, salt2))
	assert.NotEqual(t, DeriveKey(password, salt1), DeriveKey([]byte("other"), salt1))
}

func TestUserSalt(t *testing.T) {
	a := UserSalt("ctx", "alice")

	assert.Len(t, a, SaltSize)
	assert.Equal(t, a, UserSalt("ctx", "alice"))
	assert.NotEqual(t, a, UserSalt("ctx", "bob"))
	assert.NotEqual(t, a, UserSalt("other", "alice"))
	// the separator keeps "ab"+"c" and "a"+"bc" apart
	assert.NotEqual(t, UserSalt("ab", "c"), UserSalt("a", "bc"))
}
