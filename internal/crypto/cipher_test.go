package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FIPS-197 appendix C.3 (AES-256).
func TestBlockCipher_KnownAnswer(t *testing.T) {
	var key Key
	var plaintext Block
	keyBytes, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	plainBytes, _ := hex.DecodeString("00112233445566778899aabbccddeeff")
	copy(key[:], keyBytes)
	copy(plaintext[:], plainBytes)

	c := NewBlockCipher()
	ciphertext := c.Encrypt(key, plaintext)

	assert.Equal(t, "8ea2b7ca516745bfeafc49904b496089", hex.EncodeToString(ciphertext[:]))
	assert.Equal(t, plaintext, c.Decrypt(key, ciphertext))
}

func TestBlockCipher_RoundTrip(t *testing.T) {
	c := NewBlockCipher()

	tests := []struct {
		key       string
		plaintext string
	}{
		{"hunter2", "p@ssw0rd!"},
		{"", ""},
		{"a", "0123456789abcdef"},
		{"0123456789abcdef0123456789abcdef", "x"},
		{"ключ", "пароль"},
	}

	for _, tt := range tests {
		key, err := PadKey(tt.key)
		require.NoError(t, err)
		block, err := PadBlock([]byte(tt.plaintext))
		require.NoError(t, err)

		got := c.Decrypt(key, c.Encrypt(key, block))
		assert.Equal(t, block, got)
		assert.Equal(t, tt.plaintext, string(Unpad(got)))
	}
}

func TestBlockCipher_WrongKeyYieldsGarbage(t *testing.T) {
	c := NewBlockCipher()

	k1, err := PadKey("hunter2")
	require.NoError(t, err)
	k2, err := PadKey("hunter3")
	require.NoError(t, err)
	block, err := PadBlock([]byte("p@ssw0rd!"))
	require.NoError(t, err)

	ciphertext := c.Encrypt(k1, block)
	assert.NotEqual(t, block, ciphertext)

	garbage := c.Decrypt(k2, ciphertext)
	assert.NotEqual(t, block, garbage)
	// deterministic: no IV
	assert.Equal(t, garbage, c.Decrypt(k2, ciphertext))
	assert.Equal(t, ciphertext, c.Encrypt(k1, block))
}
