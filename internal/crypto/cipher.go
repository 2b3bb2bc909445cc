package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// aesBlockCipher is the AES-256 single-block [BlockCipher].
type aesBlockCipher struct{}

// NewBlockCipher returns the AES-256 single-block [BlockCipher].
func NewBlockCipher() BlockCipher {
	return aesBlockCipher{}
}

// Encrypt implements [BlockCipher].
func (aesBlockCipher) Encrypt(key Key, plaintext Block) Block {
	var ciphertext Block
	newAES(key).Encrypt(ciphertext[:], plaintext[:])
	return ciphertext
}

// Decrypt implements [BlockCipher].
func (aesBlockCipher) Decrypt(key Key, ciphertext Block) Block {
	var plaintext Block
	newAES(key).Decrypt(plaintext[:], ciphertext[:])
	return plaintext
}

// newAES panics because a Key always has a valid AES-256 length; an error
// here is a programming defect, not a runtime condition.
func newAES(key Key) cipher.Block {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic(fmt.Sprintf("crypto: aes.NewCipher with a %d-byte key: %v", len(key), err))
	}
	return block
}
