package crypto

import (
	"bytes"
	"crypto/aes"
)

const (
	// KeySize is the AES-256 key size and the maximum master key length in bytes.
	KeySize = 32

	// BlockSize is the AES block size and the maximum secret length in bytes.
	BlockSize = aes.BlockSize

	// keyPadding right-pads master keys. Changing it makes every stored
	// ciphertext unrecoverable.
	keyPadding = ' '

	// blockPadding right-pads plaintexts shorter than a block.
	blockPadding = ' '
)

// Key is the padded master key used as AES-256 key material.
type Key [KeySize]byte

// Block is one cipher block: a padded plaintext or a stored ciphertext.
type Block [BlockSize]byte

// PadKey right-pads masterKey with spaces to [KeySize] bytes.
func PadKey(masterKey string) (Key, error) {
	var key Key
	if len(masterKey) > KeySize {
		return key, ErrKeyTooLong
	}

	n := copy(key[:], masterKey)
	for i := n; i < KeySize; i++ {
		key[i] = keyPadding
	}

	return key, nil
}

// Wipe zeroes the key in place.
func (k *Key) Wipe() {
	clear(k[:])
}

// PadBlock right-pads plaintext with spaces to [BlockSize] bytes.
func PadBlock(plaintext []byte) (Block, error) {
	var block Block
	if len(plaintext) > BlockSize {
		return block, ErrBlockTooLong
	}

	n := copy(block[:], plaintext)
	for i := n; i < BlockSize; i++ {
		block[i] = blockPadding
	}

	return block, nil
}

// BlockFromBytes copies a stored ciphertext into a Block. ok is false when b
// is not exactly one block long.
func BlockFromBytes(b []byte) (block Block, ok bool) {
	if len(b) != BlockSize {
		return block, false
	}
	copy(block[:], b)
	return block, true
}

// Unpad strips trailing spaces and NUL bytes. NUL covers blocks that were
// zero-padded instead of space-padded.
func Unpad(block Block) []byte {
	return bytes.TrimRight(block[:], " \x00")
}
