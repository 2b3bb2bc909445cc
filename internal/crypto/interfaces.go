// Package crypto holds the vault's cryptographic primitives: the master key
// verifier hash, the single-block secret cipher, key and block padding, and
// the password generator. It knows nothing about storage or front ends.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyHasher turns a master key into a persisted verifier and checks candidate
// keys against it.
type KeyHasher interface {
	// Hash returns a self-describing verifier (algorithm, version, cost
	// parameters, salt and digest in PHC string form). The salt is fresh on
	// every call, so hashing the same key twice yields different verifiers.
	Hash(masterKey string) (string, error)

	// Verify recomputes the digest of candidate with the salt and cost stored
	// in verifier and compares the digests in constant time.
	// It returns (false, nil) for a wrong key and an error wrapping
	// ErrMalformedVerifier when verifier cannot be parsed.
	Verify(verifier, candidate string) (bool, error)
}

// BlockCipher encrypts and decrypts exactly one block with no IV, no padding
// and no chaining.
//
// One stored row is one block and a secret never exceeds the block size; the
// format depends on that, so no mode of operation may be layered on top.
// Decrypting with the wrong key returns garbage, never an error: there is no
// integrity tag.
type BlockCipher interface {
	Encrypt(key Key, plaintext Block) Block
	Decrypt(key Key, ciphertext Block) Block
}

// PasswordGenerator produces random passwords of exactly one block.
type PasswordGenerator interface {
	Generate() (string, error)
}
