// Package store implements the vault's persistence: the secrets table over
// SQLite or PostgreSQL and the master key verifier record on disk.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SecretRepository is the persistent mapping from secret name to ciphertext.
//
// The repository does not make Exists followed by Insert atomic; callers
// serialise that sequence. The unique index on name turns a lost race into
// [ErrSecretAlreadyExists] from Insert.
type SecretRepository interface {
	// Exists reports whether an entry named name is stored.
	Exists(ctx context.Context, name string) (bool, error)

	// Insert stores a new entry. Returns [ErrSecretAlreadyExists] when the
	// name is taken.
	Insert(ctx context.Context, name string, ciphertext []byte) error

	// Get returns the ciphertext stored under name or [ErrSecretNotFound].
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes every entry named name and returns how many rows went
	// away. Deleting a missing name removes zero rows and is not an error.
	Delete(ctx context.Context, name string) (int64, error)

	// ListNames returns all stored names ordered by name.
	ListNames(ctx context.Context) ([]string, error)
}

// MasterKeyStorage persists the single master key verifier of a vault.
type MasterKeyStorage interface {
	// Exists reports whether a verifier has been saved.
	Exists(ctx context.Context) (bool, error)

	// Save writes the verifier exactly once. Returns
	// [ErrMasterKeyAlreadyExists] if a record is already present.
	Save(ctx context.Context, verifier string) error

	// Load returns the raw verifier bytes or [ErrMasterKeyNotFound].
	Load(ctx context.Context) ([]byte, error)
}

// ErrorClassificator inspects driver errors for the repository.
type ErrorClassificator interface {
	// Classify tells whether a failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports a unique constraint failure.
	IsUniqueViolation(err error) bool
}
