package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSecretAlreadyExists is returned when an insert fails because an
	// entry with the same name is already stored.
	ErrSecretAlreadyExists = errors.New("secret already exists")

	// ErrSecretNotFound is returned when no entry matches the requested name.
	ErrSecretNotFound = errors.New("secret was not found")

	// ErrMasterKeyAlreadyExists is returned when a verifier record is already
	// present and a second one is being written.
	ErrMasterKeyAlreadyExists = errors.New("master key record already exists")

	// ErrMasterKeyNotFound is returned when the verifier record is absent,
	// i.e. the vault has not been initialised.
	ErrMasterKeyNotFound = errors.New("master key record was not found")
)

// Low-level storage operation errors. These are returned (or wrapped) by
// repository methods when a SQL or file operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning values during multi-row
	// iteration fails.
	ErrScanningRows = errors.New("failed to scan secret rows")

	// ErrReadingMasterKey is returned when the verifier file exists but
	// cannot be read.
	ErrReadingMasterKey = errors.New("failed to read master key record")

	// ErrWritingMasterKey is returned when the verifier file cannot be
	// created or written.
	ErrWritingMasterKey = errors.New("failed to write master key record")

	// ErrInvalidCiphertext is returned when a stored blob is not exactly one
	// cipher block long.
	ErrInvalidCiphertext = errors.New("stored secret has an invalid length")
)
