package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// Sentinel errors returned by the vault and session services. Callers should
// use [errors.Is] to match against these values; transports map them to
// status codes and user messages.
var (
	// ErrAlreadyInitialized is returned by SetMasterKey when a verifier
	// record already exists.
	ErrAlreadyInitialized = errors.New("master key is already set")

	// ErrUninitialized is returned when an operation needs the verifier but
	// no master key has been set yet.
	ErrUninitialized = errors.New("master key is not set")

	// ErrKeyTooLong is returned for master keys longer than 32 bytes.
	ErrKeyTooLong = errors.New("master key is too long")

	// ErrIncorrectKey is returned when the master key does not match the
	// stored verifier.
	ErrIncorrectKey = errors.New("master key is incorrect")

	// ErrMalformedVerifier is returned together with [ErrIncorrectKey] when
	// the stored verifier cannot be parsed.
	ErrMalformedVerifier = crypto.ErrMalformedVerifier

	// ErrNameAlreadyExists is returned when a secret with the requested
	// name is already stored.
	ErrNameAlreadyExists = errors.New("secret name already exists")

	// ErrSecretNotFound is matched by [SecretNotFoundError].
	ErrSecretNotFound = errors.New("secret not found")

	// ErrSecretTooLong is returned for explicit secrets over 16 bytes.
	ErrSecretTooLong = errors.New("secret is too long")

	// ErrStorage wraps failures of the underlying storage.
	ErrStorage = errors.New("storage failure")

	// ErrEncoding is returned when stored text is not valid UTF-8.
	ErrEncoding = errors.New("invalid UTF-8 encoding")

	// ErrInvalidSecretName is returned when a name fails validation.
	ErrInvalidSecretName = errors.New("invalid secret name")

	// ErrSessionNotFound is returned for unknown or closed sessions.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned for sessions past their deadline.
	ErrSessionExpired = errors.New("session expired")

	// ErrVersionIsNotSpecified is returned when the app version is empty.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// SecretNotFoundError names the secret that was looked up. It matches
// [ErrSecretNotFound] with [errors.Is].
type SecretNotFoundError struct {
	Name string
}

func (e *SecretNotFoundError) Error() string {
	return fmt.Sprintf("secret %q not found", e.Name)
}

// Is reports whether target is [ErrSecretNotFound].
func (e *SecretNotFoundError) Is(target error) bool {
	return target == ErrSecretNotFound
}
