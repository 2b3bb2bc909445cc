package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService is the master key authentication and per-secret encryption
// engine. It never keeps a master key between calls: every operation that
// needs one takes it as an argument.
type VaultService interface {
	// IsInitialized reports whether a master key has been set.
	IsInitialized(ctx context.Context) (bool, error)

	// SetMasterKey creates the verifier record. It fails with
	// [ErrAlreadyInitialized] if one exists and [ErrKeyTooLong] for keys
	// over 32 bytes, in that order.
	SetMasterKey(ctx context.Context, key models.MasterKey) error

	// Authenticate checks key against the stored verifier and returns it
	// unchanged on success.
	Authenticate(ctx context.Context, key models.MasterKey) (models.MasterKey, error)

	// CreateSecret encrypts and stores a secret under name. A nil plaintext
	// asks for a generated password. The stored secret is returned so a
	// generated value can be shown once.
	CreateSecret(ctx context.Context, key models.MasterKey, name string, plaintext *string) (models.Secret, error)

	// ReadSecret decrypts the secret stored under name.
	ReadSecret(ctx context.Context, key models.MasterKey, name string) (models.Secret, error)

	// ListSecretNames returns all stored names. No key is required.
	ListSecretNames(ctx context.Context) ([]string, error)

	// DeleteSecret removes every entry named name and reports how many went
	// away. Deleting a missing name is not an error.
	DeleteSecret(ctx context.Context, name string) (int64, error)

	// GeneratePassword returns a fresh random password without storing it.
	GeneratePassword(ctx context.Context) (string, error)
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// validating.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService // returns a decorated VaultService applying additional behavior
}

// SessionService keeps verified master keys of the desktop daemon in memory
// enclaves, addressed by short-lived bearer tokens.
type SessionService interface {
	// Open authenticates key and starts a session holding it.
	Open(ctx context.Context, key models.MasterKey) (models.SessionToken, error)

	// Resolve validates a bearer token and returns its live session.
	Resolve(ctx context.Context, token string) (models.Session, error)

	// WithKey decrypts the session's key for the duration of fn.
	WithKey(ctx context.Context, sessionID string, fn func(key models.MasterKey) error) error

	// Close destroys a session and its enclave.
	Close(ctx context.Context, sessionID string) error

	// Sweep destroys expired sessions and returns how many were removed.
	Sweep(ctx context.Context) int

	// CloseAll destroys every session.
	CloseAll()
}

// AppInfoService reports build information of the running daemon.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
