// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the session daemon on behalf of the terminal
// client.
//
// [ServerAdapter] hides the transport; the package ships an HTTP
// implementation over resty. Error responses are mapped back to the service
// sentinels by mapHTTPError, so callers match them with [errors.Is] exactly
// as they would against a local vault.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the daemon API as seen by the terminal client. It holds
// the bearer token of the open session, never the master key.
type ServerAdapter interface {
	// Version returns the daemon build version.
	Version(ctx context.Context) (string, error)

	// Status reports whether the vault has a master key.
	Status(ctx context.Context) (bool, error)

	// SetMasterKey sets the master key of an uninitialized vault.
	SetMasterKey(ctx context.Context, key models.MasterKey) error

	// OpenSession verifies key and keeps the returned bearer token for the
	// calls below.
	OpenSession(ctx context.Context, key models.MasterKey) (models.SessionToken, error)

	// CloseSession logs out and forgets the token. It is a no-op without a
	// session.
	CloseSession(ctx context.Context) error

	// HasSession reports whether a token is held.
	HasSession() bool

	ListSecrets(ctx context.Context) ([]string, error)

	// CreateSecret stores secret under name; a nil secret is generated by
	// the daemon.
	CreateSecret(ctx context.Context, name string, secret *string) (models.Secret, error)

	ReadSecret(ctx context.Context, name string) (models.Secret, error)

	DeleteSecret(ctx context.Context, name string) (int64, error)

	GeneratePassword(ctx context.Context) (string, error)
}
