// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mobile is the gomobile binding of the vault.
//
// Only gomobile-compatible signatures are exported: strings, bools, errors
// and pointers to exported structs. Every error returned to the host app
// carries the one-line user message as its text. The binding holds no
// vault logic; it forwards to the same service the CLI uses.
package mobile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ErrClosed is returned by every method after Close.
var ErrClosed = errors.New("vault is closed")

// Vault is one open vault in the host app's data directory.
type Vault struct {
	mu     sync.Mutex
	vault  service.VaultService
	closer io.Closer
	logger *logger.Logger
}

// NewVault opens the vault stored in dataDir, creating the directory when
// needed.
func NewVault(dataDir string) (*Vault, error) {
	cfg, err := config.Load(&config.StructuredConfig{Storage: config.Storage{DataDir: dataDir}})
	if err != nil {
		return nil, fmt.Errorf("error loading configs: %w", err)
	}
	if err = cfg.Storage.EnsureDataDir(); err != nil {
		return nil, wrapError(fmt.Errorf("%w: %w", service.ErrStorage, err))
	}

	log := logger.NewFileLogger("vault-mobile", cfg.Storage.LogFile())

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Err(err).Str("func", "mobile.NewVault").Msg("error opening storage")
		return nil, wrapError(fmt.Errorf("%w: %w", service.ErrStorage, err))
	}

	return newVault(service.NewVault(storages, cfg.Crypto, log), storages, log), nil
}

func newVault(vault service.VaultService, closer io.Closer, log *logger.Logger) *Vault {
	return &Vault{vault: vault, closer: closer, logger: log}
}

// IsInitialized reports whether a master key has been set.
func (v *Vault) IsInitialized() (bool, error) {
	var initialized bool
	err := v.do(func(ctx context.Context, vault service.VaultService) error {
		var err error
		initialized, err = vault.IsInitialized(ctx)
		return err
	})
	return initialized, err
}

// SetMasterKey sets the master key once.
func (v *Vault) SetMasterKey(key string) error {
	return v.do(func(ctx context.Context, vault service.VaultService) error {
		return vault.SetMasterKey(ctx, models.MasterKey(key))
	})
}

// IsMasterKeyCorrect reports whether key unlocks the vault. Failures other
// than a wrong key are logged and reported as false.
func (v *Vault) IsMasterKeyCorrect(key string) bool {
	err := v.do(func(ctx context.Context, vault service.VaultService) error {
		_, err := vault.Authenticate(ctx, models.MasterKey(key))
		return err
	})
	if err != nil && !errors.Is(err, service.ErrIncorrectKey) {
		v.logger.Err(err).Str("func", "*Vault.IsMasterKeyCorrect").Msg("error checking master key")
	}
	return err == nil
}

// GetPasswordList returns the stored names ordered by name.
func (v *Vault) GetPasswordList() (*StringList, error) {
	var names []string
	err := v.do(func(ctx context.Context, vault service.VaultService) error {
		var err error
		names, err = vault.ListSecretNames(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &StringList{items: names}, nil
}

// GeneratePassword returns a random password without saving it.
func (v *Vault) GeneratePassword() (string, error) {
	var password string
	err := v.do(func(ctx context.Context, vault service.VaultService) error {
		var err error
		password, err = vault.GeneratePassword(ctx)
		return err
	})
	return password, err
}

// SavePassword stores password under name. An empty password is replaced
// by a generated one, which is returned.
func (v *Vault) SavePassword(key, name, password string) (string, error) {
	var plaintext *string
	if password != "" {
		plaintext = &password
	}

	var saved models.Secret
	err := v.do(func(ctx context.Context, vault service.VaultService) error {
		var err error
		saved, err = vault.CreateSecret(ctx, models.MasterKey(key), name, plaintext)
		return err
	})
	return saved.Value, err
}

// GetPassword decrypts the password named name.
func (v *Vault) GetPassword(key, name string) (string, error) {
	var secret models.Secret
	err := v.do(func(ctx context.Context, vault service.VaultService) error {
		var err error
		secret, err = vault.ReadSecret(ctx, models.MasterKey(key), name)
		return err
	})
	return secret.Value, err
}

// DeletePassword removes every password named name and returns how many
// were removed.
func (v *Vault) DeletePassword(name string) (int64, error) {
	var removed int64
	err := v.do(func(ctx context.Context, vault service.VaultService) error {
		var err error
		removed, err = vault.DeleteSecret(ctx, name)
		return err
	})
	return removed, err
}

// Close releases storage. Further calls fail with ErrClosed.
func (v *Vault) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.vault == nil {
		return nil
	}
	v.vault = nil

	if v.closer == nil {
		return nil
	}
	if err := v.closer.Close(); err != nil {
		v.logger.Err(err).Str("func", "*Vault.Close").Msg("error closing storage")
		return wrapError(fmt.Errorf("%w: %w", service.ErrStorage, err))
	}
	return nil
}

// do serializes calls from the host app's threads.
func (v *Vault) do(fn func(ctx context.Context, vault service.VaultService) error) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.vault == nil {
		return ErrClosed
	}

	if err := fn(context.Background(), v.vault); err != nil {
		return wrapError(err)
	}
	return nil
}
