package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// Services bundles the business layer shared by every front end.
type Services struct {
	VaultService   VaultService
	SessionService SessionService
	AppInfoService AppInfoService
}

// NewServices wires the vault over storages. The session and app info
// services are only needed by the daemon; use [NewVault] for front ends that
// hold the key themselves.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	vault := NewVault(storages, cfg.Crypto, logger)

	sessions, err := NewSessionService(vault, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating session service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		VaultService:   vault,
		SessionService: sessions,
		AppInfoService: appInfo,
	}, nil
}

// NewVault returns the validated vault service with production primitives.
func NewVault(storages *store.Storages, cfg config.Crypto, logger *logger.Logger) VaultService {
	hasher := crypto.NewKeyHasher(crypto.Argon2Params{
		Memory:      cfg.Memory,
		Iterations:  cfg.Iterations,
		Parallelism: cfg.Parallelism,
	})

	core := NewVaultService(
		storages.SecretRepository,
		storages.MasterKeyStorage,
		hasher,
		crypto.NewBlockCipher(),
		crypto.NewPasswordGenerator(),
		logger,
	)

	return NewVaultValidationService().Wrap(core)
}
