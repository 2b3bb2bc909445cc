// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. Server and adapter addresses are checked by the binaries that
// use them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DataDir == "" || cfg.Storage.MasterKeyFile == "" || cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Crypto.Iterations < 1 || cfg.Crypto.Parallelism < 1 ||
		cfg.Crypto.Memory < 8*uint32(cfg.Crypto.Parallelism) {
		return fmt.Errorf("%w: memory must be at least 8 KiB per lane", ErrInvalidCryptoConfigs)
	}
	if cfg.Crypto.Memory > crypto.MaxMemoryCost || cfg.Crypto.Iterations > crypto.MaxTimeCost {
		return fmt.Errorf("%w: argon2 costs above %d KiB or %d iterations", ErrInvalidCryptoConfigs,
			crypto.MaxMemoryCost, crypto.MaxTimeCost)
	}

	if cfg.App.TokenDuration < 0 || cfg.Workers.SessionSweepInterval < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

// ValidateServer checks the settings the session daemon depends on.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenDuration == 0 || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.SessionSweepInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ValidateAdapter checks the settings the terminal client depends on.
func (cfg *StructuredConfig) ValidateAdapter() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
