// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultService struct {
	secrets    store.SecretRepository
	masterKeys store.MasterKeyStorage

	hasher    crypto.KeyHasher
	cipher    crypto.BlockCipher
	generator crypto.PasswordGenerator

	// mu serialises SetMasterKey and the check-then-insert of CreateSecret.
	mu sync.Mutex

	logger *logger.Logger
}

// NewVaultService builds the core vault over the given storage and
// primitives.
func NewVaultService(
	secrets store.SecretRepository,
	masterKeys store.MasterKeyStorage,
	hasher crypto.KeyHasher,
	cipher crypto.BlockCipher,
	generator crypto.PasswordGenerator,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		secrets:    secrets,
		masterKeys: masterKeys,
		hasher:     hasher,
		cipher:     cipher,
		generator:  generator,
		logger:     logger,
	}
}

func (s *vaultService) IsInitialized(ctx context.Context) (bool, error) {
	exists, err := s.masterKeys.Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return exists, nil
}

func (s *vaultService) SetMasterKey(ctx context.Context, key models.MasterKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.masterKeys.Exists(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if exists {
		return ErrAlreadyInitialized
	}

	if key.Len() > crypto.KeySize {
		return ErrKeyTooLong
	}

	verifier, err := s.hasher.Hash(key.Reveal())
	if err != nil {
		s.logger.Err(err).Str("func", "*vaultService.SetMasterKey").Msg("error hashing master key")
		return fmt.Errorf("error hashing master key: %w", err)
	}

	if err = s.masterKeys.Save(ctx, verifier); err != nil {
		if errors.Is(err, store.ErrMasterKeyAlreadyExists) {
			return ErrAlreadyInitialized
		}
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.logger.Info().Str("func", "*vaultService.SetMasterKey").Msg("master key set")
	return nil
}

func (s *vaultService) Authenticate(ctx context.Context, key models.MasterKey) (models.MasterKey, error) {
	record, err := s.masterKeys.Load(ctx)
	if errors.Is(err, store.ErrMasterKeyNotFound) {
		return "", ErrUninitialized
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if !utf8.Valid(record) {
		s.logger.Error().Str("func", "*vaultService.Authenticate").Msg("master key record is not valid UTF-8")
		return "", fmt.Errorf("%w: %w: master key record", ErrIncorrectKey, ErrEncoding)
	}

	ok, err := s.hasher.Verify(string(record), key.Reveal())
	if err != nil {
		// the caller sees a failed login and can still detect corruption
		s.logger.Err(err).Str("func", "*vaultService.Authenticate").Msg("master key record is corrupted")
		return "", fmt.Errorf("%w: %w", ErrIncorrectKey, err)
	}
	if !ok {
		return "", ErrIncorrectKey
	}

	return key, nil
}

func (s *vaultService) CreateSecret(ctx context.Context, key models.MasterKey, name string, plaintext *string) (models.Secret, error) {
	if _, err := s.Authenticate(ctx, key); err != nil {
		return models.Secret{}, err
	}

	secret := models.Secret{Name: name}
	if plaintext == nil {
		generated, err := s.generator.Generate()
		if err != nil {
			return models.Secret{}, fmt.Errorf("error generating password: %w", err)
		}
		secret.Value = generated
		secret.Generated = true
	} else {
		secret.Value = *plaintext
	}
	secret.Raw = []byte(secret.Value)

	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.secrets.Exists(ctx, name)
	if err != nil {
		return models.Secret{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if exists {
		return models.Secret{}, ErrNameAlreadyExists
	}

	if len(secret.Raw) > crypto.BlockSize {
		return models.Secret{}, ErrSecretTooLong
	}

	ciphertext, err := s.seal(key, secret.Raw)
	if err != nil {
		return models.Secret{}, err
	}

	if err = s.secrets.Insert(ctx, name, ciphertext[:]); err != nil {
		if errors.Is(err, store.ErrSecretAlreadyExists) {
			return models.Secret{}, ErrNameAlreadyExists
		}
		return models.Secret{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.logger.Info().Str("func", "*vaultService.CreateSecret").Bool("generated", secret.Generated).Msg("secret stored")
	return secret, nil
}

func (s *vaultService) ReadSecret(ctx context.Context, key models.MasterKey, name string) (models.Secret, error) {
	if _, err := s.Authenticate(ctx, key); err != nil {
		return models.Secret{}, err
	}

	stored, err := s.secrets.Get(ctx, name)
	if errors.Is(err, store.ErrSecretNotFound) {
		return models.Secret{}, &SecretNotFoundError{Name: name}
	}
	if err != nil {
		return models.Secret{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	ciphertext, ok := crypto.BlockFromBytes(stored)
	if !ok {
		s.logger.Error().Str("func", "*vaultService.ReadSecret").Int("length", len(stored)).Msg("stored secret is not one block")
		return models.Secret{}, fmt.Errorf("%w: %w", ErrStorage, store.ErrInvalidCiphertext)
	}

	raw, err := s.open(key, ciphertext)
	if err != nil {
		return models.Secret{}, err
	}

	return decodeSecret(name, raw), nil
}

func (s *vaultService) ListSecretNames(ctx context.Context) ([]string, error) {
	names, err := s.secrets.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return names, nil
}

func (s *vaultService) DeleteSecret(ctx context.Context, name string) (int64, error) {
	removed, err := s.secrets.Delete(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.logger.Info().Str("func", "*vaultService.DeleteSecret").Int64("removed", removed).Msg("secret deleted")
	return removed, nil
}

func (s *vaultService) GeneratePassword(ctx context.Context) (string, error) {
	password, err := s.generator.Generate()
	if err != nil {
		return "", fmt.Errorf("error generating password: %w", err)
	}
	return password, nil
}

// seal pads key and plaintext and encrypts one block. Padded copies are
// wiped before returning.
func (s *vaultService) seal(key models.MasterKey, plaintext []byte) (crypto.Block, error) {
	padded, err := crypto.PadKey(key.Reveal())
	if err != nil {
		return crypto.Block{}, ErrKeyTooLong
	}
	defer padded.Wipe()

	block, err := crypto.PadBlock(plaintext)
	if err != nil {
		return crypto.Block{}, ErrSecretTooLong
	}
	defer clear(block[:])

	return s.cipher.Encrypt(padded, block), nil
}

// open decrypts one block and strips the padding.
func (s *vaultService) open(key models.MasterKey, ciphertext crypto.Block) ([]byte, error) {
	padded, err := crypto.PadKey(key.Reveal())
	if err != nil {
		return nil, ErrKeyTooLong
	}
	defer padded.Wipe()

	block := s.cipher.Decrypt(padded, ciphertext)
	raw := append([]byte(nil), crypto.Unpad(block)...)
	clear(block[:])

	return raw, nil
}

// decodeSecret decodes raw as UTF-8, replacing every invalid byte with
// U+FFFD when needed.
func decodeSecret(name string, raw []byte) models.Secret {
	secret := models.Secret{Name: name, Raw: raw}
	if utf8.Valid(raw) {
		secret.Value = string(raw)
		return secret
	}

	secret.Value = string([]rune(string(raw)))
	secret.Lossy = true
	return secret
}
