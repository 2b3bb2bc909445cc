// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type secretRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSecretRepository returns a [SecretRepository] backed by the secrets
// table of db.
func NewSecretRepository(db *DB, logger *logger.Logger) SecretRepository {
	return &secretRepository{
		db:     db,
		logger: logger,
	}
}

// Exists reports whether at least one row named name is stored.
func (s *secretRepository) Exists(ctx context.Context, name string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountSecretsByNameQuery(s.db.builder, name)
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.Exists").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	err = s.db.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.Exists").Msg("error counting secrets by name")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// Insert stores a new row. A unique index violation is reported as
// [ErrSecretAlreadyExists].
func (s *secretRepository) Insert(ctx context.Context, name string, ciphertext []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSecretQuery(s.db.builder, name, ciphertext)
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.Insert").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.db.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if s.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*secretRepository.Insert").Msg("secret name is already taken")
			return ErrSecretAlreadyExists
		}
		log.Err(err).Str("func", "*secretRepository.Insert").Msg("error inserting secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get returns the ciphertext of the row named name.
func (s *secretRepository) Get(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSecretQuery(s.db.builder, name)
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.Get").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ciphertext []byte
	err = s.db.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&ciphertext)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSecretNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.Get").Msg("error selecting secret")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ciphertext, nil
}

// Delete removes every row named name and returns the number removed.
func (s *secretRepository) Delete(ctx context.Context, name string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSecretQuery(s.db.builder, name)
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.Delete").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = s.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.Delete").Msg("error deleting secret")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.Delete").Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed, nil
}

// ListNames returns every stored name ordered by name. An empty vault gives
// an empty, non-nil slice.
func (s *secretRepository) ListNames(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSecretNamesQuery(s.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.ListNames").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = s.db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = s.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.ListNames").Msg("error selecting secret names")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0, 16)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			log.Err(err).Str("func", "*secretRepository.ListNames").Msg("failed to scan secret name")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*secretRepository.ListNames").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return names, nil
}
