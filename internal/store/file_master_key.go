package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// masterKeyFileStorage keeps the verifier in a single file. The file is
// created exclusively, so a second Save never overwrites the first record.
type masterKeyFileStorage struct {
	path   string
	logger *logger.Logger
}

// NewMasterKeyFileStorage returns a [MasterKeyStorage] over the file at path.
func NewMasterKeyFileStorage(path string, logger *logger.Logger) MasterKeyStorage {
	return &masterKeyFileStorage{
		path:   path,
		logger: logger,
	}
}

// Exists reports whether the verifier file is present.
func (m *masterKeyFileStorage) Exists(ctx context.Context) (bool, error) {
	_, err := os.Stat(m.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	logger.FromContext(ctx).Err(err).Str("func", "*masterKeyFileStorage.Exists").Msg("error checking master key file")
	return false, fmt.Errorf("%w: %w", ErrReadingMasterKey, err)
}

// Save writes verifier to a new file with mode 0600.
func (m *masterKeyFileStorage) Save(ctx context.Context, verifier string) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		log.Err(err).Str("func", "*masterKeyFileStorage.Save").Msg("error creating data directory")
		return fmt.Errorf("%w: %w", ErrWritingMasterKey, err)
	}

	f, err := os.OpenFile(m.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return ErrMasterKeyAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*masterKeyFileStorage.Save").Msg("error creating master key file")
		return fmt.Errorf("%w: %w", ErrWritingMasterKey, err)
	}

	_, err = f.WriteString(verifier)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		m.discardPartialRecord(log)
		log.Err(err).Str("func", "*masterKeyFileStorage.Save").Msg("error writing master key file")
		return fmt.Errorf("%w: %w", ErrWritingMasterKey, err)
	}

	log.Debug().Str("func", "*masterKeyFileStorage.Save").Msg("master key record saved")
	return nil
}

// discardPartialRecord removes a record whose write failed. A half-written
// record would lock the vault forever, so a failed removal is logged with
// the path the user has to delete by hand.
func (m *masterKeyFileStorage) discardPartialRecord(log *logger.Logger) {
	if err := os.Remove(m.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Err(err).Str("func", "*masterKeyFileStorage.Save").Str("path", m.path).
			Msg("error removing partially written master key file")
	}
}

// Load returns the raw file contents.
func (m *masterKeyFileStorage) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMasterKeyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*masterKeyFileStorage.Load").Msg("error reading master key file")
		return nil, fmt.Errorf("%w: %w", ErrReadingMasterKey, err)
	}

	return data, nil
}
