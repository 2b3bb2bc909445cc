package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

const (
	// AppName names the per-user data directory.
	AppName = "go-pass-vault"

	// MasterKeyFileName is the verifier record inside the data directory.
	MasterKeyFileName = "master_key"

	// DatabaseFileName is the default SQLite file inside the data directory.
	DatabaseFileName = "passwords.db"

	// LogFileName is where front ends without a console log to.
	LogFileName = "vault.log"

	DefaultHTTPAddress = "127.0.0.1:8421"
)

// Defaults returns the lowest priority configuration source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   AppName,
			TokenDuration: 15 * time.Minute,
		},
		Storage: Storage{
			DataDir: DefaultDataDir(),
		},
		Crypto: Crypto{
			Memory:      19 * 1024,
			Iterations:  2,
			Parallelism: 1,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SessionSweepInterval: 30 * time.Second,
		},
	}
}

// DefaultDataDir returns the per-user vault directory:
// $XDG_DATA_HOME/go-pass-vault (or ~/.local/share/go-pass-vault) on Unix,
// the user config directory on macOS and Windows, and "." when no home
// directory is known.
func DefaultDataDir() string {
	if runtimeUsesConfigDir() {
		if dir, err := os.UserConfigDir(); err == nil {
			return filepath.Join(dir, AppName)
		}
		return "."
	}

	if xdg := os.Getenv("XDG_DATA_HOME"); filepath.IsAbs(xdg) {
		return filepath.Join(xdg, AppName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", AppName)
	}
	return "."
}

// EnsureDataDir creates the data directory with owner-only permissions.
func (s Storage) EnsureDataDir() error {
	if s.DataDir == "" {
		return ErrInvalidStorageConfigs
	}
	return os.MkdirAll(s.DataDir, 0o700)
}

// LogFile is the path front ends log to.
func (s Storage) LogFile() string {
	return filepath.Join(s.DataDir, LogFileName)
}

func runtimeUsesConfigDir() bool {
	switch runtime.GOOS {
	case "darwin", "windows", "ios":
		return true
	}
	return false
}
