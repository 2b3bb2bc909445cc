package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validBase(dir string) *StructuredConfig {
	cfg := Defaults()
	cfg.Storage.DataDir = dir
	return cfg
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_DerivesStoragePaths verifies that the master key file and the
// SQLite DSN default to files inside the data directory.
func TestBuild_DerivesStoragePaths(t *testing.T) {
	dir := t.TempDir()
	b := newConfigBuilder()
	b.defaults = validBase(dir)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "master_key"), cfg.Storage.MasterKeyFile)
	assert.Equal(t, filepath.Join(dir, "passwords.db"), cfg.Storage.DB.DSN)
}

// TestBuild_ExplicitPathsAreKept verifies that derived paths never replace
// explicit ones.
func TestBuild_ExplicitPathsAreKept(t *testing.T) {
	b := newConfigBuilder()
	b.defaults = validBase(t.TempDir())
	b.flags = &StructuredConfig{Storage: Storage{
		MasterKeyFile: "/keys/mk",
		DB:            DB{DSN: "postgres://localhost/vault"},
	}}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/keys/mk", cfg.Storage.MasterKeyFile)
	assert.Equal(t, "postgres://localhost/vault", cfg.Storage.DB.DSN)
}

// TestBuild_PriorityOrder verifies defaults < JSON < env < flags.
func TestBuild_PriorityOrder(t *testing.T) {
	b := newConfigBuilder()
	b.defaults = validBase(t.TempDir())
	b.json = &StructuredConfig{
		App:    App{TokenIssuer: "json", Version: "json"},
		Server: Server{HTTPAddress: "127.0.0.1:1", RequestTimeout: time.Minute},
	}
	b.env = &StructuredConfig{
		App:    App{TokenIssuer: "env"},
		Server: Server{HTTPAddress: "127.0.0.1:2"},
	}
	b.flags = &StructuredConfig{
		Server: Server{HTTPAddress: "127.0.0.1:3"},
	}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3", cfg.Server.HTTPAddress, "flags win")
	assert.Equal(t, "env", cfg.App.TokenIssuer, "env beats json")
	assert.Equal(t, "json", cfg.App.Version, "json beats defaults")
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, uint32(19*1024), cfg.Crypto.Memory, "defaults fill the rest")
}

// TestBuild_RejectsWeakArgon2Params verifies crypto validation.
func TestBuild_RejectsWeakArgon2Params(t *testing.T) {
	b := newConfigBuilder()
	b.defaults = validBase(t.TempDir())
	b.flags = &StructuredConfig{Crypto: Crypto{Memory: 8, Parallelism: 4}}

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidCryptoConfigs)
}

// TestBuild_RejectsArgon2ParamsAboveVerifyLimits verifies that new
// verifiers can always be checked again.
func TestBuild_RejectsArgon2ParamsAboveVerifyLimits(t *testing.T) {
	tests := []struct {
		name   string
		crypto Crypto
	}{
		{name: "memory", crypto: Crypto{Memory: 1<<22 + 1}},
		{name: "iterations", crypto: Crypto{Iterations: 65}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.defaults = validBase(t.TempDir())
			b.flags = &StructuredConfig{Crypto: tt.crypto}

			_, err := b.build()
			assert.ErrorIs(t, err, ErrInvalidCryptoConfigs)
		})
	}
}

// ── withEnv / withJSON ────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that prefixed environment variables are
// picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("VAULT_APP_VERSION", "env-version")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.NotNil(t, b.env)
	assert.Equal(t, "env-version", b.env.App.Version)
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no source names a JSON file.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder().withFlags(&StructuredConfig{}).withJSON()

	assert.Nil(t, b.json)
	assert.NoError(t, b.err)
}

// TestWithJSON_FlagPathWins verifies that the flag path is preferred over
// the env path.
func TestWithJSON_FlagPathWins(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "from-flag-file"
	flagPath := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")}
	b.withFlags(&StructuredConfig{JSONFilePath: flagPath}).withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "from-flag-file", b.json.App.Version)
}

// TestWithJSON_SetsError_WhenFileMissing verifies error accumulation.
func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder().
		withFlags(&StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")}).
		withJSON()

	assert.Error(t, b.err)
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_FromFlags verifies the full pipeline with only a data directory.
func TestLoad_FromFlags(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(&StructuredConfig{Storage: Storage{DataDir: dir}})
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Storage.DataDir)
	assert.Equal(t, filepath.Join(dir, "passwords.db"), cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.NoError(t, cfg.ValidateServer())
	assert.NoError(t, cfg.ValidateAdapter())
}

// TestDefaultDataDir_UsesXDG verifies XDG_DATA_HOME on Unix-like systems.
func TestDefaultDataDir_UsesXDG(t *testing.T) {
	if runtimeUsesConfigDir() {
		t.Skip("XDG is not consulted on this platform")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	assert.Equal(t, filepath.Join(xdg, AppName), DefaultDataDir())
}

// TestEnsureDataDir verifies owner-only permissions on the data directory.
func TestEnsureDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, Storage{DataDir: dir}.EnsureDataDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.ErrorIs(t, Storage{}.EnsureDataDir(), ErrInvalidStorageConfigs)
}
