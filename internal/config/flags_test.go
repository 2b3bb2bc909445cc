package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only host no port",
			addr:     NetAddress{Host: "localhost", Port: 0},
			expected: "localhost:0",
		},
		{
			name:     "IPv6 address is bracketed",
			addr:     NetAddress{Host: "::1", Port: 8421},
			expected: "[::1]:8421",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectError:  false,
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectError:  false,
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons without brackets",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "negative port",
			input:       "localhost:-1",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:         "empty host",
			input:        ":8421",
			expectError:  false,
			expectedAddr: NetAddress{Host: "", Port: 8421},
		},
		{
			name:         "IPv6 loopback",
			input:        "[::1]:8421",
			expectError:  false,
			expectedAddr: NetAddress{Host: "::1", Port: 8421},
		},
		{
			name:        "port out of range",
			input:       "127.0.0.1:70000",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "only colon",
			input:       ":",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr.Host, addr.Host)
				assert.Equal(t, tt.expectedAddr.Port, addr.Port)
			}
		})
	}
}

// ── ParseFlags ────────────────────────────────────────────────────────────────

// TestParseFlags_AllGroups verifies that every group binds its flags into the
// returned config.
func TestParseFlags_AllGroups(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-c", "/etc/vault.json",
		"--data-dir", "/tmp/vault",
		"--master-key-file", "/tmp/vault/mk",
		"--dsn", "postgres://localhost/vault",
		"--argon2-memory", "65536",
		"--argon2-iterations", "3",
		"--argon2-parallelism", "4",
		"-a", "127.0.0.1:9000",
		"--grpc-address", "localhost:9001",
		"--request-timeout", "5s",
		"--token-sign-key", "sign",
		"--token-issuer", "issuer",
		"--token-duration", "1h",
		"--server", "127.0.0.1:9000",
		"--timeout", "3s",
		"--session-sweep-interval", "1m",
	}, StorageFlags, CryptoFlags, ServerFlags, AdapterFlags, WorkerFlags)
	require.NoError(t, err)

	assert.Equal(t, "/etc/vault.json", cfg.JSONFilePath)
	assert.Equal(t, "/tmp/vault", cfg.Storage.DataDir)
	assert.Equal(t, "/tmp/vault/mk", cfg.Storage.MasterKeyFile)
	assert.Equal(t, "postgres://localhost/vault", cfg.Storage.DB.DSN)
	assert.Equal(t, Crypto{Memory: 65536, Iterations: 3, Parallelism: 4}, cfg.Crypto)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9001", cfg.Server.GRPCAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SessionSweepInterval)
}

// TestParseFlags_UnsetFlagsStayZero verifies that absent flags do not
// produce values that would override lower priority sources.
func TestParseFlags_UnsetFlagsStayZero(t *testing.T) {
	cfg, err := ParseFlags(nil, StorageFlags, ServerFlags)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_InvalidAddress verifies that a malformed address is rejected
// at parse time.
func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "not-an-address"}, ServerFlags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host:port")
}

// TestParseFlags_UnknownGroupFlag verifies that flags of unbound groups are
// unknown.
func TestParseFlags_UnknownGroupFlag(t *testing.T) {
	_, err := ParseFlags([]string{"--grpc-address", "127.0.0.1:1"}, StorageFlags)
	require.Error(t, err)
}

// TestBindFlags_SharedFlagSet verifies binding onto an externally owned set,
// the way the CLI binds onto its root command.
func TestBindFlags_SharedFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("vault", pflag.ContinueOnError)
	fs.Bool("verbose", false, "")
	flags := BindFlags(fs, StorageFlags)

	require.NoError(t, fs.Parse([]string{"--verbose", "--data-dir", "/srv/vault"}))
	assert.Equal(t, "/srv/vault", flags.Config().Storage.DataDir)
}

// TestNetAddress_Type verifies the pflag type label.
func TestNetAddress_Type(t *testing.T) {
	assert.Equal(t, "host:port", (&NetAddress{}).Type())
}
