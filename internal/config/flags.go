package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/pflag"
)

// FlagGroup selects which configuration flags a binary exposes.
type FlagGroup int

const (
	// StorageFlags binds --config, --data-dir, --master-key-file and --dsn.
	StorageFlags FlagGroup = iota
	// CryptoFlags binds the argon2 cost flags.
	CryptoFlags
	// ServerFlags binds the daemon listener and session token flags.
	ServerFlags
	// AdapterFlags binds the terminal client's daemon address flags.
	AdapterFlags
	// WorkerFlags binds background worker intervals.
	WorkerFlags
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags collects flag values bound to a pflag.FlagSet. Call Config after
// the set has been parsed.
type Flags struct {
	cfg            StructuredConfig
	httpAddress    NetAddress
	grpcAddress    NetAddress
	adapterAddress NetAddress
}

// BindFlags registers the flags of the requested groups on fs.
//
// Flags:
//
//	-c/--config json file path with configs
//	--data-dir vault data directory
//	--master-key-file master key record path
//	--dsn secrets database DSN (sqlite path or postgres URL)
//	--argon2-memory, --argon2-iterations, --argon2-parallelism argon2 cost
//	-a/--address daemon address in format [host]:[port]
//	--grpc-address daemon grpc address in format [host]:[port]
//	--request-timeout request timeout (e.g., "30s", "1m")
//	--token-sign-key session token signing key
//	--token-issuer session token issuer name
//	--token-duration session lifetime (e.g., "15m")
//	--server daemon address used by the terminal client
//	--session-sweep-interval how often expired sessions are destroyed
func BindFlags(fs *pflag.FlagSet, groups ...FlagGroup) *Flags {
	f := &Flags{}

	for _, group := range groups {
		switch group {
		case StorageFlags:
			fs.StringVarP(&f.cfg.JSONFilePath, "config", "c", "", "JSON config file path")
			fs.StringVar(&f.cfg.Storage.DataDir, "data-dir", "", "Vault data directory")
			fs.StringVar(&f.cfg.Storage.MasterKeyFile, "master-key-file", "", "Master key record path")
			fs.StringVar(&f.cfg.Storage.DB.DSN, "dsn", "", "Secrets database DSN (sqlite path or postgres URL)")
		case CryptoFlags:
			fs.Uint32Var(&f.cfg.Crypto.Memory, "argon2-memory", 0, "Argon2 memory cost in KiB")
			fs.Uint32Var(&f.cfg.Crypto.Iterations, "argon2-iterations", 0, "Argon2 time cost")
			fs.Uint8Var(&f.cfg.Crypto.Parallelism, "argon2-parallelism", 0, "Argon2 parallelism")
		case ServerFlags:
			fs.VarP(&f.httpAddress, "address", "a", "Net address host:port")
			fs.Var(&f.grpcAddress, "grpc-address", "Net grpc server address host:port")
			fs.DurationVar(&f.cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
			fs.StringVar(&f.cfg.App.TokenSignKey, "token-sign-key", "", "Session token signing key")
			fs.StringVar(&f.cfg.App.TokenIssuer, "token-issuer", "", "Session token issuer")
			fs.DurationVar(&f.cfg.App.TokenDuration, "token-duration", 0, "Session lifetime (e.g., 15m)")
		case AdapterFlags:
			fs.Var(&f.adapterAddress, "server", "Session daemon address host:port")
			fs.DurationVar(&f.cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
		case WorkerFlags:
			fs.DurationVar(&f.cfg.Workers.SessionSweepInterval, "session-sweep-interval", 0, "Expired session sweep interval")
		}
	}

	return f
}

// Config returns the values set on the command line. Unset flags stay zero
// so they never override lower priority sources.
func (f *Flags) Config() *StructuredConfig {
	cfg := f.cfg
	cfg.Server.HTTPAddress = f.httpAddress.String()
	cfg.Server.GRPCAddress = f.grpcAddress.String()
	cfg.Adapter.HTTPAddress = f.adapterAddress.String()
	return &cfg
}

// ParseFlags parses args against a fresh flag set with the given groups.
func ParseFlags(args []string, groups ...FlagGroup) (*StructuredConfig, error) {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	flags := BindFlags(fs, groups...)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return flags.Config(), nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
