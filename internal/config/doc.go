// Package config provides configuration loading, merging, and validation
// facilities for the vault binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults ([Defaults])
//  2. JSON config file
//  3. Environment variables prefixed with VAULT_
//  4. Command-line flags (spf13/pflag)
//
// The main entry points are [GetStructuredConfig] for the session daemon and
// [Load] for binaries that own their flag set (the cobra CLI and the
// terminal client).
package config
