// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultOpener builds the vault service for a loaded configuration. The
// returned closer releases storage.
type VaultOpener func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (service.VaultService, io.Closer, error)

// Options wires the CLI to its environment. Zero fields fall back to the
// process streams, a terminal prompter and on-disk storage.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Prompter  Prompter
	OpenVault VaultOpener
	BuildInfo models.AppBuildInfo
}

// runner holds per-invocation state shared by the subcommands.
type runner struct {
	opts    Options
	flags   *config.Flags
	verbose bool

	cfg    *config.StructuredConfig
	log    *logger.Logger
	vault  service.VaultService
	closer io.Closer
}

// Execute runs the CLI with args and returns the process exit status.
func Execute(ctx context.Context, args []string, opts Options) int {
	cmd, r := newRootCommand(opts)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	r.close()

	if err != nil {
		r.printError(err)
		return 1
	}
	return 0
}

// NewRootCommand returns the `vault` command tree.
func NewRootCommand(opts Options) *cobra.Command {
	cmd, _ := newRootCommand(opts)
	return cmd
}

func newRootCommand(opts Options) (*cobra.Command, *runner) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Prompter == nil {
		opts.Prompter = NewPrompter(opts.In, opts.Err)
	}
	if opts.OpenVault == nil {
		opts.OpenVault = openStorageVault
	}

	r := &runner{opts: opts}

	root := &cobra.Command{
		Use:   "vault",
		Short: "A local password vault guarded by one master key.",
		Long: `vault stores named passwords encrypted with your master key.

Set the master key once with 'vault set-master', then create, read, list and
delete passwords. Passwords are at most 16 characters long.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: r.setup,
	}

	r.flags = config.BindFlags(root.PersistentFlags(), config.StorageFlags, config.CryptoFlags)
	root.PersistentFlags().BoolVarP(&r.verbose, "verbose", "v", false, "write logs to stderr")

	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	root.AddCommand(
		r.setMasterCommand(),
		r.newCommand(),
		r.saveCommand(),
		r.getCommand(),
		r.listCommand(),
		r.deleteCommand(),
		r.generateCommand(),
		r.versionCommand(),
	)

	return root, r
}

// setup loads the configuration and the logger. Storage is opened lazily
// by the commands that need it.
func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(r.flags.Config())
	if err != nil {
		return fmt.Errorf("error loading configs: %w", err)
	}
	r.cfg = cfg

	if r.verbose {
		out := zerolog.ConsoleWriter{Out: r.opts.Err, NoColor: noColor()}
		r.log = &logger.Logger{Logger: zerolog.New(out).With().Str("role", "vault-cli").Timestamp().Logger()}
	} else {
		r.log = logger.NewFileLogger("vault-cli", cfg.Storage.LogFile())
	}

	r.log.Debug().Str("func", "*runner.setup").Str("data_dir", cfg.Storage.DataDir).Msg("configuration loaded")
	return nil
}

// openVault opens storage once per invocation.
func (r *runner) openVault(ctx context.Context) (service.VaultService, error) {
	if r.vault != nil {
		return r.vault, nil
	}

	if err := r.cfg.Storage.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("%w: error creating data directory: %w", service.ErrStorage, err)
	}

	vault, closer, err := r.opts.OpenVault(ctx, r.cfg, r.log)
	if err != nil {
		return nil, err
	}

	r.vault = vault
	r.closer = closer
	return vault, nil
}

func (r *runner) close() {
	if r.closer == nil {
		return
	}
	if err := r.closer.Close(); err != nil && r.log != nil {
		r.log.Err(err).Str("func", "*runner.close").Msg("error closing storage")
	}
	r.closer = nil
	r.vault = nil
}

// vaultError marks failures of a vault operation. Only these are
// translated to user messages; usage and configuration errors keep their
// own text.
type vaultError struct {
	err error
}

func (e *vaultError) Error() string { return e.err.Error() }

func (e *vaultError) Unwrap() error { return e.err }

// fail marks err as coming from the vault.
func fail(err error) error {
	if err == nil {
		return nil
	}
	return &vaultError{err: err}
}

// printError writes the single error line.
func (r *runner) printError(err error) {
	if r.log != nil {
		r.log.Err(err).Str("func", "*runner.printError").Msg("command failed")
	}

	msg := err.Error()
	var ve *vaultError
	if errors.As(err, &ve) {
		msg = app.MessageFor(ve.err)
	}

	fmt.Fprintf(r.opts.Err, "%s %s\n", Error.Sprint("[ERROR]:"), msg)
}

func openStorageVault(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (service.VaultService, io.Closer, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", service.ErrStorage, err)
	}

	return service.NewVault(storages, cfg.Crypto, log), storages, nil
}
