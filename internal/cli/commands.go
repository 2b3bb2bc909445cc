package cli

import (
	"context"
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (r *runner) setMasterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-master",
		Short: "Sets the master key",
		Long:  "Sets the master key. This can only be done once per vault.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := readConfirmed(r.opts.Prompter, "Enter a new master key: ", "Confirm your master key: ")
			if err != nil {
				return fail(err)
			}

			vault, err := r.openVault(cmd.Context())
			if err != nil {
				return fail(err)
			}

			stop := startSpinner(r.opts.Err, "Hashing the master key...", r.verbose)
			err = vault.SetMasterKey(cmd.Context(), models.MasterKey(key))
			stop()
			if err != nil {
				return fail(err)
			}

			fmt.Fprintln(r.opts.Err, Success.Sprint("Successfully updated the master key file."))
			return nil
		},
	}
}

func (r *runner) newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new NAME",
		Short: "Creates a new password with the specified name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			key, err := r.authenticate(cmd.Context())
			if err != nil {
				return fail(err)
			}

			secret, err := r.vault.CreateSecret(cmd.Context(), key, name, nil)
			if err != nil {
				return fail(err)
			}

			fmt.Fprintf(r.opts.Err, "Created and saved password named %s\n", Name.Sprint(secret.Name))
			return nil
		},
	}
}

func (r *runner) saveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save NAME [PASSWORD]",
		Short: "Saves a new password with the specified name and value.",
		Long: `Saves a new password with the specified name and value.

Without PASSWORD the value is read twice with hidden input. Passing it as an
argument leaves it in your shell history.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			key, err := r.authenticate(cmd.Context())
			if err != nil {
				return fail(err)
			}

			var value string
			if len(args) == 2 {
				value = args[1]
			} else {
				value, err = readConfirmed(r.opts.Prompter, "Enter the password to save: ", "Confirm the password: ")
				if err != nil {
					return fail(err)
				}
			}

			secret, err := r.vault.CreateSecret(cmd.Context(), key, name, &value)
			if err != nil {
				return fail(err)
			}

			fmt.Fprintf(r.opts.Err, "Saved password named %s\n", Name.Sprint(secret.Name))
			return nil
		},
	}
}

func (r *runner) getCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Gets the value of a specific password.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := r.authenticate(cmd.Context())
			if err != nil {
				return fail(err)
			}

			secret, err := r.vault.ReadSecret(cmd.Context(), key, args[0])
			if err != nil {
				return fail(err)
			}

			if raw {
				_, err = r.opts.Out.Write(secret.Raw)
				return err
			}

			if secret.Lossy {
				fmt.Fprintln(r.opts.Err, Info.Sprint("The stored password is not valid text; invalid bytes are shown as �. Use --raw for the exact bytes."))
			}
			fmt.Fprintf(r.opts.Out, "Here's the secret: %s\n", Secret.Sprint(secret.Value))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Output only the password bytes, to be piped into other commands.")
	return cmd
}

func (r *runner) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Gets a list of all the passwords that you have saved right now.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := r.authenticate(cmd.Context()); err != nil {
				return fail(err)
			}

			names, err := r.vault.ListSecretNames(cmd.Context())
			if err != nil {
				return fail(err)
			}

			if len(names) == 0 {
				fmt.Fprintln(r.opts.Err, Info.Sprint("You have not saved any passwords yet."))
				return nil
			}

			fmt.Fprintln(r.opts.Err, "Here is the list of passwords that you have stored.")
			for _, name := range names {
				fmt.Fprintf(r.opts.Out, "\t - %s\n", name)
			}
			return nil
		},
	}
}

func (r *runner) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Deletes a specific password from your password list. This is not reversible!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if _, err := r.authenticate(cmd.Context()); err != nil {
				return fail(err)
			}

			removed, err := r.vault.DeleteSecret(cmd.Context(), name)
			if err != nil {
				return fail(err)
			}

			if removed == 0 {
				fmt.Fprintf(r.opts.Err, "There was no password named %s, nothing was deleted\n", Name.Sprint(name))
				return nil
			}
			fmt.Fprintf(r.opts.Err, "I have deleted all the passwords named %s\n", Name.Sprint(name))
			return nil
		},
	}
}

func (r *runner) generateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Prints a random password without saving it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := crypto.NewPasswordGenerator().Generate()
			if err != nil {
				return fail(err)
			}

			fmt.Fprintln(r.opts.Out, password)
			return nil
		},
	}
}

func (r *runner) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints build information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !noColor() && isTerminal(r.opts.Out) {
				fmt.Fprintln(r.opts.Out, figure.NewColorFigure("vault", "alligator2", "green", true).ColorString())
			} else {
				figure.Write(r.opts.Out, figure.NewFigure("vault", "alligator2", true))
			}

			info := r.opts.BuildInfo
			fmt.Fprintf(r.opts.Out, "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(r.opts.Out, "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(r.opts.Out, "Build commit: %s\n", info.BuildCommit())
			return nil
		},
	}
}

// authenticate prompts for the master key, verifies it and keeps the vault
// open in r.vault. The key is returned to the caller and not stored.
func (r *runner) authenticate(ctx context.Context) (models.MasterKey, error) {
	vault, err := r.openVault(ctx)
	if err != nil {
		return "", err
	}

	input, err := r.opts.Prompter.ReadSecret("Enter the master key: ")
	if err != nil {
		return "", err
	}

	stop := startSpinner(r.opts.Err, "Checking the master key...", r.verbose)
	defer stop()

	return vault.Authenticate(ctx, models.MasterKey(input))
}
