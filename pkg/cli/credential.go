package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/flowcanvas/pkg/storage"
)

const maxCredentialSize = 1 << 20 // 1MB limit for all credential inputs

// NewCredentialCommand creates the credential management command.
func NewCredentialCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Manage dialog credentials",
		Long: `Manage credentials referenced by email and signature steps. Credentials are
stored in your system's native credential store (Keychain on macOS, Credential
Manager on Windows, Secret Service on Linux) and never inside flow data; step
dialogs reference them by key only.`,
	}

	cmd.AddCommand(newCredentialAddCommand())
	cmd.AddCommand(newCredentialRemoveCommand())

	return cmd
}

// newCredentialAddCommand creates the credential add subcommand.
func newCredentialAddCommand() *cobra.Command {
	var (
		value    string
		useStdin bool
	)

	cmd := &cobra.Command{
		Use:   "add <key>",
		Short: "Add a credential",
		Long: `Add a credential under a key that email and signature steps can reference.

Examples:
  # Add credential with interactive password prompt (recommended for local use)
  flowcanvas credential add smtp-password

  # Add credential from stdin (recommended for automation)
  printf '%s' "$SMTP_PASSWORD" | flowcanvas credential add smtp-password --stdin

Security:
  - Credentials are stored in your system keyring (never in plain text)
  - Credential values are never displayed by FlowCanvas commands
  - Avoid --value (visible in shell history and process list)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			credStore := storage.NewKeyringCredentialStore()

			if _, err := credStore.Get(key); err == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Warning: Credential '%s' already exists.\n", key)
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "Overwrite? [y/N]: ")

				var response string
				_, _ = fmt.Fscanln(os.Stdin, &response)
				response = strings.ToLower(strings.TrimSpace(response))

				if response != "y" && response != "yes" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			var credValue string
			switch {
			case useStdin:
				limitedReader := io.LimitReader(cmd.InOrStdin(), maxCredentialSize+1)
				inputBytes, err := io.ReadAll(limitedReader)

				defer func() {
					for i := range inputBytes {
						inputBytes[i] = 0
					}
				}()

				if err != nil {
					return fmt.Errorf("failed to read from stdin: %w", err)
				}
				if len(inputBytes) > maxCredentialSize {
					return fmt.Errorf("credential value exceeds maximum size of %d bytes", maxCredentialSize)
				}

				trimmed := bytes.TrimRight(inputBytes, "\r\n")
				if len(trimmed) == 0 || strings.TrimSpace(string(trimmed)) == "" {
					return fmt.Errorf("credential value cannot be empty")
				}
				credValue = string(trimmed)

			case value != "":
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Warning: Using --value flag exposes credential in shell history.")
				if len(value) > maxCredentialSize {
					return fmt.Errorf("credential value exceeds maximum size of %d bytes", maxCredentialSize)
				}
				if strings.TrimSpace(value) == "" {
					return fmt.Errorf("credential value cannot be empty")
				}
				credValue = value

			default:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Enter value for '%s': ", key)
				passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				_, _ = fmt.Fprintln(cmd.OutOrStdout())

				defer func() {
					for i := range passwordBytes {
						passwordBytes[i] = 0
					}
				}()

				if err != nil {
					return fmt.Errorf("failed to read credential value: %w", err)
				}
				if len(passwordBytes) > maxCredentialSize {
					return fmt.Errorf("credential value exceeds maximum size of %d bytes", maxCredentialSize)
				}
				if strings.TrimSpace(string(passwordBytes)) == "" {
					return fmt.Errorf("credential value cannot be empty")
				}
				credValue = string(passwordBytes)
			}

			if err := credStore.Set(key, credValue); err != nil {
				return fmt.Errorf("failed to store credential: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Credential '%s' added\n", key)
			return nil
		},
	}

	cmd.Flags().StringVarP(&value, "value", "v", "", "Credential value (optional - will prompt securely if omitted)")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read credential value from stdin (recommended for automation)")
	cmd.MarkFlagsMutuallyExclusive("stdin", "value")

	return cmd
}

// newCredentialRemoveCommand creates the credential remove subcommand.
func newCredentialRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			credStore := storage.NewKeyringCredentialStore()
			if err := credStore.Delete(key); err != nil {
				return fmt.Errorf("failed to remove credential: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Credential '%s' removed\n", key)
			return nil
		},
	}
	return cmd
}
