// Package cli provides the command-line interface for ihex.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcinbor85/ihex/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors keeps cobra from printing it
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return commands.ExitCodeFor(err)
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ihex",
		Short: "Inspect and convert Intel HEX files",
		Long: `ihex parses Intel HEX files and turns them into binary images.

Every record is validated before anything is produced: a single bad
checksum, malformed line or missing end of file record rejects the file.

Exit codes:
  0 - Success
  1 - Incorrect checksum
  2 - Missing end of file record
  3 - Syntax error
  4 - Wrong record length
  5 - No input
  6 - Unknown record type
  7 - Premature end of input
  8 - Address out of range
  9 - File, configuration or usage error`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewInfoCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewBinCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
