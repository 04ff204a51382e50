package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcinbor85/ihex"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <hex-file>",
		Short: "Validate an Intel HEX file",
		Long: `Validate an Intel HEX file without producing any output file.

Checks:
  - Line syntax and hex digits
  - Record lengths and types
  - Record checksums
  - Presence of the end of file record`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	hexPath := args[0]

	rs, err := ihex.ParseFile(hexPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d records, %d data bytes)\n", hexPath, rs.Len(), rs.TotalSize())
	return nil
}
