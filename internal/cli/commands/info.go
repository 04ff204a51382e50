package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcinbor85/ihex"
	"github.com/marcinbor85/ihex/internal/config"
	"github.com/marcinbor85/ihex/internal/output"
)

// InfoOptions holds command-line options for the info command.
type InfoOptions struct {
	Output  string
	Verbose bool
	Config  string
}

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	opts := &InfoOptions{}

	cmd := &cobra.Command{
		Use:   "info <hex-file>",
		Short: "Show the layout of an Intel HEX file",
		Long: `Parse an Intel HEX file and report its layout:
  - Record count and data byte count
  - Highest data address
  - Start address, if present
  - Contiguous data segments

Overlapping data records are reported as a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", config.DefaultOutput, "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "List every record")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Profile file")

	return cmd
}

func runInfo(cmd *cobra.Command, args []string, opts *InfoOptions) error {
	hexPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadProfile(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = opts.Output
	}

	formatter, err := output.New(cfg.Output, output.FormatOptions{Verbose: opts.Verbose})
	if err != nil {
		return err
	}

	rs, err := ihex.ParseFile(hexPath)
	if err != nil {
		return err
	}

	report := output.NewReport(hexPath, rs, opts.Verbose)
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}
