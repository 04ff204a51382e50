package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/marcinbor85/ihex"
	"github.com/marcinbor85/ihex/internal/config"
)

// BinOptions holds command-line options for the bin command.
type BinOptions struct {
	Out    string
	Width  int
	Order  string
	Origin string
	Size   string
	Pad    string
	Config string
}

// NewBinCommand creates the bin command.
func NewBinCommand() *cobra.Command {
	opts := &BinOptions{}

	cmd := &cobra.Command{
		Use:   "bin <hex-file>",
		Short: "Convert an Intel HEX file to a binary image",
		Long: `Convert an Intel HEX file to a flat binary image.

The image starts at the origin address and bytes not covered by any
record are set to the pad value. With a word width above 1, data words
are read most significant byte first and written in the selected byte
order.

Settings are taken from the defaults, then the profile file, then the
IHEX_WIDTH and IHEX_BYTE_ORDER environment variables, then flags.

Numbers accept decimal or 0x-prefixed hexadecimal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBin(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "O", "", "Output binary file (required)")
	cmd.Flags().IntVar(&opts.Width, "width", config.DefaultWidth, "Word width in bytes (1|2|4|8)")
	cmd.Flags().StringVar(&opts.Order, "order", config.DefaultByteOrder, "Output byte order (big|little)")
	cmd.Flags().StringVar(&opts.Origin, "origin", "0", "Absolute address of the first image byte")
	cmd.Flags().StringVar(&opts.Size, "size", "0", "Image size in bytes, 0 for up to the last data byte")
	cmd.Flags().StringVar(&opts.Pad, "pad", "0x00", "Value of bytes not covered by data")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Profile file")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runBin(cmd *cobra.Command, args []string, opts *BinOptions) error {
	hexPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := binProfile(ctx, cmd, opts)
	if err != nil {
		return err
	}

	rs, err := ihex.ParseFile(hexPath)
	if err != nil {
		return err
	}

	size := cfg.Size
	if size == 0 {
		if ext := rs.Extent(); ext > cfg.Origin {
			size = ext - cfg.Origin
		}
	}
	if size > cfg.MaxSize {
		return fmt.Errorf("image size %d exceeds max_size %d", size, cfg.MaxSize)
	}

	image := make([]byte, size)
	ihex.Fill(image, cfg.Pad)
	if err := ihex.CopyIntoAt(rs, image, cfg.Origin, cfg.WordWidth(), cfg.Order()); err != nil {
		return err
	}

	if err := os.WriteFile(opts.Out, image, 0o644); err != nil {
		return fmt.Errorf("writing image: %w", err)
	}

	done := lipgloss.NewRenderer(cmd.OutOrStdout()).NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2))
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d bytes to %s\n", done.Render("wrote"), len(image), opts.Out)
	return nil
}

// binProfile merges the profile, environment and explicitly set flags.
func binProfile(ctx context.Context, cmd *cobra.Command, opts *BinOptions) (*config.Config, error) {
	cfg, err := loadProfile(ctx, opts.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = opts.Width
	}
	if flags.Changed("order") {
		cfg.ByteOrder = strings.ToLower(opts.Order)
	}
	if flags.Changed("origin") {
		if cfg.Origin, err = config.ParseNumber(opts.Origin, 32); err != nil {
			return nil, fmt.Errorf("--origin: %w", err)
		}
	}
	if flags.Changed("size") {
		if cfg.Size, err = config.ParseNumber(opts.Size, 64); err != nil {
			return nil, fmt.Errorf("--size: %w", err)
		}
	}
	if flags.Changed("pad") {
		pad, err := config.ParseNumber(opts.Pad, 8)
		if err != nil {
			return nil, fmt.Errorf("--pad: %w", err)
		}
		cfg.Pad = uint8(pad)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}
