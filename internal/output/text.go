package output

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	address lipgloss.Style
	warning lipgloss.Style
}

// ANSI colors: 3 yellow, 4 blue, 6 cyan, 7 white, 1 red.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		label:   r.NewStyle().Bold(true),
		address: r.NewStyle().Foreground(lipgloss.ANSIColor(3)),
		warning: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

// TextFormatter formats reports as human-readable text. Colors are used
// only when the writer is a terminal.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	st := newStyles(lipgloss.NewRenderer(w))

	fmt.Fprintln(w, st.heading.Render("=== "+report.File+" ==="))
	fmt.Fprintf(w, "%s %d (%d data)\n", st.label.Render("Records:"), report.Records, report.DataRecords)
	fmt.Fprintf(w, "%s %d\n", st.label.Render("Data bytes:"), report.DataBytes)
	fmt.Fprintf(w, "%s %s\n", st.label.Render("Extent:"), st.address.Render(fmt.Sprintf("0x%08X", report.Extent)))
	if report.StartAddress != nil {
		fmt.Fprintf(w, "%s %s\n", st.label.Render("Start address:"),
			st.address.Render(fmt.Sprintf("0x%08X", *report.StartAddress)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.heading.Render("Segments"))
	if len(report.Segments) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, s := range report.Segments {
		end := uint64(s.Address) + uint64(s.Size) - 1
		fmt.Fprintf(w, "  %s-%s  %d bytes\n",
			st.address.Render(fmt.Sprintf("0x%08X", s.Address)),
			st.address.Render(fmt.Sprintf("0x%08X", end)),
			s.Size)
	}

	if f.opts.Verbose && len(report.RecordList) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.heading.Render("Records"))
		for _, r := range report.RecordList {
			fmt.Fprintf(w, "  %5d  %s  %-24s len=%-3d chk=%02X\n",
				r.Line, st.address.Render(fmt.Sprintf("%04X", r.Address)), r.Type, r.Length, r.Checksum)
		}
	}

	for _, warn := range report.Warnings {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s %s\n", st.warning.Render("WARNING"), warn)
	}

	return nil
}
