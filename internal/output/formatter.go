// Package output renders fitment reports for console, JSON, and Markdown
// consumers.
package output

import (
	"fmt"

	"github.com/dotcommander/tyrefit/internal/fitment"
)

// Options configures a formatter.
type Options struct {
	Quiet   bool
	Verbose bool
	NoColor bool

	// OutputFile redirects JSON and Markdown output to a file. Console
	// output always goes to stdout.
	OutputFile string

	// ProfileName labels the envelope in human-readable output.
	ProfileName string

	// Version is stamped into machine-readable report headers.
	Version string
}

// Formatter renders evaluation reports. Format handles a single report,
// FormatAll a batch evaluated together.
type Formatter interface {
	Format(report *fitment.Report) error
	FormatAll(reports []*fitment.Report) error
}

// New returns the formatter for a format name.
func New(format string, opts Options) (Formatter, error) {
	switch format {
	case "console":
		return NewConsoleFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	case "markdown":
		return NewMarkdownFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
