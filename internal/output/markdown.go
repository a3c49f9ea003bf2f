package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/tyrefit/internal/fitment"
)

// MarkdownFormatter renders reports as Markdown documents.
type MarkdownFormatter struct {
	verbose    bool
	outputFile string
	version    string
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts Options) *MarkdownFormatter {
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	return &MarkdownFormatter{
		verbose:    opts.Verbose,
		outputFile: opts.OutputFile,
		version:    version,
	}
}

// Format renders one report.
func (f *MarkdownFormatter) Format(report *fitment.Report) error {
	var sb strings.Builder
	f.writeHeader(&sb, "Tyre Fitment Report")
	f.writeReport(&sb, report, 2)
	return f.write(sb.String())
}

// FormatAll renders a batch as a single document, one section per vehicle.
func (f *MarkdownFormatter) FormatAll(reports []*fitment.Report) error {
	var sb strings.Builder
	f.writeHeader(&sb, "Tyre Fitment Batch Report")

	withAlternatives := 0
	for _, r := range reports {
		if len(r.Alternatives) > 0 {
			withAlternatives++
		}
	}
	fmt.Fprintf(&sb, "%d vehicles evaluated, %d with suitable alternatives.\n\n", len(reports), withAlternatives)

	for _, r := range reports {
		f.writeReport(&sb, r, 2)
	}
	return f.write(sb.String())
}

func (f *MarkdownFormatter) writeHeader(sb *strings.Builder, title string) {
	fmt.Fprintf(sb, "# %s\n\n", title)
	fmt.Fprintf(sb, "_Generated by tyrefit %s on %s_\n\n", f.version, time.Now().Format("2006-01-02 15:04:05"))
}

func (f *MarkdownFormatter) writeReport(sb *strings.Builder, report *fitment.Report, level int) {
	heading := strings.Repeat("#", level)
	title := report.OEM.String()
	if report.Vehicle != "" {
		title = fmt.Sprintf("%s — OEM %s", report.Vehicle, report.OEM)
	}
	fmt.Fprintf(sb, "%s %s\n\n", heading, title)
	fmt.Fprintf(sb, "Overall diameter: %.1fmm. Limits: diameter ±%.1f%%, width ±%dmm, minimum score %d.\n\n",
		report.OEMDiameterMm, report.Limits.DiameterPctMax, report.Limits.WidthDeltaMaxMm, report.Limits.MinScoreShown)

	if len(report.Alternatives) == 0 {
		sb.WriteString("No suitable alternatives within the safety limits.\n\n")
	} else {
		sb.WriteString("| Rank | Size | Score | Band |\n")
		sb.WriteString("|------|------|-------|------|\n")
		for i, alt := range report.Alternatives {
			fmt.Fprintf(sb, "| %d | %s | %d | %s |\n", i+1, alt.Display, alt.Score, fitment.Band(alt.Score))
		}
		sb.WriteString("\n")

		for _, alt := range report.Alternatives {
			fmt.Fprintf(sb, "%s# %s\n\n", heading, alt.Display)
			for _, reason := range alt.Reasons {
				fmt.Fprintf(sb, "- %s\n", reason)
			}
			sb.WriteString("\n")
		}
	}

	if f.verbose {
		f.writeRejected(sb, report, level)
	}
}

func (f *MarkdownFormatter) writeRejected(sb *strings.Builder, report *fitment.Report, level int) {
	var rejected []fitment.ScoredCandidate
	for _, c := range report.Evaluated {
		if !c.Safe || c.Score < report.Limits.MinScoreShown {
			rejected = append(rejected, c)
		}
	}
	if len(rejected) == 0 {
		return
	}

	fmt.Fprintf(sb, "%s# Not offered\n\n", strings.Repeat("#", level))
	for _, c := range rejected {
		rule := c.Reasons[len(c.Reasons)-1]
		if c.Safe {
			rule = fmt.Sprintf("score %d below minimum %d", c.Score, report.Limits.MinScoreShown)
		}
		fmt.Fprintf(sb, "- %s — %s\n", c.Display, rule)
	}
	sb.WriteString("\n")
}

func (f *MarkdownFormatter) write(doc string) error {
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Print(doc)
	return nil
}
