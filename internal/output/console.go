package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dotcommander/tyrefit/internal/fitment"
)

// ConsoleFormatter renders reports for interactive terminals.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
	profile  string
}

// NewConsoleFormatter creates a ConsoleFormatter. Color is dropped when the
// caller asks for none, NO_COLOR is set, or stdout is not a terminal.
func NewConsoleFormatter(opts Options) *ConsoleFormatter {
	colorize := !opts.NoColor && os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd()))
	return &ConsoleFormatter{
		quiet:    opts.Quiet,
		verbose:  opts.Verbose,
		colorize: colorize,
		profile:  opts.ProfileName,
	}
}

// Format renders one report.
func (f *ConsoleFormatter) Format(report *fitment.Report) error {
	if f.quiet {
		return nil
	}

	f.printHeader(report)
	f.printAlternatives(report)
	if f.verbose {
		f.printFilteredOut(report)
	}
	f.printSummary(report)
	return nil
}

// FormatAll renders a batch of reports: a status line per vehicle, then the
// detail sections.
func (f *ConsoleFormatter) FormatAll(reports []*fitment.Report) error {
	if f.quiet {
		return nil
	}

	maxLabelLen := 0
	for _, r := range reports {
		if n := len(f.label(r)); n > maxLabelLen {
			maxLabelLen = n
		}
	}

	fmt.Println()
	for _, r := range reports {
		label := f.label(r)
		padding := strings.Repeat(" ", maxLabelLen-len(label))
		count := len(r.Alternatives)

		switch {
		case count > 0:
			fmt.Printf("  %s %s%s  %d alternatives\n", f.style(colorGreen).Render("✓"), label, padding, count)
		default:
			fmt.Printf("  %s %s%s  no alternatives\n", f.style(colorYellow).Render("-"), label, padding)
		}
	}

	for _, r := range reports {
		fmt.Println()
		if err := f.Format(r); err != nil {
			return err
		}
	}
	return nil
}

func (f *ConsoleFormatter) label(report *fitment.Report) string {
	if report.Vehicle != "" {
		return report.Vehicle
	}
	return report.OEM.String()
}

func (f *ConsoleFormatter) printHeader(report *fitment.Report) {
	title := fmt.Sprintf("OEM %s, overall diameter %.1fmm", report.OEM, report.OEMDiameterMm)
	if report.Vehicle != "" {
		title = fmt.Sprintf("%s (%s)", report.Vehicle, title)
	}
	fmt.Printf("%s\n\n", f.style(colorBold).Render(title))
}

func (f *ConsoleFormatter) printAlternatives(report *fitment.Report) {
	if len(report.Alternatives) == 0 {
		fmt.Printf("  %s\n", f.style(colorYellow).Render("No suitable alternatives within the safety limits."))
		return
	}

	for _, alt := range report.Alternatives {
		band := fitment.Band(alt.Score)
		scoreStyle := f.bandStyle(band)
		fmt.Printf("  %s %s  score %s  %s\n",
			f.style(colorGreen).Render("✓"),
			alt.Display,
			scoreStyle.Render(fmt.Sprintf("%3d", alt.Score)),
			scoreStyle.Render(band))
		if f.verbose {
			for _, reason := range alt.Reasons {
				fmt.Printf("      %s\n", f.style(colorDim).Render(reason))
			}
		}
	}
}

// printFilteredOut explains the candidates the assembly dropped: safe ones
// below the score floor and gate-rejected ones.
func (f *ConsoleFormatter) printFilteredOut(report *fitment.Report) {
	var lines []string
	for _, c := range report.Evaluated {
		switch {
		case !c.Safe:
			rule := c.Reasons[len(c.Reasons)-1]
			lines = append(lines, fmt.Sprintf("✗ %s  %s", c.Display, rule))
		case c.Score < report.Limits.MinScoreShown:
			lines = append(lines, fmt.Sprintf("✗ %s  score %d below minimum %d", c.Display, c.Score, report.Limits.MinScoreShown))
		}
	}
	if len(lines) == 0 {
		return
	}

	fmt.Printf("\n  %s\n", f.style(colorBold).Render("Not offered:"))
	for _, line := range lines {
		fmt.Printf("  %s\n", f.style(colorDim).Render(line))
	}
}

func (f *ConsoleFormatter) printSummary(report *fitment.Report) {
	suffix := ""
	if f.profile != "" {
		suffix = fmt.Sprintf(" (profile %s, minimum score %d)", f.profile, report.Limits.MinScoreShown)
	}
	fmt.Printf("\n%d of %d candidates suitable%s\n", len(report.Alternatives), len(report.Evaluated), suffix)
}

// ANSI 16-color numbers so user terminal themes keep working.
const (
	colorGreen  = "10"
	colorYellow = "3"
	colorRed    = "9"
	colorDim    = "8"
	colorBold   = "bold"
)

func (f *ConsoleFormatter) style(color string) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	if color == colorBold {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func (f *ConsoleFormatter) bandStyle(band string) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	switch band {
	case "excellent", "good":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen))
	case "acceptable":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorYellow))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed))
	}
}
