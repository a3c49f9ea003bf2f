package output

import (
	"io"
	"os"
	"testing"

	"github.com/dotcommander/tyrefit/internal/fitment"
)

func sampleReport(t *testing.T) *fitment.Report {
	t.Helper()
	engine := fitment.NewEngine(fitment.DefaultLimits(), nil)
	report, err := engine.Evaluate("265/30 R20", "M4 Competition")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(report.Alternatives) == 0 {
		t.Fatal("sample report has no alternatives; formatter tests need at least one")
	}
	return report
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns what
// was written.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fnErr := fn()
	w.Close()
	out, readErr := io.ReadAll(r)
	os.Stdout = orig

	if fnErr != nil {
		t.Fatalf("formatter error = %v", fnErr)
	}
	if readErr != nil {
		t.Fatalf("read captured output: %v", readErr)
	}
	return string(out)
}

func TestNewDispatch(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"console", "*output.ConsoleFormatter"},
		{"json", "*output.JSONFormatter"},
		{"markdown", "*output.MarkdownFormatter"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := New(tt.format, Options{})
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.format, err)
			}
			if f == nil {
				t.Fatalf("New(%q) = nil formatter", tt.format)
			}
		})
	}
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("xml", Options{})
	if err == nil {
		t.Fatal("New(xml) = nil error, want failure")
	}
}
