package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/tyrefit/internal/fitment"
)

// JSONFormatter renders reports as machine-readable JSON.
type JSONFormatter struct {
	quiet      bool
	verbose    bool
	outputFile string
	version    string
}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter(opts Options) *JSONFormatter {
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	return &JSONFormatter{
		quiet:      opts.Quiet,
		verbose:    opts.Verbose,
		outputFile: opts.OutputFile,
		version:    version,
	}
}

// JSONReport is the document for a single evaluation.
type JSONReport struct {
	Header JSONHeader `json:"header"`
	JSONReportBody
}

// JSONBatchReport is the document for a batch evaluation.
type JSONBatchReport struct {
	Header  JSONHeader       `json:"header"`
	Summary JSONBatchSummary `json:"summary"`
	Reports []JSONReportBody `json:"reports"`
}

// JSONHeader carries report metadata.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONReportBody carries one vehicle's evaluation.
type JSONReportBody struct {
	Vehicle      string            `json:"vehicle,omitempty"`
	OEM          JSONOEM           `json:"oem"`
	Limits       fitment.Limits    `json:"limits"`
	Summary      JSONSummary       `json:"summary"`
	Alternatives []JSONAlternative `json:"alternatives"`
	Evaluated    []JSONAlternative `json:"evaluated,omitempty"`
}

// JSONOEM describes the baseline size.
type JSONOEM struct {
	Size              string  `json:"size"`
	Slug              string  `json:"slug"`
	OverallDiameterMm float64 `json:"overall_diameter_mm"`
}

// JSONSummary carries per-report counts.
type JSONSummary struct {
	CandidatesEvaluated int `json:"candidates_evaluated"`
	CandidatesRejected  int `json:"candidates_rejected"`
	AlternativesShown   int `json:"alternatives_shown"`
}

// JSONBatchSummary carries batch-level counts.
type JSONBatchSummary struct {
	Vehicles         int `json:"vehicles"`
	WithAlternatives int `json:"with_alternatives"`
}

// JSONAlternative is one scored candidate.
type JSONAlternative struct {
	Size    string   `json:"size"`
	Slug    string   `json:"slug"`
	Score   int      `json:"score"`
	Band    string   `json:"band"`
	Safe    bool     `json:"safe"`
	Reasons []string `json:"reasons"`
}

// Format renders one report as an indented JSON document.
func (f *JSONFormatter) Format(report *fitment.Report) error {
	doc := JSONReport{
		Header:         f.header(),
		JSONReportBody: f.body(report),
	}
	return f.write(doc)
}

// FormatAll renders a batch as a single JSON document.
func (f *JSONFormatter) FormatAll(reports []*fitment.Report) error {
	doc := JSONBatchReport{
		Header:  f.header(),
		Reports: make([]JSONReportBody, 0, len(reports)),
	}
	for _, r := range reports {
		doc.Summary.Vehicles++
		if len(r.Alternatives) > 0 {
			doc.Summary.WithAlternatives++
		}
		doc.Reports = append(doc.Reports, f.body(r))
	}
	return f.write(doc)
}

func (f *JSONFormatter) header() JSONHeader {
	return JSONHeader{
		Tool:      "tyrefit",
		Version:   f.version,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func (f *JSONFormatter) body(report *fitment.Report) JSONReportBody {
	body := JSONReportBody{
		Vehicle: report.Vehicle,
		OEM: JSONOEM{
			Size:              report.OEM.String(),
			Slug:              report.OEM.Slug(),
			OverallDiameterMm: report.OEMDiameterMm,
		},
		Limits: report.Limits,
		Summary: JSONSummary{
			CandidatesEvaluated: len(report.Evaluated),
			AlternativesShown:   len(report.Alternatives),
		},
		Alternatives: make([]JSONAlternative, 0, len(report.Alternatives)),
	}

	for _, c := range report.Evaluated {
		if !c.Safe {
			body.Summary.CandidatesRejected++
		}
	}
	for _, alt := range report.Alternatives {
		body.Alternatives = append(body.Alternatives, toJSONAlternative(alt))
	}
	if f.verbose {
		body.Evaluated = make([]JSONAlternative, 0, len(report.Evaluated))
		for _, c := range report.Evaluated {
			body.Evaluated = append(body.Evaluated, toJSONAlternative(c))
		}
	}
	return body
}

func toJSONAlternative(c fitment.ScoredCandidate) JSONAlternative {
	return JSONAlternative{
		Size:    c.Display,
		Slug:    c.Slug,
		Score:   c.Score,
		Band:    fitment.Band(c.Score),
		Safe:    c.Safe,
		Reasons: c.Reasons,
	}
}

func (f *JSONFormatter) write(doc any) error {
	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0o644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Println(string(jsonBytes))
	return nil
}
