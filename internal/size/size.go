// Package size implements tyre-size notation parsing, formatting, and geometry.
package size

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TyreSize is an immutable tyre size value. Two values with equal fields are
// interchangeable; there is no identity beyond the three fields.
type TyreSize struct {
	WidthMm       int // tread width in millimetres, three digits when rendered
	AspectRatio   int // sidewall height as a percentage of width
	RimDiameterIn int // rim bead diameter in inches
}

// Well-formedness bounds. Enforced on parsing only; arithmetic derivation of
// variant sizes may produce values outside these bounds.
const (
	minWidthMm  = 100
	maxWidthMm  = 999
	minAspect   = 10
	maxAspect   = 95
	minRimIn    = 10
	maxRimIn    = 30
	mmPerInch   = 25.4
)

// ParseError reports a malformed or out-of-range tyre-size string. It is the
// only error kind this package returns; callers distinguish it with errors.As.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid tyre size %q: %s", e.Input, e.Msg)
}

func parseErr(input, format string, args ...interface{}) error {
	return &ParseError{Input: input, Msg: fmt.Sprintf(format, args...)}
}

// Parse converts canonical tyre-size notation into a TyreSize.
//
// Input is normalized before parsing: surrounding and internal whitespace is
// removed and the text is upper-cased, so "205/55 R16", "205/55R16", and
// "205 / 55 r16" all parse to the same value. The normalized text must split
// on the literal separator "R" into exactly two non-empty segments; the left
// segment must split on "/" into width and aspect; the right segment is the
// rim diameter. All three segments must be decimal integers.
//
// Width must render to exactly three digits (rejecting widths like 70 or
// 7000, a sanity bound rather than a physical law), aspect must lie in
// [10,95], and rim in [10,30]. Any violation returns a *ParseError; Parse
// never produces a partial result.
func Parse(text string) (TyreSize, error) {
	norm := normalize(text)
	if norm == "" {
		return TyreSize{}, parseErr(text, "empty input")
	}

	halves := strings.Split(norm, "R")
	if len(halves) != 2 || halves[0] == "" || halves[1] == "" {
		return TyreSize{}, parseErr(text, "expected exactly one %q separator", "R")
	}

	dims := strings.Split(halves[0], "/")
	if len(dims) != 2 || dims[0] == "" || dims[1] == "" {
		return TyreSize{}, parseErr(text, "expected width/aspect before the rim separator")
	}

	return fromSegments(text, dims[0], dims[1], halves[1])
}

// ParseSlug converts hyphenated slug notation ("<width>-<aspect>-<rim>") into
// a TyreSize, applying the same normalization and bounds as Parse.
func ParseSlug(text string) (TyreSize, error) {
	norm := normalize(text)
	if norm == "" {
		return TyreSize{}, parseErr(text, "empty input")
	}

	parts := strings.Split(norm, "-")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return TyreSize{}, parseErr(text, "expected <width>-<aspect>-<rim>")
	}

	return fromSegments(text, parts[0], parts[1], parts[2])
}

// normalize trims, removes internal whitespace, and upper-cases.
func normalize(text string) string {
	return strings.ToUpper(strings.Join(strings.Fields(text), ""))
}

// fromSegments validates the three numeric segments against the
// well-formedness bounds. input is the original text, kept for error messages.
func fromSegments(input, widthStr, aspectStr, rimStr string) (TyreSize, error) {
	width, err := strconv.Atoi(widthStr)
	if err != nil {
		return TyreSize{}, parseErr(input, "width %q is not a whole number", widthStr)
	}
	aspect, err := strconv.Atoi(aspectStr)
	if err != nil {
		return TyreSize{}, parseErr(input, "aspect ratio %q is not a whole number", aspectStr)
	}
	rim, err := strconv.Atoi(rimStr)
	if err != nil {
		return TyreSize{}, parseErr(input, "rim diameter %q is not a whole number", rimStr)
	}

	t := TyreSize{WidthMm: width, AspectRatio: aspect, RimDiameterIn: rim}
	if err := t.Validate(); err != nil {
		return TyreSize{}, parseErr(input, "%v", err)
	}
	return t, nil
}

// Validate reports which field of t violates the well-formedness bounds, or
// nil when t is within them.
func (t TyreSize) Validate() error {
	switch {
	case t.WidthMm < minWidthMm || t.WidthMm > maxWidthMm:
		return fmt.Errorf("width %d must have exactly three digits", t.WidthMm)
	case t.AspectRatio < minAspect || t.AspectRatio > maxAspect:
		return fmt.Errorf("aspect ratio %d outside %d-%d", t.AspectRatio, minAspect, maxAspect)
	case t.RimDiameterIn < minRimIn || t.RimDiameterIn > maxRimIn:
		return fmt.Errorf("rim diameter %d outside %d-%d", t.RimDiameterIn, minRimIn, maxRimIn)
	}
	return nil
}

// String renders the canonical notation "<width>/<aspect> R<rim>" with the
// aspect zero-padded to two digits. For every well-formed t,
// Parse(t.String()) == t.
func (t TyreSize) String() string {
	return fmt.Sprintf("%d/%02d R%d", t.WidthMm, t.AspectRatio, t.RimDiameterIn)
}

// Slug renders the URL-safe form "<width>-<aspect>-<rim>". Derivation is
// deterministic and carries no validation beyond what parsing already did.
func (t TyreSize) Slug() string {
	return fmt.Sprintf("%d-%02d-%d", t.WidthMm, t.AspectRatio, t.RimDiameterIn)
}

// WellFormed reports whether t satisfies the parsing bounds: three-digit
// width, aspect in [10,95], rim in [10,30]. Derived variants can violate
// these even though parsed values never do.
func (t TyreSize) WellFormed() bool {
	return t.Validate() == nil
}

// OverallDiameterMm returns the total rolling diameter of the mounted tyre:
// the rim bead diameter converted to millimetres plus twice the sidewall
// height (width scaled by the aspect ratio). Pure and total for well-formed
// sizes.
func (t TyreSize) OverallDiameterMm() float64 {
	return float64(t.RimDiameterIn)*mmPerInch + 2*float64(t.WidthMm)*(float64(t.AspectRatio)/100)
}

// PctDiff returns the absolute percentage difference of b relative to a.
// Precondition: a is non-zero. Overall diameters of well-formed sizes are
// always positive, so callers comparing diameters never trip this.
func PctDiff(a, b float64) float64 {
	return math.Abs(b-a) / a * 100
}
