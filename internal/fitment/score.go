package fitment

import (
	"fmt"
	"math"

	"github.com/dotcommander/tyrefit/internal/size"
)

// Penalty weights. Diameter mismatch matters most (speedometer and ABS/ESP
// calibration), width affects clearance and load distribution, aspect ratio
// affects handling feel least.
const (
	diameterWeight = 55.0
	widthWeight    = 25.0
	aspectWeight   = 20.0
)

// ScoredCandidate is the evaluation of one candidate against the OEM size.
// Score is meaningful only when Safe. Reasons always begin with the three
// measured deltas (diameter %, width mm, aspect points); a rejected
// candidate carries the rejecting rule as a final reason.
type ScoredCandidate struct {
	Size    size.TyreSize `json:"-"`
	Display string        `json:"size"`
	Slug    string        `json:"slug"`
	Safe    bool          `json:"safe"`
	Score   int           `json:"score"`
	Reasons []string      `json:"reasons"`
}

// Score evaluates candidate against oem under the given limits: an ordered
// sequence of hard gates, then a weighted penalty score only when every gate
// passes. Rejection is a normal outcome carried in the result, never an
// error. oem must be well-formed; candidate may be any derived value.
func Score(limits Limits, oem, candidate size.TyreSize) ScoredCandidate {
	diaPct := size.PctDiff(oem.OverallDiameterMm(), candidate.OverallDiameterMm())
	widthDelta := abs(candidate.WidthMm - oem.WidthMm)
	aspectDelta := abs(candidate.AspectRatio - oem.AspectRatio)

	reasons := []string{
		fmt.Sprintf("overall diameter differs by %.2f%%", diaPct),
		fmt.Sprintf("width differs by %dmm", widthDelta),
		fmt.Sprintf("aspect ratio differs by %d points", aspectDelta),
	}

	rejected := func(rule string) ScoredCandidate {
		return ScoredCandidate{
			Size:    candidate,
			Display: candidate.String(),
			Slug:    candidate.Slug(),
			Safe:    false,
			Score:   0,
			Reasons: append(reasons, rule),
		}
	}

	// Hard gates, in order.
	if err := candidate.Validate(); err != nil {
		return rejected(fmt.Sprintf("not a recognised tyre dimension: %v", err))
	}
	if diaPct > limits.DiameterPctMax {
		return rejected(fmt.Sprintf("overall diameter delta %.2f%% exceeds the %.1f%% limit", diaPct, limits.DiameterPctMax))
	}
	if candidate.RimDiameterIn != oem.RimDiameterIn {
		return rejected("rim size differs from OEM")
	}
	if widthDelta > limits.WidthDeltaMaxMm {
		return rejected(fmt.Sprintf("width delta %dmm exceeds the %dmm limit", widthDelta, limits.WidthDeltaMaxMm))
	}

	// Each penalty scales linearly with how close the measured delta is to
	// its limit and is clamped to its weight.
	diaPenalty := math.Min(diaPct/limits.DiameterPctMax*diameterWeight, diameterWeight)
	widthPenalty := math.Min(float64(widthDelta)/float64(limits.WidthDeltaMaxMm)*widthWeight, widthWeight)
	aspectPenalty := math.Min(float64(aspectDelta)/float64(limits.AspectDeltaMax)*aspectWeight, aspectWeight)

	score := int(math.Round(100 - diaPenalty - widthPenalty - aspectPenalty))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return ScoredCandidate{
		Size:    candidate,
		Display: candidate.String(),
		Slug:    candidate.Slug(),
		Safe:    true,
		Score:   score,
		Reasons: reasons,
	}
}

// Band labels a score range for display.
func Band(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 80:
		return "good"
	case score >= 65:
		return "acceptable"
	case score >= 40:
		return "weak"
	default:
		return "poor"
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
