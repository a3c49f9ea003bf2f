package fitment

import (
	"sort"

	"github.com/dotcommander/tyrefit/internal/size"
)

// Report is the outcome of evaluating one OEM size.
type Report struct {
	// Vehicle is the caller-supplied label. Display only; it never affects
	// evaluation.
	Vehicle string

	OEM           size.TyreSize
	OEMDiameterMm float64

	// Limits is the envelope this report was evaluated against.
	Limits Limits

	// Alternatives is the surfaced list: safe candidates at or above
	// MinScoreShown, sorted by score descending, generation order preserved
	// on ties. Empty is a valid outcome.
	Alternatives []ScoredCandidate

	// Evaluated is every scored candidate in generation order, including
	// rejected and below-threshold ones, so callers can explain what was
	// filtered without re-evaluating.
	Evaluated []ScoredCandidate
}

// Engine evaluates replacement tyre sizes against an OEM size. It holds only
// immutable configuration and is safe for concurrent use.
type Engine struct {
	limits Limits
	steps  StepPolicy
}

// NewEngine builds an engine for the given safety envelope. A nil step
// policy selects DefaultSteps.
func NewEngine(limits Limits, steps StepPolicy) *Engine {
	if steps == nil {
		steps = DefaultSteps
	}
	return &Engine{limits: limits, steps: steps}
}

// Limits returns the envelope the engine evaluates against.
func (e *Engine) Limits() Limits {
	return e.limits
}

// Evaluate parses the OEM size text and evaluates every candidate the step
// policy derives from it. A parse failure returns the error and no
// candidates. vehicle labels the report only.
func (e *Engine) Evaluate(oemText, vehicle string) (*Report, error) {
	oem, err := size.Parse(oemText)
	if err != nil {
		return nil, err
	}
	return e.EvaluateSize(oem, vehicle), nil
}

// EvaluateSize is Evaluate for an already-parsed OEM size.
func (e *Engine) EvaluateSize(oem size.TyreSize, vehicle string) *Report {
	candidates := Generate(oem, e.steps)
	evaluated := make([]ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		evaluated = append(evaluated, Score(e.limits, oem, candidate))
	}

	return &Report{
		Vehicle:       vehicle,
		OEM:           oem,
		OEMDiameterMm: oem.OverallDiameterMm(),
		Limits:        e.limits,
		Alternatives:  assemble(evaluated, e.limits.MinScoreShown),
		Evaluated:     evaluated,
	}
}

// assemble drops unsafe and below-threshold candidates and orders the rest
// by score descending. The stable sort is load-bearing: equal scores keep
// their candidate-generation order.
func assemble(evaluated []ScoredCandidate, minScore int) []ScoredCandidate {
	shown := make([]ScoredCandidate, 0, len(evaluated))
	for _, c := range evaluated {
		if !c.Safe || c.Score < minScore {
			continue
		}
		shown = append(shown, c)
	}
	sort.SliceStable(shown, func(i, j int) bool {
		return shown[i].Score > shown[j].Score
	})
	return shown
}
