package fitment

import "github.com/dotcommander/tyrefit/internal/size"

// Step perturbs an OEM size by a width and aspect offset. Rim diameter is
// never stepped; rim changes are rejected by the rim gate regardless.
type Step struct {
	WidthDeltaMm int
	AspectDelta  int
}

// StepPolicy is an ordered table of perturbations to derive candidates from
// an OEM size. Order matters: it is the tie-break order when assembled
// results have equal scores. The table is a generation concern only; swapping
// it never touches scoring.
type StepPolicy []Step

// DefaultSteps is the retail step table: single-dimension width and aspect
// moves plus the common combined moves (compensating pairs keep overall
// diameter close, divergent pairs trade it away). These mirror realistic
// plus/minus-sizing steps, not an exhaustive search.
var DefaultSteps = StepPolicy{
	{WidthDeltaMm: -20},
	{WidthDeltaMm: -10},
	{WidthDeltaMm: +10},
	{WidthDeltaMm: +20},
	{AspectDelta: -5},
	{AspectDelta: +5},
	{WidthDeltaMm: -10, AspectDelta: +5},
	{WidthDeltaMm: +10, AspectDelta: -5},
	{WidthDeltaMm: -10, AspectDelta: -5},
	{WidthDeltaMm: +10, AspectDelta: +5},
}

// Apply derives the stepped size. Purely arithmetic: the result is not
// checked against parsing bounds here, since bounds enforcement belongs to
// input parsing and the scoring gates reject anything unusable.
func (s Step) Apply(oem size.TyreSize) size.TyreSize {
	return size.TyreSize{
		WidthMm:       oem.WidthMm + s.WidthDeltaMm,
		AspectRatio:   oem.AspectRatio + s.AspectDelta,
		RimDiameterIn: oem.RimDiameterIn,
	}
}

// Generate applies every step of the policy to oem in order, dropping
// candidates identical to the OEM size and deduplicating by canonical
// formatted string (first occurrence wins).
func Generate(oem size.TyreSize, policy StepPolicy) []size.TyreSize {
	seen := make(map[string]bool, len(policy))
	candidates := make([]size.TyreSize, 0, len(policy))

	oemKey := oem.String()
	for _, step := range policy {
		candidate := step.Apply(oem)
		key := candidate.String()
		if key == oemKey || seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, candidate)
	}
	return candidates
}
