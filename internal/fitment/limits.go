// Package fitment evaluates replacement tyre sizes against an OEM size:
// candidate generation, hard safety gates, weighted 0-100 scoring, and
// ranked result assembly.
package fitment

import "fmt"

// Limits is the immutable safety envelope an Engine evaluates against. It is
// passed in at construction, never read from package state, so concurrent
// callers can hold different envelopes.
type Limits struct {
	// DiameterPctMax is the largest overall-diameter deviation from OEM, in
	// percent, that passes the diameter gate.
	DiameterPctMax float64 `yaml:"diameter_pct_max" json:"diameter_pct_max" mapstructure:"diameter_pct_max"`

	// WidthDeltaMaxMm is the largest absolute width deviation, in
	// millimetres, that passes the width gate.
	WidthDeltaMaxMm int `yaml:"width_delta_max_mm" json:"width_delta_max_mm" mapstructure:"width_delta_max_mm"`

	// AspectDeltaMax is the aspect-ratio deviation, in points, at which the
	// aspect penalty saturates. Aspect has no hard gate of its own; the
	// diameter gate bounds it indirectly.
	AspectDeltaMax int `yaml:"aspect_delta_max" json:"aspect_delta_max" mapstructure:"aspect_delta_max"`

	// MinScoreShown is the lowest score a safe candidate may have and still
	// be surfaced in the assembled result list.
	MinScoreShown int `yaml:"min_score_shown" json:"min_score_shown" mapstructure:"min_score_shown"`
}

// DefaultLimits returns the standard safety envelope: 3.0% diameter, 25mm
// width, aspect penalty saturating at 10 points, 65 minimum surfaced score.
func DefaultLimits() Limits {
	return Limits{
		DiameterPctMax:  3.0,
		WidthDeltaMaxMm: 25,
		AspectDeltaMax:  10,
		MinScoreShown:   65,
	}
}

// Validate rejects envelopes that would break the scoring arithmetic or
// surface nothing meaningful.
func (l Limits) Validate() error {
	if l.DiameterPctMax <= 0 {
		return fmt.Errorf("diameter_pct_max must be positive, got %v", l.DiameterPctMax)
	}
	if l.WidthDeltaMaxMm <= 0 {
		return fmt.Errorf("width_delta_max_mm must be positive, got %d", l.WidthDeltaMaxMm)
	}
	if l.AspectDeltaMax <= 0 {
		return fmt.Errorf("aspect_delta_max must be positive, got %d", l.AspectDeltaMax)
	}
	if l.MinScoreShown < 0 || l.MinScoreShown > 100 {
		return fmt.Errorf("min_score_shown must be in 0-100, got %d", l.MinScoreShown)
	}
	return nil
}
