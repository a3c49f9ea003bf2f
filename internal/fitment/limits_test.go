package fitment

import "testing"

func TestDefaultLimits(t *testing.T) {
	l := DefaultLimits()
	if l.DiameterPctMax != 3.0 {
		t.Errorf("DiameterPctMax = %v, want 3.0", l.DiameterPctMax)
	}
	if l.WidthDeltaMaxMm != 25 {
		t.Errorf("WidthDeltaMaxMm = %d, want 25", l.WidthDeltaMaxMm)
	}
	if l.AspectDeltaMax != 10 {
		t.Errorf("AspectDeltaMax = %d, want 10", l.AspectDeltaMax)
	}
	if l.MinScoreShown != 65 {
		t.Errorf("MinScoreShown = %d, want 65", l.MinScoreShown)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLimitsValidate(t *testing.T) {
	tests := []struct {
		name    string
		limits  Limits
		wantErr bool
	}{
		{"default", DefaultLimits(), false},
		{"tight envelope", Limits{DiameterPctMax: 2.0, WidthDeltaMaxMm: 15, AspectDeltaMax: 5, MinScoreShown: 75}, false},
		{"zero diameter limit", Limits{WidthDeltaMaxMm: 25, AspectDeltaMax: 10, MinScoreShown: 65}, true},
		{"negative diameter limit", Limits{DiameterPctMax: -1, WidthDeltaMaxMm: 25, AspectDeltaMax: 10, MinScoreShown: 65}, true},
		{"zero width limit", Limits{DiameterPctMax: 3, AspectDeltaMax: 10, MinScoreShown: 65}, true},
		{"zero aspect saturation", Limits{DiameterPctMax: 3, WidthDeltaMaxMm: 25, MinScoreShown: 65}, true},
		{"min score negative", Limits{DiameterPctMax: 3, WidthDeltaMaxMm: 25, AspectDeltaMax: 10, MinScoreShown: -1}, true},
		{"min score above 100", Limits{DiameterPctMax: 3, WidthDeltaMaxMm: 25, AspectDeltaMax: 10, MinScoreShown: 101}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.limits.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
