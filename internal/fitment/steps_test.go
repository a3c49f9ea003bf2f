package fitment

import (
	"testing"

	"github.com/dotcommander/tyrefit/internal/size"
)

func TestStepApply(t *testing.T) {
	oem := size.TyreSize{WidthMm: 265, AspectRatio: 30, RimDiameterIn: 20}

	tests := []struct {
		name string
		step Step
		want size.TyreSize
	}{
		{"width down", Step{WidthDeltaMm: -10}, size.TyreSize{WidthMm: 255, AspectRatio: 30, RimDiameterIn: 20}},
		{"width up", Step{WidthDeltaMm: 20}, size.TyreSize{WidthMm: 285, AspectRatio: 30, RimDiameterIn: 20}},
		{"aspect up", Step{AspectDelta: 5}, size.TyreSize{WidthMm: 265, AspectRatio: 35, RimDiameterIn: 20}},
		{"combined", Step{WidthDeltaMm: -10, AspectDelta: 5}, size.TyreSize{WidthMm: 255, AspectRatio: 35, RimDiameterIn: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.step.Apply(oem)
			if got != tt.want {
				t.Errorf("Apply(%+v) = %+v, want %+v", oem, got, tt.want)
			}
			if got.RimDiameterIn != oem.RimDiameterIn {
				t.Errorf("Apply changed rim diameter to %d", got.RimDiameterIn)
			}
		})
	}
}

func TestStepApplyIgnoresBounds(t *testing.T) {
	oem := size.TyreSize{WidthMm: 105, AspectRatio: 10, RimDiameterIn: 16}
	got := Step{WidthDeltaMm: -20, AspectDelta: -5}.Apply(oem)
	want := size.TyreSize{WidthMm: 85, AspectRatio: 5, RimDiameterIn: 16}
	if got != want {
		t.Errorf("Apply = %+v, want %+v (derivation must not clamp)", got, want)
	}
}

func TestGenerateDefaultSteps(t *testing.T) {
	oem := size.TyreSize{WidthMm: 265, AspectRatio: 30, RimDiameterIn: 20}
	got := Generate(oem, DefaultSteps)

	if len(got) != len(DefaultSteps) {
		t.Fatalf("Generate returned %d candidates, want %d", len(got), len(DefaultSteps))
	}
	for i, step := range DefaultSteps {
		want := step.Apply(oem)
		if got[i] != want {
			t.Errorf("candidate[%d] = %+v, want %+v (policy order must be preserved)", i, got[i], want)
		}
	}
}

func TestGenerateSkipsOEMIdentical(t *testing.T) {
	oem := size.TyreSize{WidthMm: 205, AspectRatio: 55, RimDiameterIn: 16}
	policy := StepPolicy{{WidthDeltaMm: 0, AspectDelta: 0}, {WidthDeltaMm: 10}}

	got := Generate(oem, policy)
	if len(got) != 1 {
		t.Fatalf("Generate returned %d candidates, want 1", len(got))
	}
	if got[0] != (size.TyreSize{WidthMm: 215, AspectRatio: 55, RimDiameterIn: 16}) {
		t.Errorf("candidate = %+v, want {215 55 16}", got[0])
	}
}

func TestGenerateDeduplicates(t *testing.T) {
	oem := size.TyreSize{WidthMm: 205, AspectRatio: 55, RimDiameterIn: 16}
	policy := StepPolicy{
		{WidthDeltaMm: 10},
		{WidthDeltaMm: -10},
		{WidthDeltaMm: 10}, // duplicate of the first; first occurrence wins
	}

	got := Generate(oem, policy)
	if len(got) != 2 {
		t.Fatalf("Generate returned %d candidates, want 2", len(got))
	}
	if got[0] != (size.TyreSize{WidthMm: 215, AspectRatio: 55, RimDiameterIn: 16}) || got[1] != (size.TyreSize{WidthMm: 195, AspectRatio: 55, RimDiameterIn: 16}) {
		t.Errorf("candidates = %+v, want [{215 55 16} {195 55 16}]", got)
	}
}

func TestGenerateEmptyPolicy(t *testing.T) {
	oem := size.TyreSize{WidthMm: 205, AspectRatio: 55, RimDiameterIn: 16}
	if got := Generate(oem, StepPolicy{}); len(got) != 0 {
		t.Errorf("Generate with empty policy = %+v, want none", got)
	}
}
