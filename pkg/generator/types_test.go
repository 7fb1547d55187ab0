package generator

import (
	"testing"

	"github.com/crossplay/wordgen/pkg/placement"
)

func TestWithDefaultsFillsZeroFields(t *testing.T) {
	d := withDefaults(GeneratorParams{})
	if d.MinWordLength != defaultParams.MinWordLength {
		t.Errorf("expected default MinWordLength, got %d", d.MinWordLength)
	}
	if d.MaxWordLength != defaultParams.MaxWordLength {
		t.Errorf("expected default MaxWordLength, got %d", d.MaxWordLength)
	}
	if d.PlacementStrategy != placement.LongestFirst {
		t.Errorf("expected default strategy LongestFirst, got %v", d.PlacementStrategy)
	}
	if d.SkipLongestWordRequirement {
		t.Error("zero value should keep the must-include-longest-word requirement enabled")
	}
	if d.CandidatesToGenerate != defaultParams.CandidatesToGenerate {
		t.Errorf("expected default CandidatesToGenerate, got %d", d.CandidatesToGenerate)
	}
}

func TestWithDefaultsPreservesExplicitOverrides(t *testing.T) {
	d := withDefaults(GeneratorParams{MinWordLength: 5, CandidatesToGenerate: 3, SkipLongestWordRequirement: true})
	if d.MinWordLength != 5 {
		t.Errorf("expected overridden MinWordLength 5, got %d", d.MinWordLength)
	}
	if d.CandidatesToGenerate != 3 {
		t.Errorf("expected overridden CandidatesToGenerate 3, got %d", d.CandidatesToGenerate)
	}
	if !d.SkipLongestWordRequirement {
		t.Error("expected SkipLongestWordRequirement override to survive")
	}
	// Fields left at zero should still pick up defaults.
	if d.MaxWordLength != defaultParams.MaxWordLength {
		t.Errorf("expected default MaxWordLength to survive alongside overrides, got %d", d.MaxWordLength)
	}
}

func TestValidateParamsRejectsInvertedWordLength(t *testing.T) {
	err := validateParams(GeneratorParams{MinWordLength: 8, MaxWordLength: 3})
	if _, ok := err.(*BadParamError); !ok {
		t.Fatalf("expected BadParamError, got %v", err)
	}
}

func TestValidateParamsAcceptsZeroValue(t *testing.T) {
	if err := validateParams(GeneratorParams{}); err != nil {
		t.Errorf("zero-value params should validate (defaults apply later), got %v", err)
	}
}

func TestValidateParamsRejectsNegativeCandidates(t *testing.T) {
	err := validateParams(GeneratorParams{CandidatesToGenerate: -1})
	if _, ok := err.(*BadParamError); !ok {
		t.Fatalf("expected BadParamError, got %v", err)
	}
}
