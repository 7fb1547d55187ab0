package generator

import (
	"github.com/crossplay/wordgen/pkg/grid"
	"github.com/crossplay/wordgen/pkg/placement"
	"github.com/crossplay/wordgen/pkg/scoring"
)

// GeneratorParams controls a single Generate call. The zero value is not
// directly usable; withDefaults fills in every field left at its zero
// value with the values below.
type GeneratorParams struct {
	MinWordLength int
	MaxWordLength int
	MinWordCount  int
	MaxWordCount  int

	// SkipLongestWordRequirement disables the default rule that the
	// longest spellable word must anchor the grid. The zero value (false)
	// keeps the default requirement in effect.
	SkipLongestWordRequirement bool
	PlacementStrategy          placement.Strategy
	MaxPlacementCandidates int
	MaxBacktrackDepth      int

	Weights scoring.Weights

	CandidatesToGenerate int

	// Seed drives every deterministic choice Generate makes. Zero means
	// "pick a fresh seed for this call"; Generate reports the seed it
	// actually used on the returned Result so callers can reproduce it.
	Seed int64

	// FunScore, when non-nil, is the letter bag's curated fun score
	// (wordlist.Curated records one per word; callers combine whatever is
	// relevant to the bag before passing it in here). Generate mixes it
	// into each candidate's overall score via scoring.Combine. Nil skips
	// the mix and ranks on the grid score alone.
	FunScore *float64
}

// defaultParams mirrors the defaults table: min/max word length 3/10,
// min/max word count 4/8, must-include-longest true, longest-first
// strategy, 10 placement candidates, backtrack depth 5 (advisory),
// scoring.DefaultWeights, 10 candidates to generate.
var defaultParams = GeneratorParams{
	MinWordLength:          3,
	MaxWordLength:          10,
	MinWordCount:           4,
	MaxWordCount:           8,
	PlacementStrategy:      placement.LongestFirst,
	MaxPlacementCandidates: 10,
	MaxBacktrackDepth:      5,
	Weights:                scoring.DefaultWeights,
	CandidatesToGenerate:   10,
}

func withDefaults(p GeneratorParams) GeneratorParams {
	d := defaultParams
	if p.MinWordLength != 0 {
		d.MinWordLength = p.MinWordLength
	}
	if p.MaxWordLength != 0 {
		d.MaxWordLength = p.MaxWordLength
	}
	if p.MinWordCount != 0 {
		d.MinWordCount = p.MinWordCount
	}
	if p.MaxWordCount != 0 {
		d.MaxWordCount = p.MaxWordCount
	}
	d.SkipLongestWordRequirement = p.SkipLongestWordRequirement
	if p.PlacementStrategy != "" {
		d.PlacementStrategy = p.PlacementStrategy
	}
	if p.MaxPlacementCandidates != 0 {
		d.MaxPlacementCandidates = p.MaxPlacementCandidates
	}
	if p.MaxBacktrackDepth != 0 {
		d.MaxBacktrackDepth = p.MaxBacktrackDepth
	}
	if (p.Weights != scoring.Weights{}) {
		d.Weights = p.Weights
	}
	if p.CandidatesToGenerate != 0 {
		d.CandidatesToGenerate = p.CandidatesToGenerate
	}
	d.Seed = p.Seed
	d.FunScore = p.FunScore
	return d
}

func validateParams(p GeneratorParams) error {
	switch {
	case p.MinWordLength < 0:
		return &BadParamError{Field: "MinWordLength"}
	case p.MaxWordLength < 0:
		return &BadParamError{Field: "MaxWordLength"}
	case p.MaxWordLength != 0 && p.MinWordLength != 0 && p.MaxWordLength < p.MinWordLength:
		return &BadParamError{Field: "MaxWordLength < MinWordLength"}
	case p.MinWordCount < 0:
		return &BadParamError{Field: "MinWordCount"}
	case p.MaxWordCount < 0:
		return &BadParamError{Field: "MaxWordCount"}
	case p.MaxWordCount != 0 && p.MinWordCount != 0 && p.MaxWordCount < p.MinWordCount:
		return &BadParamError{Field: "MaxWordCount < MinWordCount"}
	case p.CandidatesToGenerate < 0:
		return &BadParamError{Field: "CandidatesToGenerate"}
	case p.MaxPlacementCandidates < 0:
		return &BadParamError{Field: "MaxPlacementCandidates"}
	}
	return nil
}

// PuzzleMetrics exposes the scored components behind a puzzle's overall
// ranking, so callers can inspect why one candidate outranked another.
type PuzzleMetrics struct {
	OverallScore  float64
	Compactness   float64
	Density       float64
	Intersections float64
	Symmetry      float64
	WordCount     int
	GridWidth     int
	GridHeight    int
}

// Puzzle is one generated candidate: the letter bag it was built from,
// the words placed on its grid, any valid words left over as bonus
// targets, the grid itself, and its scored metrics.
type Puzzle struct {
	ID          int
	Letters     string
	PlacedWords []string
	BonusWords  []string
	Grid        *grid.Grid
	Metrics     PuzzleMetrics
}

// Result is the ranked output of a single Generate call.
type Result struct {
	Puzzles []Puzzle
	Seed    int64
}
