package scoring

import (
	"math"
	"testing"

	"github.com/crossplay/wordgen/pkg/grid"
)

func TestPlacementHeuristicEmptyGridAlways100(t *testing.T) {
	g := grid.New()
	got := PlacementHeuristic(g, grid.Bounds{MinRow: 0, MaxRow: 0, MinCol: 0, MaxCol: 3}, 0)
	if got != 100 {
		t.Errorf("empty grid placement heuristic should be 100, got %v", got)
	}
}

func TestPlacementHeuristicRewardsIntersections(t *testing.T) {
	g := grid.New()
	g.Place("CATS", 0, 0, grid.Horizontal)

	noIntersect := PlacementHeuristic(g, grid.Bounds{MinRow: 0, MaxRow: 3, MinCol: 0, MaxCol: 5}, 0)
	withIntersect := PlacementHeuristic(g, grid.Bounds{MinRow: 0, MaxRow: 3, MinCol: 0, MaxCol: 5}, 2)
	if withIntersect <= noIntersect {
		t.Errorf("more intersections should score higher: %v vs %v", withIntersect, noIntersect)
	}
}

func TestScoreEmptyGridIsZeroNeverNaN(t *testing.T) {
	c := Score(grid.New())
	if c.Compactness != 0 || c.Density != 0 || c.Intersections != 0 || c.Symmetry != 0 {
		t.Errorf("empty grid components should all be 0, got %+v", c)
	}
	score := c.Score(DefaultWeights)
	if math.IsNaN(score) {
		t.Error("empty grid overall score should never be NaN")
	}
	if score != 0 {
		t.Errorf("empty grid overall score should be 0, got %v", score)
	}
}

func TestScoreComponentsInRange(t *testing.T) {
	g := grid.New()
	g.Place("CATS", 0, 0, grid.Horizontal)
	g.Place("SAT", -1, 1, grid.Vertical)

	c := Score(g)
	for name, v := range map[string]float64{
		"compactness":   c.Compactness,
		"density":       c.Density,
		"intersections": c.Intersections,
		"symmetry":      c.Symmetry,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s out of [0,1]: %v", name, v)
		}
	}
}

func TestScoreWeightsNotNormalized(t *testing.T) {
	w := Weights{Compactness: 2, Density: 2, Intersections: 2, Symmetry: 2}
	c := Components{Compactness: 1, Density: 1, Intersections: 1, Symmetry: 1}
	if got := c.Score(w); got != 8 {
		t.Errorf("weighted sum should not be clamped to [0,1], got %v", got)
	}
}

func TestCombineWithoutFunScore(t *testing.T) {
	if got := Combine(0.7, nil); got != 0.7 {
		t.Errorf("Combine with nil fun score should return the grid score unchanged, got %v", got)
	}
}

func TestCombineWithFunScore(t *testing.T) {
	fun := 0.5
	got := Combine(0.8, &fun)
	want := 0.85*0.8 + 0.15*0.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Combine mismatch: got %v want %v", got, want)
	}
}

func TestIntersectionFractionSingleWordIsZero(t *testing.T) {
	g := grid.New()
	g.Place("CATS", 0, 0, grid.Horizontal)
	c := Score(g)
	if c.Intersections != 0 {
		t.Errorf("a single placed word has no crossings, want 0 got %v", c.Intersections)
	}
}
