// Package scoring implements the two-layer grid scorer: a cheap
// placement heuristic used to rank candidate placements during search,
// and the overall weighted score used to rank completed grids.
package scoring

import "github.com/crossplay/wordgen/pkg/grid"

// Weights controls how the four overall-score components combine. They
// are not required to sum to 1 — the resulting score is a comparison
// tool between candidate grids, not an absolute probability.
type Weights struct {
	Compactness   float64
	Density       float64
	Intersections float64
	Symmetry      float64
}

// DefaultWeights matches spec.md's default GeneratorParams weights.
var DefaultWeights = Weights{Compactness: 0.4, Density: 0.2, Intersections: 0.3, Symmetry: 0.1}

// PlacementHeuristic scores a hypothetical placement for the search's
// candidate ranking: aspect_ratio*100 - expansion_penalty +
// intersections*10, where expansion_penalty is the growth in bounding-box
// area the placement would cause. An empty grid (the very first word)
// always scores 100, since there is no bounding box to compare against.
func PlacementHeuristic(g *grid.Grid, newBounds grid.Bounds, intersectionCount int) float64 {
	if g.Empty() {
		return 100
	}

	oldBounds := g.Bounds()
	oldArea := oldBounds.Width() * oldBounds.Height()
	newArea := newBounds.Width() * newBounds.Height()
	expansionPenalty := float64(newArea - oldArea)

	w, h := newBounds.Width(), newBounds.Height()
	aspectRatio := aspectRatio(w, h)

	return aspectRatio*100 - expansionPenalty + float64(intersectionCount)*10
}

func aspectRatio(w, h int) float64 {
	if w == 0 || h == 0 {
		return 0
	}
	minD, maxD := w, h
	if maxD < minD {
		minD, maxD = maxD, minD
	}
	return float64(minD) / float64(maxD)
}

// Components holds the four [0,1] overall-score components for a
// completed grid.
type Components struct {
	Compactness   float64
	Density       float64
	Intersections float64
	Symmetry      float64
}

// Score combines Components into a single overall score: a weighted sum,
// not normalized to [0,1] by design (see spec.md's open question on
// weight scale).
func (c Components) Score(w Weights) float64 {
	return w.Compactness*c.Compactness +
		w.Density*c.Density +
		w.Intersections*c.Intersections +
		w.Symmetry*c.Symmetry
}

// Score computes the overall Components for a completed grid.
func Score(g *grid.Grid) Components {
	if g.Empty() {
		return Components{}
	}

	b := g.Bounds()
	area := b.Width() * b.Height()
	filled := len(g.Cells())

	compactness := 0.5*aspectRatio(b.Width(), b.Height()) + 0.5*float64(filled)/float64(area)
	density := float64(filled) / float64(area)
	intersections := intersectionFraction(g)
	symmetry := g.SymmetryFraction()

	return Components{
		Compactness:   compactness,
		Density:       density,
		Intersections: intersections,
		Symmetry:      symmetry,
	}
}

// intersectionFraction is min(1, crossings / (len(placed)-1)), where a
// crossing is any cell covered by two or more placed words.
func intersectionFraction(g *grid.Grid) float64 {
	if len(g.Placed) <= 1 {
		return 0
	}

	coverage := make(map[grid.CellKey]int)
	for _, p := range g.Placed {
		for _, c := range p.Cells() {
			coverage[c]++
		}
	}

	crossings := 0
	for _, n := range coverage {
		if n >= 2 {
			crossings++
		}
	}

	fraction := float64(crossings) / float64(len(g.Placed)-1)
	if fraction > 1 {
		fraction = 1
	}
	return fraction
}

// Combine mixes a grid's overall score with an external "fun" input for a
// given letter bag: final = 0.85*grid + 0.15*fun when fun is present,
// otherwise final = grid unchanged.
func Combine(gridScore float64, funScore *float64) float64 {
	if funScore == nil {
		return gridScore
	}
	return 0.85*gridScore + 0.15*(*funScore)
}
