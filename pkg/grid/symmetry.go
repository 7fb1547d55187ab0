package grid

import "math"

// SymmetryFraction measures how much of the grid is point-symmetric about
// its own geometric center: for each filled cell, the point reflected
// across the center counts as a match if it is also filled. The result is
// the fraction of filled cells with a filled mirror, averaged over all
// filled cells. An empty grid scores 0, never NaN.
//
// The center may land on a half-integer coordinate (even width or
// height); mirrored coordinates are rounded so that two grids which are
// identical up to translation score identically.
func (g *Grid) SymmetryFraction() float64 {
	if g.Empty() {
		return 0
	}

	b := g.bounds
	centerRow := float64(b.MinRow+b.MaxRow) / 2.0
	centerCol := float64(b.MinCol+b.MaxCol) / 2.0

	matches := 0
	for k := range g.cells {
		mirrorRow := int(math.Round(2*centerRow - float64(k.Row)))
		mirrorCol := int(math.Round(2*centerCol - float64(k.Col)))
		if _, ok := g.cells[CellKey{Row: mirrorRow, Col: mirrorCol}]; ok {
			matches++
		}
	}

	return float64(matches) / float64(len(g.cells))
}
