package placement

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/crossplay/wordgen/pkg/graph"
	"github.com/crossplay/wordgen/pkg/grid"
	"github.com/crossplay/wordgen/pkg/prng"
	"github.com/crossplay/wordgen/pkg/scoring"
)

// ErrNoValidLayout is returned when no ordering/candidate combination tried
// during a single attempt produces a fully placed, connected grid.
var ErrNoValidLayout = errors.New("placement: no valid layout found for this attempt")

// Strategy selects how the word list is ordered before the backtracking
// search walks it.
type Strategy string

const (
	LongestFirst       Strategy = "longest_first"
	MostConnectedFirst Strategy = "most_connected_first"
	RandomOrder        Strategy = "random"
)

// Config controls one Search attempt.
type Config struct {
	Strategy               Strategy
	MustIncludeLongestWord bool
	MaxPlacementCandidates int

	// MaxBacktrackDepth is advisory only: it hints how many levels of
	// backtracking are "expected" to be enough for a well-formed letter
	// bag, but Search does not abort a recursion early because of it (see
	// the open-question decision recorded in DESIGN.md). It exists so
	// callers can surface a slow-search warning.
	MaxBacktrackDepth int
}

func (c Config) withDefaults() Config {
	if c.Strategy == "" {
		c.Strategy = LongestFirst
	}
	if c.MaxPlacementCandidates <= 0 {
		c.MaxPlacementCandidates = 10
	}
	return c
}

// candidate is one hypothetical (word, row, col, dir) placement derived
// from an intersection with an already-placed word (or, for the first
// word of an attempt, the two origin orientations).
type candidate struct {
	word string
	row  int
	col  int
	dir  grid.Direction
}

// Search runs a single backtracking attempt: it orders words according to
// cfg.Strategy (perturbed deterministically by seed/attempt for attempt >
// 0), then recursively places each word at the highest-ranked legal
// candidate position, backtracking on dead ends. It returns
// ErrNoValidLayout if no combination completes, or ctx.Err() if cancelled
// mid-search.
func Search(ctx context.Context, words []string, wordGraph graph.Graph, cfg Config, seed int64, attempt int) (*grid.Grid, error) {
	if len(words) == 0 {
		return nil, ErrNoValidLayout
	}
	cfg = cfg.withDefaults()

	ordered := orderWords(words, wordGraph, cfg)
	if cfg.Strategy == RandomOrder {
		src := prng.New(prng.AttemptSeed(seed, attempt))
		src.Shuffle(len(ordered), func(i, j int) { ordered[i], ordered[j] = ordered[j], ordered[i] })
		if cfg.MustIncludeLongestWord {
			bringLongestToFront(ordered)
		}
	} else if attempt > 0 {
		ordered = prng.PerturbAdjacent(ordered, seed, attempt)
	}

	g := grid.New()
	result, ok := place(ctx, ordered, 0, g, wordGraph, cfg)
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNoValidLayout
	}

	if !grid.IsConnected(result) {
		return nil, ErrNoValidLayout
	}
	result.Normalize()
	return result, nil
}

// orderWords returns a fresh ordering of words for the given strategy.
// RandomOrder returns a sorted (then later shuffled by the caller)
// baseline so results stay deterministic given the same seed.
func orderWords(words []string, wordGraph graph.Graph, cfg Config) []string {
	ordered := append([]string(nil), words...)

	switch cfg.Strategy {
	case MostConnectedFirst:
		sort.SliceStable(ordered, func(i, j int) bool {
			ci, cj := wordGraph.Connections(ordered[i]), wordGraph.Connections(ordered[j])
			if ci != cj {
				return ci > cj
			}
			if len(ordered[i]) != len(ordered[j]) {
				return len(ordered[i]) > len(ordered[j])
			}
			return ordered[i] < ordered[j]
		})
	case RandomOrder:
		sort.Strings(ordered)
	default: // LongestFirst
		sort.SliceStable(ordered, func(i, j int) bool {
			if len(ordered[i]) != len(ordered[j]) {
				return len(ordered[i]) > len(ordered[j])
			}
			return ordered[i] < ordered[j]
		})
	}

	if cfg.MustIncludeLongestWord {
		bringLongestToFront(ordered)
	}
	return ordered
}

func bringLongestToFront(words []string) {
	longest := 0
	for i, w := range words {
		if len(w) > len(words[longest]) {
			longest = i
		}
	}
	words[0], words[longest] = words[longest], words[0]
}

// place recursively tries to place words[idx:] onto g, returning the
// completed grid on success. It ranks legal candidates for words[idx] by
// scoring.PlacementHeuristic and only tries the top
// cfg.MaxPlacementCandidates of them before giving up on this branch.
func place(ctx context.Context, words []string, idx int, g *grid.Grid, wordGraph graph.Graph, cfg Config) (*grid.Grid, bool) {
	if err := ctx.Err(); err != nil {
		return nil, false
	}
	if idx >= len(words) {
		return g, true
	}

	word := words[idx]
	viable := rankedCandidates(g, word, cfg.MaxPlacementCandidates)

	for _, v := range viable {
		if err := ctx.Err(); err != nil {
			return nil, false
		}
		next := g.Clone()
		next.Place(v.word, v.row, v.col, v.dir)
		if result, ok := place(ctx, words, idx+1, next, wordGraph, cfg); ok {
			return result, true
		}
	}
	return nil, false
}

type rankedCandidate struct {
	candidate
	heuristic float64
}

// rankedCandidates returns the legal placements for word on g, sorted by
// PlacementHeuristic descending and truncated to limit.
func rankedCandidates(g *grid.Grid, word string, limit int) []candidate {
	raw := candidatesFor(word, g)
	ranked := make([]rankedCandidate, 0, len(raw))
	for _, c := range raw {
		res := Validate(g, c.word, c.row, c.col, c.dir)
		if !res.OK() {
			continue
		}
		nb := simulateBounds(g, c.word, c.row, c.col, c.dir)
		h := scoring.PlacementHeuristic(g, nb, res.IntersectionCount)
		ranked = append(ranked, rankedCandidate{candidate: c, heuristic: h})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].heuristic > ranked[j].heuristic })
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	out := make([]candidate, len(ranked))
	for i, r := range ranked {
		out[i] = r.candidate
	}
	return out
}

// candidatesFor derives every distinct placement of word that could
// legally anchor to g: for an empty grid, the two origin orientations;
// otherwise, one candidate per shared letter between word and each
// already-placed word, anchored so the shared letter lines up and word
// runs perpendicular to the word it crosses.
func candidatesFor(word string, g *grid.Grid) []candidate {
	if g.Empty() {
		return []candidate{
			{word: word, row: 0, col: 0, dir: grid.Horizontal},
			{word: word, row: 0, col: 0, dir: grid.Vertical},
		}
	}

	seen := make(map[string]bool)
	var out []candidate
	for _, p := range g.Placed {
		for i, placedLetter := range p.Word {
			cell := p.CellAt(i)
			for j, wordLetter := range word {
				if wordLetter != placedLetter {
					continue
				}
				dir := p.Direction.Opposite()
				var row, col int
				if dir == grid.Horizontal {
					row, col = cell.Row, cell.Col-j
				} else {
					row, col = cell.Row-j, cell.Col
				}
				key := fmt.Sprintf("%d,%d,%d", row, col, dir)
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, candidate{word: word, row: row, col: col, dir: dir})
			}
		}
	}
	return out
}

// simulateBounds computes the bounding box g would have after placing
// word at (row, col, dir), without mutating g.
func simulateBounds(g *grid.Grid, word string, row, col int, dir grid.Direction) grid.Bounds {
	b := g.Bounds()
	empty := g.Empty()
	for i := range word {
		var r, c int
		if dir == grid.Horizontal {
			r, c = row, col+i
		} else {
			r, c = row+i, col
		}
		if empty && i == 0 {
			b = grid.Bounds{MinRow: r, MaxRow: r, MinCol: c, MaxCol: c}
			continue
		}
		if r < b.MinRow {
			b.MinRow = r
		}
		if r > b.MaxRow {
			b.MaxRow = r
		}
		if c < b.MinCol {
			b.MinCol = c
		}
		if c > b.MaxCol {
			b.MaxCol = c
		}
	}
	return b
}
