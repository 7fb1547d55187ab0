// Package graph precomputes every letter-position crossing between pairs
// of candidate words, so the placement search can look up "where could
// this word cross that one" without rescanning letters at every
// backtracking step.
package graph

// Intersection records that word A's letter at IndexA matches word B's
// letter at IndexB.
type Intersection struct {
	WordA, WordB string
	IndexA       int
	IndexB       int
	Letter       rune
}

// Graph maps a word to, for each other word it shares at least one
// letter position with, the list of intersections between them. Pairs
// with no shared letter position are simply absent from the inner map.
type Graph map[string]map[string][]Intersection

// Build computes the intersection graph for a word list in
// O(len(words)^2 * maxWordLen^2) time: for every ordered pair of distinct
// words, every pair of indices whose letters match is recorded. Both
// orientations of a pair are stored (a->b and b->a).
func Build(words []string) Graph {
	g := make(Graph, len(words))

	for i, a := range words {
		for j, b := range words {
			if i == j {
				continue
			}
			var pairs []Intersection
			for ia, la := range a {
				for ib, lb := range b {
					if la == lb {
						pairs = append(pairs, Intersection{
							WordA: a, WordB: b,
							IndexA: ia, IndexB: ib,
							Letter: la,
						})
					}
				}
			}
			if len(pairs) == 0 {
				continue
			}
			if g[a] == nil {
				g[a] = make(map[string][]Intersection)
			}
			g[a][b] = pairs
		}
	}

	return g
}

// With returns all intersections between word and any other word in the
// graph, in O(sum of |intersections(word, other)|) time.
func (g Graph) With(word string) map[string][]Intersection {
	return g[word]
}

// Between returns the intersections between two specific words (empty if
// none are recorded).
func (g Graph) Between(a, b string) []Intersection {
	inner, ok := g[a]
	if !ok {
		return nil
	}
	return inner[b]
}

// Connections returns the total number of intersection pairs word has
// with every other word in the graph — the "most-connected first"
// ordering heuristic.
func (g Graph) Connections(word string) int {
	total := 0
	for _, pairs := range g[word] {
		total += len(pairs)
	}
	return total
}
