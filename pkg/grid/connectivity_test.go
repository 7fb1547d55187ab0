package grid

import "testing"

func TestIsConnectedEmptyGrid(t *testing.T) {
	if !IsConnected(New()) {
		t.Error("empty grid should be considered connected")
	}
}

func TestIsConnectedSingleWord(t *testing.T) {
	g := New()
	g.Place("CATS", 0, 0, Horizontal)
	if !IsConnected(g) {
		t.Error("a single placed word should be connected")
	}
}

func TestIsConnectedIntersectingWords(t *testing.T) {
	g := New()
	g.Place("CATS", 0, 0, Horizontal)
	// SAT crosses CATS at the A (index 1 of CATS, index 1 of SAT).
	g.Place("SAT", -1, 1, Vertical)
	if !IsConnected(g) {
		t.Error("intersecting words should be connected")
	}
}

func TestIsConnectedDisjointIslands(t *testing.T) {
	g := New()
	g.Place("CATS", 0, 0, Horizontal)
	g.Place("DOGS", 10, 10, Horizontal)
	if IsConnected(g) {
		t.Error("two far-apart words with no shared cell should be disconnected")
	}
}
