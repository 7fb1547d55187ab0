package graph

import "testing"

func TestBuildFindsSharedLetters(t *testing.T) {
	g := Build([]string{"CAT", "SAT", "TAX"})

	pairs := g.Between("CAT", "SAT")
	if len(pairs) == 0 {
		t.Fatal("CAT and SAT share A and T, expected intersections")
	}

	found := map[rune]bool{}
	for _, p := range pairs {
		found[p.Letter] = true
		if p.WordA != "CAT" || p.WordB != "SAT" {
			t.Errorf("unexpected pair fields: %+v", p)
		}
	}
	if !found['A'] || !found['T'] {
		t.Errorf("expected A and T shared letters, got %v", found)
	}
}

func TestBuildStoresBothOrientations(t *testing.T) {
	g := Build([]string{"CAT", "SAT"})
	if len(g.Between("CAT", "SAT")) == 0 || len(g.Between("SAT", "CAT")) == 0 {
		t.Error("both orientations of a pair should be stored")
	}
}

func TestBuildOmitsNonIntersectingPairs(t *testing.T) {
	g := Build([]string{"CAT", "DOG"})
	if pairs := g.Between("CAT", "DOG"); pairs != nil {
		t.Errorf("CAT and DOG share no letters, want nil got %v", pairs)
	}
}

func TestConnectionsCountsAcrossAllPartners(t *testing.T) {
	g := Build([]string{"CAT", "SAT", "ACT"})
	if g.Connections("CAT") == 0 {
		t.Error("CAT should connect to both SAT and ACT")
	}
}

func TestWithReturnsAdjacency(t *testing.T) {
	g := Build([]string{"CAT", "SAT", "DOG"})
	adj := g.With("CAT")
	if _, ok := adj["SAT"]; !ok {
		t.Error("CAT should have an adjacency entry for SAT")
	}
	if _, ok := adj["DOG"]; ok {
		t.Error("CAT should have no adjacency entry for DOG")
	}
}
