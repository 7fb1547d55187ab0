// Package generator implements the end-to-end generation façade: given a
// letter bag, a dictionary, and GeneratorParams, it finds spellable
// words, builds their intersection graph, searches for legal placements,
// scores and ranks the resulting grids, and returns the top candidates.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/crossplay/wordgen/pkg/graph"
	"github.com/crossplay/wordgen/pkg/grid"
	"github.com/crossplay/wordgen/pkg/placement"
	"github.com/crossplay/wordgen/pkg/scoring"
	"github.com/crossplay/wordgen/pkg/wordlist"
)

var logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))

// Generate runs a single end-to-end generation: FindValidWords -> graph.Build
// -> placement.Search (attempted up to 2*CandidatesToGenerate times) ->
// scoring.Score, returning up to params.CandidatesToGenerate distinct
// ranked puzzles. ctx cancellation is observed between attempts and inside
// each placement.Search call.
func Generate(ctx context.Context, letters string, dictionary []string, params GeneratorParams) (*Result, error) {
	correlationID := uuid.New().String()
	start := time.Now()
	log := logger.With("correlation_id", correlationID)

	if err := validateParams(params); err != nil {
		log.Error("generate.bad_params", "error", err)
		return nil, err
	}
	params = withDefaults(params)
	if params.Seed == 0 {
		params.Seed = time.Now().UnixNano()
	}

	if len(dictionary) == 0 {
		log.Error("generate.empty_dictionary")
		return nil, &EmptyDictionaryError{}
	}

	log.Info("generate.start", "letters", letters, "dictionary_size", len(dictionary))

	validWords := wordlist.FindValidWords(letters, dictionary, params.MinWordLength, params.MaxWordLength)
	if len(validWords) < params.MinWordCount {
		err := &InsufficientWordsError{Found: len(validWords), Required: params.MinWordCount}
		log.Error("generate.insufficient_words", "found", len(validWords), "required", params.MinWordCount)
		return nil, err
	}

	// searchWords is the (possibly capped) set handed to placement.Search;
	// validWords stays uncapped so the bonus-word set below still covers
	// every word the letter bag can form, per spec.md's
	// bonus_words = valid_words \ placed invariant.
	searchWords := validWords
	if len(searchWords) > params.MaxWordCount {
		searchWords = searchWords[:params.MaxWordCount]
	}

	wordGraph := graph.Build(searchWords)
	placementCfg := placement.Config{
		Strategy:               params.PlacementStrategy,
		MustIncludeLongestWord: !params.SkipLongestWordRequirement,
		MaxPlacementCandidates: params.MaxPlacementCandidates,
		MaxBacktrackDepth:      params.MaxBacktrackDepth,
	}

	maxAttempts := 2 * params.CandidatesToGenerate
	seen := make(map[string]bool)
	var puzzles []Puzzle

	for attempt := 0; attempt < maxAttempts && len(puzzles) < params.CandidatesToGenerate; attempt++ {
		if err := ctx.Err(); err != nil {
			log.Warn("generate.cancelled", "attempt", attempt)
			return nil, err
		}

		g, err := placement.Search(ctx, searchWords, wordGraph, placementCfg, params.Seed, attempt)
		if err != nil {
			continue
		}

		hash := g.CanonicalHash()
		if seen[hash] {
			continue
		}
		seen[hash] = true

		components := scoring.Score(g)
		overall := scoring.Combine(components.Score(params.Weights), params.FunScore)
		bounds := g.Bounds()

		placedSet := make(map[string]bool, len(g.Placed))
		placedWords := make([]string, len(g.Placed))
		for i, p := range g.Placed {
			placedWords[i] = p.Word
			placedSet[p.Word] = true
		}

		var bonusWords []string
		for _, w := range validWords {
			if !placedSet[w] {
				bonusWords = append(bonusWords, w)
			}
		}

		puzzles = append(puzzles, Puzzle{
			Letters:     letters,
			PlacedWords: placedWords,
			BonusWords:  bonusWords,
			Grid:        g,
			Metrics: PuzzleMetrics{
				OverallScore:  overall,
				Compactness:   components.Compactness,
				Density:       components.Density,
				Intersections: components.Intersections,
				Symmetry:      components.Symmetry,
				WordCount:     len(g.Placed),
				GridWidth:     bounds.Width(),
				GridHeight:    bounds.Height(),
			},
		})
	}

	if len(puzzles) == 0 {
		log.Error("generate.no_valid_layout", "attempts", maxAttempts)
		return nil, &NoValidLayoutError{}
	}

	sort.SliceStable(puzzles, func(i, j int) bool {
		return puzzles[i].Metrics.OverallScore > puzzles[j].Metrics.OverallScore
	})
	for i := range puzzles {
		puzzles[i].ID = i + 1
	}

	log.Info("generate.done", "puzzles", len(puzzles), "elapsed_ms", time.Since(start).Milliseconds())

	return &Result{Puzzles: puzzles, Seed: params.Seed}, nil
}

// String renders a Puzzle's grid as a human-readable block of letters,
// for logging and test failure messages.
func (p Puzzle) String() string {
	if p.Grid == nil || p.Grid.Empty() {
		return "(empty puzzle)"
	}
	b := p.Grid.Bounds()
	cells := p.Grid.Cells()
	out := ""
	for r := b.MinRow; r <= b.MaxRow; r++ {
		for c := b.MinCol; c <= b.MaxCol; c++ {
			letter, ok := cells[grid.CellKey{Row: r, Col: c}]
			if !ok {
				out += "."
				continue
			}
			out += fmt.Sprintf("%c", letter)
		}
		out += "\n"
	}
	return out
}
