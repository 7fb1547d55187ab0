package generator

import (
	"fmt"

	"github.com/crossplay/wordgen/pkg/grid"
	"github.com/crossplay/wordgen/pkg/placement"
)

// InsufficientWordsError is returned when the dictionary yields fewer
// spellable words than GeneratorParams.MinWordCount requires.
type InsufficientWordsError struct {
	Found    int
	Required int
}

func (e *InsufficientWordsError) Error() string {
	return fmt.Sprintf("found %d valid words, need at least %d", e.Found, e.Required)
}

// NoValidLayoutError is returned when every placement attempt within the
// generation budget failed to produce a fully connected grid.
type NoValidLayoutError struct{}

func (e *NoValidLayoutError) Error() string {
	return "no valid grid layout found within the attempt budget"
}

// InvalidPlacementError wraps a placement.Violation surfaced from a
// caller-driven single-placement check (not raised internally by Generate,
// which only ever sees already-filtered legal placements).
type InvalidPlacementError struct {
	Rule placement.Rule
	At   grid.CellKey
}

func (e *InvalidPlacementError) Error() string {
	return fmt.Sprintf("invalid placement: rule %q violated at %v", e.Rule, e.At)
}

// EmptyDictionaryError is returned when Generate is called with no
// dictionary words at all.
type EmptyDictionaryError struct{}

func (e *EmptyDictionaryError) Error() string {
	return "dictionary is empty"
}

// BadParamError is returned when a GeneratorParams field fails validation.
type BadParamError struct {
	Field string
}

func (e *BadParamError) Error() string {
	return fmt.Sprintf("invalid parameter: %s", e.Field)
}
