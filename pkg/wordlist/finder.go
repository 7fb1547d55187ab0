// Package wordlist implements the two dictionary-facing components of
// generation: FindValidWords, which scans a dictionary for every word
// spellable from a letter bag, and Curate, the offline pipeline that
// scores and ranks a raw dictionary into the self-describing Curated
// wordlist format.
package wordlist

import (
	"sort"
	"strings"

	"github.com/crossplay/wordgen/pkg/letters"
)

// FindValidWords scans dictionary for every word whose letters are a
// sub-multiset of letters.From(bag), i.e. every word spellable from the
// given letter bag, restricted to [minLen, maxLen] inclusive. Results are
// deduplicated, uppercased, and sorted by length descending then
// alphabetically ascending, so the same (bag, dictionary, minLen, maxLen)
// always yields the same ordered slice.
func FindValidWords(bag string, dictionary []string, minLen, maxLen int) []string {
	available := letters.From(bag)

	seen := make(map[string]bool)
	var found []string
	for _, word := range dictionary {
		upper := strings.ToUpper(word)
		if len(upper) < minLen || len(upper) > maxLen {
			continue
		}
		if seen[upper] {
			continue
		}
		if !available.Contains(letters.From(upper)) {
			continue
		}
		seen[upper] = true
		found = append(found, upper)
	}

	sort.Slice(found, func(i, j int) bool {
		if len(found[i]) != len(found[j]) {
			return len(found[i]) > len(found[j])
		}
		return found[i] < found[j]
	})
	return found
}
