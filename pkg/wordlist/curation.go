package wordlist

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/crossplay/wordgen/pkg/letters"
)

// minBucketLength and maxBucketLength bound the length buckets a
// dictionary is curated into; words outside this range never score a
// "fun" rating and are dropped during curation.
const (
	minBucketLength = 3
	maxBucketLength = 8
)

// subWordCountCaps gives, for each bucket length, the sub-word count that
// already earns the maximum count-bonus component: a seven-letter word
// with 80 sub-words is already about as rich as the feature can reward.
var subWordCountCaps = map[int]int{3: 3, 4: 12, 5: 30, 6: 50, 7: 80, 8: 100}

// CuratedWord is one dictionary entry's curated record: the sub-words
// spellable from its own letters, and its percentile-ranked fun score
// among words of the same length.
type CuratedWord struct {
	SubWords     []string `json:"sub_words"`
	SubWordCount int      `json:"sub_word_count"`
	FunScore     float64  `json:"fun_score"`
}

// Metadata self-describes a curated wordlist dump, per spec.md §6.
type Metadata struct {
	Version     string `json:"version"`
	GeneratedAt string `json:"generated_at"`
	MinSubWords int     `json:"min_sub_words"`
	Description string `json:"description"`
}

// Curated is the full curated wordlist: a self-describing header, a
// length-bucketed index for generation lookups, and the per-word curated
// records.
type Curated struct {
	Metadata      Metadata                  `json:"metadata"`
	WordsByLength map[string][]string       `json:"words_by_length"`
	Words         map[string]CuratedWord    `json:"words"`
}

// DedupStats reports how anagram deduplication changed the candidate set.
type DedupStats struct {
	Original   int
	FilteredOut int
	Kept       int
}

// Curate builds a Curated wordlist from a raw dictionary: it computes
// each word's sub-words and a weighted raw fun score, drops words with
// fewer than minSubWords sub-words, ranks the rest into a per-length
// percentile, and finally deduplicates anagrams by keeping only the
// highest-scoring spelling of each letter signature. excluded names words
// that must be kept out of both the candidate set and every other word's
// sub-word list, per spec.md §6's excluded-list check. Per-word sub-word
// computation runs one goroutine per word, joined by an errgroup; ctx
// cancellation is observed during that stage.
func Curate(ctx context.Context, dictionary, excluded []string, minSubWords int) (*Curated, DedupStats, error) {
	excludedSet := make(map[string]bool, len(excluded))
	for _, w := range excluded {
		excludedSet[toUpperWord(w)] = true
	}

	normalized := normalizeDictionary(dictionary, excludedSet)

	bucketed := make([]string, 0, len(normalized))
	for _, w := range normalized {
		if len(w) >= minBucketLength && len(w) <= maxBucketLength {
			bucketed = append(bucketed, w)
		}
	}

	subWords, err := computeSubWords(ctx, bucketed, normalized)
	if err != nil {
		return nil, DedupStats{}, err
	}

	type scored struct {
		word     string
		subWords []string
		raw      float64
	}
	rawByLength := make(map[int][]scored)
	for _, w := range bucketed {
		sw := subWords[w]
		if len(sw) < minSubWords {
			continue
		}
		raw := rawFunScore(w, sw)
		rawByLength[len(w)] = append(rawByLength[len(w)], scored{word: w, subWords: sw, raw: raw})
	}

	funScore := make(map[string]float64, len(bucketed))
	for length, group := range rawByLength {
		sort.Slice(group, func(i, j int) bool {
			if group[i].raw != group[j].raw {
				return group[i].raw < group[j].raw
			}
			return group[i].word < group[j].word
		})
		n := len(group)
		for i, g := range group {
			var percentile float64
			if n > 1 {
				percentile = float64(i) / float64(n-1)
			} else {
				percentile = 0.5
			}
			funScore[g.word] = math.Round(percentile*1000) / 1000
		}
		_ = length
	}

	var candidates []string
	for _, w := range bucketed {
		if len(subWords[w]) >= minSubWords {
			candidates = append(candidates, w)
		}
	}
	sort.Strings(candidates)

	kept, dropped := dedupAnagrams(candidates, funScore)
	stats := DedupStats{Original: len(candidates), FilteredOut: len(dropped), Kept: len(kept)}

	wordsByLength := make(map[string][]string)
	words := make(map[string]CuratedWord, len(kept))
	for _, w := range kept {
		bucket := strconv.Itoa(len(w))
		wordsByLength[bucket] = append(wordsByLength[bucket], w)
		words[w] = CuratedWord{
			SubWords:     subWords[w],
			SubWordCount: len(subWords[w]),
			FunScore:     funScore[w],
		}
	}
	for bucket := range wordsByLength {
		list := wordsByLength[bucket]
		sort.Slice(list, func(i, j int) bool {
			if funScore[list[i]] != funScore[list[j]] {
				return funScore[list[i]] > funScore[list[j]]
			}
			return list[i] < list[j]
		})
	}

	curated := &Curated{
		Metadata: Metadata{
			Version:     "2.0",
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			MinSubWords: minSubWords,
			Description: "Curated letter-bag wordlist: words ranked by fun score within their length bucket, anagrams deduplicated to their highest-scoring spelling.",
		},
		WordsByLength: wordsByLength,
		Words:         words,
	}
	return curated, stats, nil
}

// ToJSON renders c in the self-describing persisted format.
func (c *Curated) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

func normalizeDictionary(dictionary []string, excluded map[string]bool) []string {
	seen := make(map[string]bool, len(dictionary))
	out := make([]string, 0, len(dictionary))
	for _, w := range dictionary {
		upper := toUpperWord(w)
		if upper == "" || seen[upper] || excluded[upper] {
			continue
		}
		seen[upper] = true
		out = append(out, upper)
	}
	return out
}

func toUpperWord(w string) string {
	runes := []rune(w)
	for i, r := range runes {
		if r >= 'a' && r <= 'z' {
			runes[i] = r - ('a' - 'A')
		}
	}
	return string(runes)
}

// computeSubWords finds, for each word in words, every other word in the
// full dictionary whose letters are a sub-multiset of it (excluding
// itself), restricted to spec.md §4.I's 3 <= |s| <= |w| bound — dictionary
// entries shorter than minBucketLength (e.g. "A", "AN") never count as
// sub-words. Each list is sorted by length descending, then
// alphabetically. The per-word scan runs in one goroutine per word,
// joined by an errgroup, over a shared read-only dataset.
func computeSubWords(ctx context.Context, words, dictionary []string) (map[string][]string, error) {
	multisets := make(map[string]letters.Multiset, len(dictionary))
	for _, w := range dictionary {
		multisets[w] = letters.From(w)
	}

	results := make(map[string][]string, len(words))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, word := range words {
		word := word
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bag := multisets[word]
			var subs []string
			for _, candidate := range dictionary {
				if candidate == word || len(candidate) > len(word) || len(candidate) < minBucketLength {
					continue
				}
				if bag.Contains(multisets[candidate]) {
					subs = append(subs, candidate)
				}
			}
			sort.Slice(subs, func(i, j int) bool {
				if len(subs[i]) != len(subs[j]) {
					return len(subs[i]) > len(subs[j])
				}
				return subs[i] < subs[j]
			})
			mu.Lock()
			results[word] = subs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// rawFunScore computes the weighted raw fun-score features for a word
// given its already-computed sub-words. The result is not yet
// percentile-ranked; Curate does that per length bucket afterward.
func rawFunScore(word string, subWords []string) float64 {
	diversity := letterDiversity(word)
	stdevComponent := subWordLengthStdevComponent(subWords)
	countBonus := subWordCountBonus(len(word), len(subWords))
	meaty := meatyRatio(subWords)
	long := longWordBonus(subWords)

	return 0.20*diversity + 0.20*stdevComponent + 0.30*countBonus + 0.15*meaty + 0.15*long
}

func letterDiversity(word string) float64 {
	if len(word) == 0 {
		return 0
	}
	seen := make(map[rune]bool)
	for _, r := range word {
		seen[r] = true
	}
	return float64(len(seen)) / float64(len(word))
}

func subWordLengthStdevComponent(subWords []string) float64 {
	if len(subWords) == 0 {
		return 0
	}
	lengths := make([]float64, len(subWords))
	sum := 0.0
	for i, w := range subWords {
		lengths[i] = float64(len(w))
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))

	variance := 0.0
	for _, l := range lengths {
		d := l - mean
		variance += d * d
	}
	variance /= float64(len(lengths))
	stdev := math.Sqrt(variance)

	return clamp01(stdev / 2.5)
}

func subWordCountBonus(wordLength, subWordCount int) float64 {
	bonusCap := subWordCountCaps[wordLength]
	if bonusCap == 0 {
		bonusCap = subWordCountCaps[maxBucketLength]
	}
	if subWordCount >= bonusCap {
		return 1
	}
	return float64(subWordCount) / float64(bonusCap)
}

func meatyRatio(subWords []string) float64 {
	if len(subWords) == 0 {
		return 0
	}
	meaty := 0
	for _, w := range subWords {
		if len(w) >= 4 {
			meaty++
		}
	}
	return float64(meaty) / float64(len(subWords))
}

func longWordBonus(subWords []string) float64 {
	long := 0
	for _, w := range subWords {
		if len(w) >= 5 {
			long++
		}
	}
	return clamp01(float64(long) / 5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// dedupAnagrams keeps only the highest-funScore spelling within each
// letter-signature group. Ties keep the alphabetically first spelling,
// for determinism.
func dedupAnagrams(words []string, funScore map[string]float64) (kept []string, dropped []string) {
	bestForSignature := make(map[string]string)
	for _, w := range words {
		sig := letters.From(w).Signature()
		current, ok := bestForSignature[sig]
		if !ok {
			bestForSignature[sig] = w
			continue
		}
		if funScore[w] > funScore[current] || (funScore[w] == funScore[current] && w < current) {
			bestForSignature[sig] = w
		}
	}

	keptSet := make(map[string]bool, len(bestForSignature))
	for _, w := range bestForSignature {
		keptSet[w] = true
	}
	for _, w := range words {
		if keptSet[w] {
			kept = append(kept, w)
		} else {
			dropped = append(dropped, w)
		}
	}
	sort.Strings(kept)
	sort.Strings(dropped)
	return kept, dropped
}
