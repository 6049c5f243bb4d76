// Package normalizer canonicalizes raw utterance text before classification:
// case folding, golf-slang expansion, spelled-out-number conversion, and
// profanity masking. Deterministic and pure: no I/O, no clocks.
package normalizer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Normalizer rewrites raw input into the canonical form the matchers expect.
type Normalizer struct {
	slangPatterns     []replacement
	numberPatterns    []replacement
	profanityPatterns []replacement
}

type replacement struct {
	pattern *regexp.Regexp
	from    string
	to      string
}

// New creates a Normalizer with all patterns precompiled.
func New() *Normalizer {
	return &Normalizer{
		slangPatterns:     compileDictionary(slangDictionary),
		numberPatterns:    compileDictionary(numberWords),
		profanityPatterns: compileProfanity(profanityList),
	}
}

// Normalize canonicalizes text. Application order is fixed: case folding,
// slang expansion, number conversion, profanity masking.
func (n *Normalizer) Normalize(text string) Result {
	result := Result{Applied: []string{}}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return result
	}

	folded := strings.ToLower(trimmed)
	if folded != trimmed {
		result.Applied = append(result.Applied, ModLowercase)
	}

	current := folded
	for _, r := range n.slangPatterns {
		next := r.pattern.ReplaceAllString(current, r.to)
		if next != current {
			result.Applied = append(result.Applied, fmt.Sprintf("%s:%s=%s", ModSlang, r.from, r.to))
			current = next
		}
	}

	for _, r := range n.numberPatterns {
		next := r.pattern.ReplaceAllString(current, r.to)
		if next != current {
			result.Applied = append(result.Applied, fmt.Sprintf("%s:%s=%s", ModNumber, r.from, r.to))
			current = next
		}
	}

	for _, r := range n.profanityPatterns {
		next := r.pattern.ReplaceAllString(current, profanityMask)
		if next != current {
			result.Applied = append(result.Applied, ModProfanity)
			current = next
		}
	}

	result.Normalized = current
	return result
}

// compileDictionary builds whole-word patterns in sorted key order so the
// applied-modification list is stable across runs.
func compileDictionary(dict map[string]string) []replacement {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	// Longer keys first so "dance floor" wins over any overlapping shorter
	// entry; ties broken lexicographically for determinism.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	out := make([]replacement, 0, len(keys))
	for _, k := range keys {
		out = append(out, replacement{
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`),
			from:    k,
			to:      dict[k],
		})
	}
	return out
}

func compileProfanity(words []string) []replacement {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	out := make([]replacement, 0, len(sorted))
	for _, w := range sorted {
		out = append(out, replacement{
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`),
			from:    w,
			to:      profanityMask,
		})
	}
	return out
}
