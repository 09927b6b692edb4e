// Package matching implements the tiered fuzzy matcher used for both
// schema column detection and query entity resolution.
package matching

import (
	"strings"

	"github.com/guptavanshika1510-jpg/skillmap/internal/textutil"
)

// ContainsScore is the fixed score assigned when one string contains
// the other but they are not equal.
const ContainsScore = 0.92

// Resolve matches hint against candidates and returns the best
// candidate with its score. Tiers are evaluated in order, first hit
// wins: exact case-insensitive equality (1.0), substring containment
// in either direction (0.92, longest candidate wins ties), then a
// similarity ratio over every candidate. If the best ratio is below
// threshold the match is "" but the score is still reported so callers
// can fold it into confidence. An empty hint yields ("", 0.0) without
// scanning candidates.
func Resolve(hint string, candidates []string, threshold float64) (string, float64) {
	q := strings.ToLower(strings.TrimSpace(hint))
	if q == "" {
		return "", 0.0
	}

	for _, c := range candidates {
		if c != "" && strings.ToLower(strings.TrimSpace(c)) == q {
			return c, 1.0
		}
	}

	var contains string
	for _, c := range candidates {
		if c == "" {
			continue
		}
		cl := strings.ToLower(strings.TrimSpace(c))
		if strings.Contains(q, cl) || strings.Contains(cl, q) {
			if len(c) > len(contains) {
				contains = c
			}
		}
	}
	if contains != "" {
		return contains, ContainsScore
	}

	var best string
	var bestScore float64
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if score := textutil.Similarity(q, c); score > bestScore {
			bestScore = score
			best = c
		}
	}

	if bestScore < threshold {
		return "", bestScore
	}
	return best, bestScore
}
