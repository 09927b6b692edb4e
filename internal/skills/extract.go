// Package skills turns raw cells or free-text descriptions into
// normalized skill token sequences and defines their canonical
// serialized form.
package skills

import (
	"regexp"
	"strings"

	"github.com/guptavanshika1510-jpg/skillmap/internal/textutil"
)

// Joiner is the canonical separator used when persisting an extracted
// skill list as a single string.
const Joiner = ", "

var delimiterRe = regexp.MustCompile(`[,;|/]`)

// SplitDelimited splits a raw skills cell on any of `, ; | /`, trims
// and case-folds each token, strips leading/trailing hyphens and
// spaces, drops empties and deduplicates preserving first-seen order.
func SplitDelimited(value string) []string {
	text := textutil.Normalize(value)
	if text == "" {
		return nil
	}

	var cleaned []string
	for _, part := range delimiterRe.Split(text, -1) {
		p := strings.Trim(textutil.Normalize(part), "- ")
		if p == "" {
			continue
		}
		cleaned = append(cleaned, strings.ToLower(p))
	}

	seen := make(map[string]bool, len(cleaned))
	var unique []string
	for _, skill := range cleaned {
		if seen[skill] {
			continue
		}
		seen[skill] = true
		unique = append(unique, skill)
	}
	return unique
}

// FromDescription scans free text for lexicon terms using
// word-boundary matches and returns the hits sorted alphabetically.
// Order is a presence signal here, not a ranking.
func FromDescription(description string) []string {
	text := strings.ToLower(textutil.Normalize(description))
	if text == "" {
		return nil
	}

	var found []string
	for _, p := range lexiconPatterns {
		if p.re.MatchString(text) {
			found = append(found, p.term)
		}
	}
	return found
}

// Join serializes an extracted skill list into its canonical persisted
// form.
func Join(skills []string) string {
	return strings.Join(skills, Joiner)
}
