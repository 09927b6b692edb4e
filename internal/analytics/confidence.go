package analytics

import "math"

// Confidence derives a single trust score for an agent answer from
// intent recognition, entity match quality and accumulated warnings.
// The result is clamped to [0.1, 0.99] and rounded to 3 decimals.
func Confidence(intent string, roleScore, countryScore float64, warningCount int) float64 {
	score := 0.5
	if intent != "" {
		score += 0.2
	}
	if roleScore > 0 {
		score += math.Min(roleScore, 1.0) * 0.15
	}
	if countryScore > 0 {
		score += math.Min(countryScore, 1.0) * 0.15
	}
	if warningCount > 0 {
		score -= math.Min(0.2, 0.05*float64(warningCount))
	}

	score = math.Max(0.1, math.Min(0.99, score))
	return math.Round(score*1000) / 1000
}
