package matching

import "testing"

func TestResolveExact(t *testing.T) {
	candidates := []string{"Data Analyst", "Data Engineer", "Data Scientist"}

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"identical", "Data Analyst", "Data Analyst"},
		{"case insensitive", "data analyst", "Data Analyst"},
		{"whitespace trimmed", "  DATA ENGINEER ", "Data Engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, score := Resolve(tt.hint, candidates, 0.4)
			if match != tt.want {
				t.Errorf("Resolve(%q) match = %q, want %q", tt.hint, match, tt.want)
			}
			if score != 1.0 {
				t.Errorf("Resolve(%q) score = %v, want 1.0", tt.hint, score)
			}
		})
	}
}

func TestResolveContains(t *testing.T) {
	// Neither candidate equals the hint; both are contained in it.
	// The longest candidate wins the tie.
	candidates := []string{"Analyst", "Senior Data Analyst II"}
	match, score := Resolve("senior data analyst", candidates, 0.4)
	if match != "Senior Data Analyst II" {
		t.Errorf("match = %q, want longest containing candidate", match)
	}
	if score != ContainsScore {
		t.Errorf("score = %v, want %v", score, ContainsScore)
	}
}

func TestResolveSimilarityTier(t *testing.T) {
	candidates := []string{"United States", "Germany"}
	match, score := Resolve("Unted Staes", candidates, 0.4)
	if match != "United States" {
		t.Errorf("match = %q, want %q", match, "United States")
	}
	if score <= 0.4 || score >= 1.0 {
		t.Errorf("score = %v, want in (0.4, 1.0)", score)
	}
}

func TestResolveBelowThreshold(t *testing.T) {
	candidates := []string{"France", "Germany"}
	match, score := Resolve("zzzz", candidates, 0.4)
	if match != "" {
		t.Errorf("match = %q, want no match", match)
	}
	// The best score is still reported for confidence scoring.
	if score < 0.0 || score >= 0.4 {
		t.Errorf("score = %v, want reported best score below threshold", score)
	}
}

func TestResolveEmptyHint(t *testing.T) {
	for _, hint := range []string{"", "   "} {
		match, score := Resolve(hint, []string{"USA"}, 0.4)
		if match != "" || score != 0.0 {
			t.Errorf("Resolve(%q) = (%q, %v), want (\"\", 0.0)", hint, match, score)
		}
	}
}

func TestResolveSkipsEmptyCandidates(t *testing.T) {
	match, score := Resolve("usa", []string{"", "USA"}, 0.4)
	if match != "USA" || score != 1.0 {
		t.Errorf("Resolve = (%q, %v), want (USA, 1.0)", match, score)
	}
}
