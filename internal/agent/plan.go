package agent

import "github.com/guptavanshika1510-jpg/skillmap/internal/parsing"

// buildPlan produces the advisory, human-readable execution plan
// returned with every answer. It documents the steps; nothing
// interprets it.
func buildPlan(intent string, hasSkills, hasDate bool) []string {
	plan := []string{
		"Parse natural language query into intent and filters",
		"Auto-match role and country against dataset values with fuzzy correction",
	}

	if hasSkills {
		plan = append(plan, "Use skills column for skill aggregation")
	} else {
		plan = append(plan, "Extract skills from description-derived values")
	}

	if intent == parsing.IntentRisingSkills || intent == parsing.IntentSkillTrends {
		if hasDate {
			plan = append(plan, "Use date windowing for trend calculations")
		} else {
			plan = append(plan, "Date missing: fallback to top skills with warning")
		}
	}

	plan = append(plan, "Compute result, confidence score, warnings, and persist run logs")
	return plan
}
