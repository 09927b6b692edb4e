// Package parsing implements the rule-based natural language query
// parser. It never fails: unresolved fields are zero values consumed
// by the orchestrator's clarification logic.
package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Recognized intents.
const (
	IntentTopSkills    = "top_skills"
	IntentRisingSkills = "rising_skills"
	IntentSkillTrends  = "skill_trends"
)

// ParsedQuery is the structured reading of a free-text question.
// Empty strings and zero TimeValue mean the field was not resolved.
type ParsedQuery struct {
	Intent      string
	RoleHint    string
	CountryHint string
	TimeValue   int
	TimeUnit    string
}

// intentRules are evaluated in order; the first bucket with any
// keyword present wins.
var intentRules = []struct {
	intent   string
	keywords []string
}{
	{IntentRisingSkills, []string{"rising", "increase", "growing", "fastest growing"}},
	{IntentSkillTrends, []string{"trend", "trends", "over time", "monthly"}},
	{IntentTopSkills, []string{"top", "most", "best", "leading"}},
}

// The trailing boundary stops a captured hint before temporal phrases,
// a question mark or end of string.
var (
	combinedHintRe = regexp.MustCompile(`(?i)\bfor\s+(.+?)\s+in\s+(.+?)(?:\s+(?:for\s+last|last|during|over)\b|\?|$)`)
	roleHintRe     = regexp.MustCompile(`(?i)\bfor\s+(.+?)(?:\s+for\b|\s+in\b|\?|$)`)
	countryHintRe  = regexp.MustCompile(`(?i)\bin\s+(.+?)(?:\s+(?:for\s+last|last|during|over)\b|\?|$)`)

	lastTimeRe = regexp.MustCompile(`last\s+(\d+)\s+(day|days|week|weeks|month|months|year|years)`)
	bareTimeRe = regexp.MustCompile(`(\d+)\s+(day|days|week|weeks|month|months|year|years)`)
)

// DetectIntent returns the first matching intent bucket, defaulting to
// top_skills when the query mentions skills at all.
func DetectIntent(query string) string {
	q := strings.ToLower(query)
	for _, rule := range intentRules {
		for _, w := range rule.keywords {
			if strings.Contains(q, w) {
				return rule.intent
			}
		}
	}
	if strings.Contains(q, "skills") {
		return IntentTopSkills
	}
	return ""
}

// ParseHints extracts role and country hints. A single combined
// "for <role> in <country>" pattern is tried first; otherwise the two
// independent patterns each contribute whatever they match.
func ParseHints(query string) (role, country string) {
	q := strings.TrimSpace(query)

	if m := combinedHintRe.FindStringSubmatch(q); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}

	if m := roleHintRe.FindStringSubmatch(q); m != nil {
		role = strings.TrimSpace(m[1])
	}
	if m := countryHintRe.FindStringSubmatch(q); m != nil {
		country = strings.TrimSpace(m[1])
	}
	return role, country
}

// ParseTimeRange extracts a "last N units" window, falling back to a
// bare "N units" phrase. Absence yields (0, "").
func ParseTimeRange(query string) (int, string) {
	q := strings.ToLower(query)

	if m := lastTimeRe.FindStringSubmatch(q); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, m[2]
	}
	if m := bareTimeRe.FindStringSubmatch(q); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, m[2]
	}
	return 0, ""
}

// Parse is the stateless text -> ParsedQuery function.
func Parse(query string) ParsedQuery {
	role, country := ParseHints(query)
	value, unit := ParseTimeRange(query)
	return ParsedQuery{
		Intent:      DetectIntent(query),
		RoleHint:    role,
		CountryHint: country,
		TimeValue:   value,
		TimeUnit:    unit,
	}
}

// WindowDuration converts a parsed time value and unit into a
// duration. Missing values default to 180 days. Months count as 30
// days and years as 365.
func WindowDuration(value int, unit string) time.Duration {
	if value == 0 || unit == "" {
		return 180 * 24 * time.Hour
	}
	u := strings.ToLower(unit)
	switch {
	case strings.Contains(u, "day"):
		return time.Duration(value) * 24 * time.Hour
	case strings.Contains(u, "week"):
		return time.Duration(value) * 7 * 24 * time.Hour
	case strings.Contains(u, "year"):
		return time.Duration(value) * 365 * 24 * time.Hour
	default:
		return time.Duration(value) * 30 * 24 * time.Hour
	}
}
