package parsing

import (
	"testing"
	"time"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"top keyword", "top skills for Data Analyst in USA", IntentTopSkills},
		{"most keyword", "most wanted skills", IntentTopSkills},
		{"rising keyword", "rising skills for engineers", IntentRisingSkills},
		{"growing keyword", "fastest growing skills", IntentRisingSkills},
		{"trend keyword", "skill trends for analysts", IntentSkillTrends},
		{"over time phrase", "skills over time", IntentSkillTrends},
		{"monthly keyword", "monthly skill counts", IntentSkillTrends},
		{"skills fallback", "skills", IntentTopSkills},
		{"rising beats top order", "top rising skills", IntentRisingSkills},
		{"unresolved", "what should I learn", ""},
		{"case insensitive", "TOP SKILLS", IntentTopSkills},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectIntent(tt.query); got != tt.want {
				t.Errorf("DetectIntent(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestParseHints(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantRole    string
		wantCountry string
	}{
		{"combined", "top skills for Data Analyst in USA", "Data Analyst", "USA"},
		{"combined with question mark", "top skills for Data Analyst in USA?", "Data Analyst", "USA"},
		{"combined with temporal tail", "rising skills for Data Analyst in USA last 3 months", "Data Analyst", "USA"},
		{"combined with during tail", "trends for Data Engineer in Germany during 2024", "Data Engineer", "Germany"},
		{"role only", "top skills for Data Scientist", "Data Scientist", ""},
		{"country only", "top skills in Canada", "", "Canada"},
		{"neither", "top skills", "", ""},
		{"multi word country", "skills for Analyst in United States", "Analyst", "United States"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, country := ParseHints(tt.query)
			if role != tt.wantRole || country != tt.wantCountry {
				t.Errorf("ParseHints(%q) = (%q, %q), want (%q, %q)",
					tt.query, role, country, tt.wantRole, tt.wantCountry)
			}
		})
	}
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantValue int
		wantUnit  string
	}{
		{"last n months", "rising skills last 3 months", 3, "months"},
		{"last n days", "last 30 days", 30, "days"},
		{"bare n weeks", "skills over 2 weeks", 2, "weeks"},
		{"years", "trends last 1 year", 1, "year"},
		{"absent", "top skills for analysts", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, unit := ParseTimeRange(tt.query)
			if value != tt.wantValue || unit != tt.wantUnit {
				t.Errorf("ParseTimeRange(%q) = (%d, %q), want (%d, %q)",
					tt.query, value, unit, tt.wantValue, tt.wantUnit)
			}
		})
	}
}

func TestParseNeverFails(t *testing.T) {
	for _, q := range []string{"", "???", "for in last", "1234567890", "🚀🚀🚀"} {
		got := Parse(q)
		_ = got // any input must produce a ParsedQuery without panicking
	}
}

func TestParseScenarioB(t *testing.T) {
	got := Parse("top skills for Data Analyst in USA")
	if got.Intent != IntentTopSkills {
		t.Errorf("intent = %q, want top_skills", got.Intent)
	}
	if got.RoleHint != "Data Analyst" || got.CountryHint != "USA" {
		t.Errorf("hints = (%q, %q), want (Data Analyst, USA)", got.RoleHint, got.CountryHint)
	}
	if got.TimeValue != 0 || got.TimeUnit != "" {
		t.Errorf("time = (%d, %q), want absent", got.TimeValue, got.TimeUnit)
	}
}

func TestWindowDuration(t *testing.T) {
	day := 24 * time.Hour
	tests := []struct {
		name  string
		value int
		unit  string
		want  time.Duration
	}{
		{"default", 0, "", 180 * day},
		{"days", 10, "days", 10 * day},
		{"weeks", 2, "weeks", 14 * day},
		{"months", 3, "months", 90 * day},
		{"years", 1, "year", 365 * day},
		{"unit without value", 0, "months", 180 * day},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WindowDuration(tt.value, tt.unit); got != tt.want {
				t.Errorf("WindowDuration(%d, %q) = %v, want %v", tt.value, tt.unit, got, tt.want)
			}
		})
	}
}
