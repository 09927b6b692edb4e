package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guptavanshika1510-jpg/skillmap/internal/agent"
	"github.com/guptavanshika1510-jpg/skillmap/internal/analytics"
	"github.com/guptavanshika1510-jpg/skillmap/internal/ingestion"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	summary := &ingestion.Summary{
		Filename:          "jobs.csv",
		TotalJobs:         120,
		SkillsSource:      "skills_column",
		MappingConfidence: 0.88,
		DateRange:         &ingestion.DateRange{Start: "2024-01-05", End: "2024-12-20"},
		TopRoles:          []ingestion.RoleCount{{Role: "Data Analyst", Count: 60}},
		TopCountries:      []ingestion.CountryCount{{Country: "USA", Count: 80}},
	}

	p.PrintSummary(summary)
	output := buf.String()

	assert.Contains(t, output, "DATASET SUMMARY")
	assert.Contains(t, output, "jobs.csv")
	assert.Contains(t, output, "Data Analyst")
	assert.Contains(t, output, "USA")
	assert.Contains(t, output, "2024-12-20")
}

func TestPrintSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResponseTopSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resp := &agent.Response{
		Status:       agent.StatusCompleted,
		Message:      "Agent execution completed.",
		ParsedIntent: analytics.IntentTopSkills,
		ParsedFilters: agent.Filters{
			RoleMatched:       "Data Analyst",
			RoleMatchScore:    1.0,
			CountryMatched:    "USA",
			CountryMatchScore: 1.0,
		},
		Result: &analytics.TopSkillsResult{
			Intent: analytics.IntentTopSkills,
			Items:  []analytics.SkillCount{{Skill: "sql", Count: 42}, {Skill: "excel", Count: 17}},
		},
		Confidence: 0.99,
	}

	p.PrintResponse(resp)
	output := buf.String()

	assert.Contains(t, output, "AGENT RESPONSE")
	assert.Contains(t, output, "TOP SKILLS")
	assert.Contains(t, output, "sql")
	assert.Contains(t, output, "42")
	assert.Contains(t, output, "0.990")
}

func TestPrintResponseRisingSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	pct := 400.0
	resp := &agent.Response{
		Status: agent.StatusCompleted,
		Result: &analytics.RisingSkillsResult{
			Intent: analytics.IntentRisingSkills,
			Items: []analytics.RisingSkill{
				{Skill: "sql", CurrentCount: 5, PreviousCount: 1, Growth: 4, GrowthPercent: &pct},
				{Skill: "airflow", CurrentCount: 2, PreviousCount: 0, Growth: 2},
			},
		},
	}

	p.PrintResponse(resp)
	output := buf.String()

	assert.Contains(t, output, "RISING SKILLS")
	assert.Contains(t, output, "+400.0%")
	assert.Contains(t, output, "(new)")
}

func TestPrintResponseClarification(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resp := &agent.Response{
		Status:                 agent.StatusClarificationNeeded,
		Message:                "Need a bit more detail before execution.",
		Warnings:               []string{"Incomplete query. Clarification requested."},
		ClarificationQuestions: []string{"Which job role should I analyze?"},
	}

	p.PrintResponse(resp)
	output := buf.String()

	assert.Contains(t, output, "CLARIFICATION NEEDED")
	assert.Contains(t, output, "Which job role")
	assert.Contains(t, output, "WARNINGS")
}

func TestPrintResponse_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResponse(nil)

	assert.Empty(t, buf.String())
}
