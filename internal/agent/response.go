package agent

import (
	"github.com/guptavanshika1510-jpg/skillmap/internal/analytics"
)

// Response statuses mirror the persisted run statuses.
const (
	StatusCompleted           = "completed"
	StatusClarificationNeeded = "clarification_needed"
	StatusError               = "error"
)

// TimeFilter is the parsed time window of a query; nil fields mean no
// window was given.
type TimeFilter struct {
	Value *int    `json:"value"`
	Unit  *string `json:"unit"`
}

// Filters reports what the query asked for and what it resolved to
// against the actual dataset values.
type Filters struct {
	RoleRequested     string     `json:"role_requested,omitempty"`
	RoleMatched       string     `json:"role_matched,omitempty"`
	RoleMatchScore    float64    `json:"role_match_score"`
	CountryRequested  string     `json:"country_requested,omitempty"`
	CountryMatched    string     `json:"country_matched,omitempty"`
	CountryMatchScore float64    `json:"country_match_score"`
	Time              TimeFilter `json:"time"`
}

// Response is the structured answer to one agent query. Every query,
// however malformed, receives one; Status distinguishes the terminal
// outcomes.
type Response struct {
	Status                 string           `json:"status"`
	Message                string           `json:"message"`
	ExecutionPlan          []string         `json:"execution_plan"`
	ParsedIntent           string           `json:"parsed_intent,omitempty"`
	ParsedFilters          Filters          `json:"parsed_filters"`
	Result                 analytics.Result `json:"result"`
	Confidence             float64          `json:"confidence"`
	Warnings               []string         `json:"warnings"`
	ClarificationQuestions []string         `json:"clarification_questions"`
}
