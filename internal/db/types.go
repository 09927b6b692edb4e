package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Skills source labels reported in dataset summaries.
const (
	SkillsSourceColumn      = "skills_column"
	SkillsSourceDescription = "description_extraction"
)

// Agent run statuses.
const (
	RunStatusCompleted           = "completed"
	RunStatusClarificationNeeded = "clarification_needed"
	RunStatusError               = "error"
)

// Dataset describes the most recently ingested table. At most one
// dataset exists at a time; ingestion replaces it wholesale together
// with its records.
type Dataset struct {
	ID                        uuid.UUID `json:"id"`
	Filename                  string    `json:"filename"`
	UploadedAt                time.Time `json:"uploaded_at"`
	TotalJobs                 int       `json:"total_jobs"`
	RoleColumn                string    `json:"role_column"`
	CountryColumn             string    `json:"country_column"`
	SkillsColumn              *string   `json:"skills_column"`
	DescriptionColumn         *string   `json:"description_column"`
	DateColumn                *string   `json:"date_column"`
	HasSkillsColumn           bool      `json:"has_skills_column"`
	UsedDescriptionExtraction bool      `json:"used_description_extraction"`
	HasDateColumn             bool      `json:"has_date_column"`
	MappingConfidence         float64   `json:"mapping_confidence"`
}

// SkillsSource names the skill extraction mode the dataset was
// ingested with.
func (d *Dataset) SkillsSource() string {
	if d.HasSkillsColumn {
		return SkillsSourceColumn
	}
	return SkillsSourceDescription
}

// JobRecord is one normalized ingested row, owned by exactly one
// dataset and cascade-deleted with it. RawRow preserves the original
// cells keyed by source column name for traceability.
type JobRecord struct {
	ID          uuid.UUID         `json:"id"`
	DatasetID   uuid.UUID         `json:"dataset_id"`
	Role        string            `json:"role"`
	Country     string            `json:"country"`
	SkillsText  string            `json:"skills_text"`
	Description string            `json:"description"`
	PostedDate  *time.Time        `json:"posted_date"`
	RawRow      map[string]string `json:"raw_row"`
}

// AgentRun is the immutable audit record of one query execution.
// Structured fields are stored as serialized JSON and embed verbatim
// when a run is marshaled; runs are append only and never updated.
type AgentRun struct {
	ID            uuid.UUID       `json:"id"`
	DatasetID     *uuid.UUID      `json:"dataset_id"`
	Query         string          `json:"query"`
	ParsedIntent  *string         `json:"parsed_intent"`
	ParsedFilters json.RawMessage `json:"parsed_filters"`
	ExecutionPlan json.RawMessage `json:"execution_plan"`
	OutputSummary json.RawMessage `json:"output_summary"`
	Status        string          `json:"status"`
	Confidence    float64         `json:"confidence"`
	Warnings      json.RawMessage `json:"warnings"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at"`
}
