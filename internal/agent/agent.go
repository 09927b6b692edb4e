// Package agent orchestrates one query execution: parsing, entity
// resolution, the clarification protocol, analytics dispatch,
// confidence scoring and run logging.
package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/guptavanshika1510-jpg/skillmap/internal/analytics"
	"github.com/guptavanshika1510-jpg/skillmap/internal/db"
	"github.com/guptavanshika1510-jpg/skillmap/internal/matching"
	"github.com/guptavanshika1510-jpg/skillmap/internal/parsing"
	"github.com/guptavanshika1510-jpg/skillmap/internal/skills"
)

// resolveThreshold is the minimum similarity for a hint to count as
// resolved against dataset values.
const resolveThreshold = 0.4

// Store is the persistence surface the orchestrator needs.
type Store interface {
	LatestDataset(ctx context.Context) (*db.Dataset, error)
	RecordsByDataset(ctx context.Context, datasetID uuid.UUID) ([]db.JobRecord, error)
	AppendRun(ctx context.Context, run *db.AgentRun) error
}

// Agent answers free-text analytic questions against the current
// dataset.
type Agent struct {
	store  Store
	logger *slog.Logger
}

// New creates an agent backed by the given store.
func New(store Store, logger *slog.Logger) *Agent {
	return &Agent{store: store, logger: logger}
}

// Query runs the full orchestration for one question. It only returns
// an error on storage failures; every domain outcome, including
// missing data and underspecified queries, is expressed in the
// Response status.
func (a *Agent) Query(ctx context.Context, query string) (*Response, error) {
	dataset, err := a.store.LatestDataset(ctx)
	if err != nil {
		return nil, err
	}
	if dataset == nil {
		return &Response{
			Status:                 StatusError,
			Message:                "No dataset uploaded yet.",
			ExecutionPlan:          []string{},
			Warnings:               []string{"Upload a dataset first."},
			ClarificationQuestions: []string{},
		}, nil
	}

	startedAt := time.Now().UTC()
	parsed := parsing.Parse(query)

	records, err := a.store.RecordsByDataset(ctx, dataset.ID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Response{
			Status:                 StatusError,
			Message:                "Dataset is available but contains no records.",
			ExecutionPlan:          []string{},
			Warnings:               []string{"Upload a non-empty dataset."},
			ClarificationQuestions: []string{},
		}, nil
	}

	roles := distinctValues(records, func(r db.JobRecord) string { return r.Role })
	countries := distinctValues(records, func(r db.JobRecord) string { return r.Country })

	roleMatch, roleScore := matching.Resolve(parsed.RoleHint, roles, resolveThreshold)
	countryMatch, countryScore := matching.Resolve(parsed.CountryHint, countries, resolveThreshold)

	var clarifications []string
	if parsed.Intent == "" {
		clarifications = append(clarifications, "Do you want top skills, rising skills, or trends?")
	}
	if roleMatch == "" {
		clarifications = append(clarifications, "Which job role should I analyze?")
	}
	if countryMatch == "" && len(countries) > 1 {
		clarifications = append(clarifications, "Which country should I filter by?")
	}

	planIntent := parsed.Intent
	if planIntent == "" {
		planIntent = "unknown"
	}
	plan := buildPlan(planIntent, dataset.HasSkillsColumn, dataset.HasDateColumn)

	filters := Filters{
		RoleRequested:     parsed.RoleHint,
		RoleMatched:       roleMatch,
		RoleMatchScore:    round3(roleScore),
		CountryRequested:  parsed.CountryHint,
		CountryMatched:    countryMatch,
		CountryMatchScore: round3(countryScore),
		Time:              timeFilter(parsed),
	}

	if len(clarifications) > 0 {
		confidence := analytics.Confidence(parsed.Intent, roleScore, countryScore, 1)
		resp := &Response{
			Status:                 StatusClarificationNeeded,
			Message:                "Need a bit more detail before execution.",
			ExecutionPlan:          plan,
			ParsedIntent:           parsed.Intent,
			ParsedFilters:          filters,
			Confidence:             confidence,
			Warnings:               []string{"Incomplete query. Clarification requested."},
			ClarificationQuestions: clarifications,
		}
		a.logRun(ctx, dataset.ID, query, parsed.Intent, resp, startedAt,
			map[string]any{"clarification_questions": clarifications})
		return resp, nil
	}

	// Warnings start as an empty slice so the response always carries
	// a JSON array, never null.
	warnings := []string{}
	skillRows := explode(records)

	// An unresolved country never matches, so the first pass comes up
	// empty and the role-level expansion below kicks in.
	var filtered []analytics.SkillRow
	if countryMatch != "" {
		filtered = filterByRoleCountry(skillRows, roleMatch, countryMatch)
	}
	if len(filtered) == 0 {
		filtered = filterByRole(skillRows, roleMatch)
		warnings = append(warnings, "No exact country match after filtering; expanded to role-level results.")
	}

	intent := parsed.Intent
	if intent == "" {
		intent = parsing.IntentTopSkills
	}

	var result analytics.Result
	switch intent {
	case parsing.IntentRisingSkills:
		if dataset.HasDateColumn {
			window := parsing.WindowDuration(parsed.TimeValue, parsed.TimeUnit)
			result = &analytics.RisingSkillsResult{
				Intent: analytics.IntentRisingSkills,
				Items:  analytics.RisingSkills(filtered, window),
			}
		} else {
			warnings = append(warnings, "Date column missing; fallback to top skills.")
			result = &analytics.TopSkillsResult{
				Intent: analytics.IntentTopSkillsFallback,
				Items:  analytics.TopSkills(filtered),
			}
		}
	case parsing.IntentSkillTrends:
		if dataset.HasDateColumn {
			result = &analytics.TrendResult{
				Intent: analytics.IntentSkillTrends,
				Data:   analytics.TrendData{Series: analytics.SkillTrends(filtered)},
			}
		} else {
			warnings = append(warnings, "Date column missing; fallback to top skills.")
			result = &analytics.TopSkillsResult{
				Intent: analytics.IntentTopSkillsFallback,
				Items:  analytics.TopSkills(filtered),
			}
		}
	default:
		result = &analytics.TopSkillsResult{
			Intent: analytics.IntentTopSkills,
			Items:  analytics.TopSkills(filtered),
		}
	}

	confidence := analytics.Confidence(intent, roleScore, countryScore, len(warnings))
	resp := &Response{
		Status:                 StatusCompleted,
		Message:                "Agent execution completed.",
		ExecutionPlan:          plan,
		ParsedIntent:           intent,
		ParsedFilters:          filters,
		Result:                 result,
		Confidence:             confidence,
		Warnings:               warnings,
		ClarificationQuestions: []string{},
	}
	a.logRun(ctx, dataset.ID, query, intent, resp, startedAt, result)
	return resp, nil
}

// logRun appends one audit record. Logging failures are reported but
// never fail the query itself.
func (a *Agent) logRun(ctx context.Context, datasetID uuid.UUID, query, intent string, resp *Response, startedAt time.Time, output any) {
	finishedAt := time.Now().UTC()

	var intentPtr *string
	if intent != "" {
		intentPtr = &intent
	}
	warnings := resp.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	filtersJSON, _ := json.Marshal(resp.ParsedFilters)
	planJSON, _ := json.Marshal(resp.ExecutionPlan)
	outputJSON, _ := json.Marshal(output)
	warningsJSON, _ := json.Marshal(warnings)

	run := &db.AgentRun{
		ID:            uuid.New(),
		DatasetID:     &datasetID,
		Query:         query,
		ParsedIntent:  intentPtr,
		ParsedFilters: filtersJSON,
		ExecutionPlan: planJSON,
		OutputSummary: outputJSON,
		Status:        resp.Status,
		Confidence:    resp.Confidence,
		Warnings:      warningsJSON,
		StartedAt:     startedAt,
		FinishedAt:    &finishedAt,
	}
	if err := a.store.AppendRun(ctx, run); err != nil {
		a.logger.Error("failed to log agent run", "error", err, "query", query)
	}
}

// explode materializes one SkillRow per skill token per record.
func explode(records []db.JobRecord) []analytics.SkillRow {
	var rows []analytics.SkillRow
	for _, rec := range records {
		for _, skill := range skills.SplitDelimited(rec.SkillsText) {
			rows = append(rows, analytics.SkillRow{
				Role:       rec.Role,
				Country:    rec.Country,
				PostedDate: rec.PostedDate,
				Skill:      skill,
			})
		}
	}
	return rows
}

// filterByRoleCountry selects rows matching both resolved entities.
func filterByRoleCountry(rows []analytics.SkillRow, role, country string) []analytics.SkillRow {
	var out []analytics.SkillRow
	for _, r := range rows {
		if r.Role == role && r.Country == country {
			out = append(out, r)
		}
	}
	return out
}

// filterByRole is the role-level expansion used when no row matches
// the resolved country.
func filterByRole(rows []analytics.SkillRow, role string) []analytics.SkillRow {
	var out []analytics.SkillRow
	for _, r := range rows {
		if r.Role == role {
			out = append(out, r)
		}
	}
	return out
}

// distinctValues collects sorted distinct non-empty values of one
// record field.
func distinctValues(records []db.JobRecord, field func(db.JobRecord) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, rec := range records {
		v := field(rec)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func timeFilter(parsed parsing.ParsedQuery) TimeFilter {
	var tf TimeFilter
	if parsed.TimeValue != 0 {
		v := parsed.TimeValue
		tf.Value = &v
	}
	if parsed.TimeUnit != "" {
		u := parsed.TimeUnit
		tf.Unit = &u
	}
	return tf
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
