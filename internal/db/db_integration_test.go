//go:build integration

package db

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	database, err := Connect(ctx, url)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return database
}

func testDataset(filename string, total int) *Dataset {
	skills := "Skills"
	return &Dataset{
		ID:                uuid.New(),
		Filename:          filename,
		UploadedAt:        time.Now().UTC(),
		TotalJobs:         total,
		RoleColumn:        "Job Title",
		CountryColumn:     "Country",
		SkillsColumn:      &skills,
		HasSkillsColumn:   true,
		MappingConfidence: 0.8,
	}
}

func TestIntegration_ReplaceDataset(t *testing.T) {
	database := getTestDB(t)
	defer database.Close()
	ctx := context.Background()

	first := testDataset("first.csv", 1)
	firstRecords := []JobRecord{{
		ID:         uuid.New(),
		DatasetID:  first.ID,
		Role:       "Data Analyst",
		Country:    "USA",
		SkillsText: "sql, excel",
		RawRow:     map[string]string{"Job Title": "Data Analyst"},
	}}
	if err := database.ReplaceDataset(ctx, first, firstRecords); err != nil {
		t.Fatalf("ReplaceDataset failed: %v", err)
	}

	second := testDataset("second.csv", 2)
	secondRecords := []JobRecord{
		{ID: uuid.New(), DatasetID: second.ID, Role: "Data Engineer", Country: "Germany", SkillsText: "spark"},
		{ID: uuid.New(), DatasetID: second.ID, Role: "Data Engineer", Country: "Germany", SkillsText: "airflow"},
	}
	if err := database.ReplaceDataset(ctx, second, secondRecords); err != nil {
		t.Fatalf("ReplaceDataset (second) failed: %v", err)
	}

	latest, err := database.LatestDataset(ctx)
	if err != nil {
		t.Fatalf("LatestDataset failed: %v", err)
	}
	if latest == nil || latest.ID != second.ID {
		t.Fatalf("latest dataset = %+v, want second upload", latest)
	}

	// Replace semantics: the first dataset's records are gone.
	records, err := database.RecordsByDataset(ctx, first.ID)
	if err != nil {
		t.Fatalf("RecordsByDataset failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("old dataset still has %d records after replacement", len(records))
	}

	records, err = database.RecordsByDataset(ctx, second.ID)
	if err != nil {
		t.Fatalf("RecordsByDataset failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("new dataset has %d records, want 2", len(records))
	}
}

func TestIntegration_AgentRuns(t *testing.T) {
	database := getTestDB(t)
	defer database.Close()
	ctx := context.Background()

	intent := "top_skills"
	filters, _ := json.Marshal(map[string]string{"role_matched": "Data Analyst"})
	warnings, _ := json.Marshal([]string{})
	finished := time.Now().UTC()

	run := &AgentRun{
		ID:            uuid.New(),
		Query:         "top skills for Data Analyst in USA",
		ParsedIntent:  &intent,
		ParsedFilters: filters,
		Warnings:      warnings,
		Status:        RunStatusCompleted,
		Confidence:    0.99,
		StartedAt:     time.Now().UTC().Add(-time.Second),
		FinishedAt:    &finished,
	}
	if err := database.AppendRun(ctx, run); err != nil {
		t.Fatalf("AppendRun failed: %v", err)
	}

	runs, err := database.RecentRuns(ctx, 5)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) == 0 {
		t.Fatal("no runs returned")
	}
	if runs[0].ID != run.ID {
		t.Errorf("most recent run = %s, want %s", runs[0].ID, run.ID)
	}
}
