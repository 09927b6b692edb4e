package db

import (
	"context"
	"fmt"
)

// AppendRun stores one immutable agent run audit record.
func (db *DB) AppendRun(ctx context.Context, run *AgentRun) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO agent_runs (
			id, dataset_id, query, parsed_intent, parsed_filters,
			execution_plan, output_summary, status, confidence, warnings,
			started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		run.ID, run.DatasetID, run.Query, run.ParsedIntent, run.ParsedFilters,
		run.ExecutionPlan, run.OutputSummary, run.Status, run.Confidence, run.Warnings,
		run.StartedAt, run.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append agent run: %w", err)
	}
	return nil
}

// RecentRuns returns the most recent agent runs, newest first.
func (db *DB) RecentRuns(ctx context.Context, limit int) ([]AgentRun, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, dataset_id, query, parsed_intent, parsed_filters,
			execution_plan, output_summary, status, confidence, warnings,
			started_at, finished_at
		 FROM agent_runs
		 ORDER BY started_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query agent runs: %w", err)
	}
	defer rows.Close()

	var runs []AgentRun
	for rows.Next() {
		var run AgentRun
		if err := rows.Scan(
			&run.ID, &run.DatasetID, &run.Query, &run.ParsedIntent, &run.ParsedFilters,
			&run.ExecutionPlan, &run.OutputSummary, &run.Status, &run.Confidence, &run.Warnings,
			&run.StartedAt, &run.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan agent run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate agent runs: %w", err)
	}
	return runs, nil
}
