// Package db provides PostgreSQL persistence for datasets, job
// records and agent runs.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the schema when it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS datasets (
			id UUID PRIMARY KEY,
			filename TEXT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			total_jobs INTEGER NOT NULL DEFAULT 0,
			role_column TEXT,
			country_column TEXT,
			skills_column TEXT,
			description_column TEXT,
			date_column TEXT,
			has_skills_column BOOLEAN NOT NULL DEFAULT FALSE,
			used_description_extraction BOOLEAN NOT NULL DEFAULT FALSE,
			has_date_column BOOLEAN NOT NULL DEFAULT FALSE,
			mapping_confidence DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS job_records (
			id UUID PRIMARY KEY,
			dataset_id UUID NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
			role TEXT,
			country TEXT,
			skills_text TEXT,
			description TEXT,
			posted_date TIMESTAMP,
			raw_row JSONB
		)`,
		`CREATE INDEX IF NOT EXISTS idx_job_records_dataset ON job_records(dataset_id)`,
		`CREATE TABLE IF NOT EXISTS agent_runs (
			id UUID PRIMARY KEY,
			dataset_id UUID,
			query TEXT NOT NULL,
			parsed_intent TEXT,
			parsed_filters JSONB,
			execution_plan JSONB,
			output_summary JSONB,
			status TEXT NOT NULL DEFAULT 'completed',
			confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
			warnings JSONB,
			started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			finished_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_agent_runs_started ON agent_runs(started_at DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
