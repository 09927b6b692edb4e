package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// insertBatchSize bounds how many job records go into one batch.
const insertBatchSize = 500

// ReplaceDataset atomically deletes any existing dataset together with
// its records and inserts the new one with its records. Everything
// runs in a single transaction so a crash mid-ingestion never leaves a
// deleted-but-unpopulated state visible.
func (db *DB) ReplaceDataset(ctx context.Context, dataset *Dataset, records []JobRecord) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM datasets`); err != nil {
		return fmt.Errorf("failed to delete previous dataset: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO datasets (
			id, filename, uploaded_at, total_jobs,
			role_column, country_column, skills_column, description_column, date_column,
			has_skills_column, used_description_extraction, has_date_column, mapping_confidence
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		dataset.ID, dataset.Filename, dataset.UploadedAt, dataset.TotalJobs,
		dataset.RoleColumn, dataset.CountryColumn, dataset.SkillsColumn,
		dataset.DescriptionColumn, dataset.DateColumn,
		dataset.HasSkillsColumn, dataset.UsedDescriptionExtraction,
		dataset.HasDateColumn, dataset.MappingConfidence,
	)
	if err != nil {
		return fmt.Errorf("failed to insert dataset: %w", err)
	}

	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}

		batch := &pgx.Batch{}
		for _, rec := range records[start:end] {
			raw, err := json.Marshal(rec.RawRow)
			if err != nil {
				return fmt.Errorf("failed to marshal raw row: %w", err)
			}
			batch.Queue(
				`INSERT INTO job_records (
					id, dataset_id, role, country, skills_text, description, posted_date, raw_row
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				rec.ID, rec.DatasetID, rec.Role, rec.Country,
				rec.SkillsText, rec.Description, rec.PostedDate, raw,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert job records: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit dataset replacement: %w", err)
	}
	return nil
}

// LatestDataset returns the current dataset, or nil when none has
// been ingested yet.
func (db *DB) LatestDataset(ctx context.Context) (*Dataset, error) {
	var d Dataset
	err := db.pool.QueryRow(ctx,
		`SELECT id, filename, uploaded_at, total_jobs,
			role_column, country_column, skills_column, description_column, date_column,
			has_skills_column, used_description_extraction, has_date_column, mapping_confidence
		 FROM datasets
		 ORDER BY uploaded_at DESC
		 LIMIT 1`,
	).Scan(
		&d.ID, &d.Filename, &d.UploadedAt, &d.TotalJobs,
		&d.RoleColumn, &d.CountryColumn, &d.SkillsColumn, &d.DescriptionColumn, &d.DateColumn,
		&d.HasSkillsColumn, &d.UsedDescriptionExtraction, &d.HasDateColumn, &d.MappingConfidence,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest dataset: %w", err)
	}
	return &d, nil
}

// RecordsByDataset loads every job record belonging to a dataset.
func (db *DB) RecordsByDataset(ctx context.Context, datasetID uuid.UUID) ([]JobRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, dataset_id, role, country, skills_text, description, posted_date, raw_row
		 FROM job_records
		 WHERE dataset_id = $1`,
		datasetID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query job records: %w", err)
	}
	defer rows.Close()

	var records []JobRecord
	for rows.Next() {
		var rec JobRecord
		var raw []byte
		if err := rows.Scan(
			&rec.ID, &rec.DatasetID, &rec.Role, &rec.Country,
			&rec.SkillsText, &rec.Description, &rec.PostedDate, &raw,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job record: %w", err)
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &rec.RawRow); err != nil {
				return nil, fmt.Errorf("failed to unmarshal raw row: %w", err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job records: %w", err)
	}
	return records, nil
}
