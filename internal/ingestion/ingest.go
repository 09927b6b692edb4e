// Package ingestion runs the upload pipeline: decode the tabular
// bytes, map columns to canonical fields, normalize every row,
// extract skills, and persist the dataset with replace semantics.
package ingestion

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/guptavanshika1510-jpg/skillmap/internal/db"
	"github.com/guptavanshika1510-jpg/skillmap/internal/schema"
	"github.com/guptavanshika1510-jpg/skillmap/internal/skills"
	"github.com/guptavanshika1510-jpg/skillmap/internal/tabular"
	"github.com/guptavanshika1510-jpg/skillmap/internal/textutil"
)

// Store is the persistence surface ingestion needs.
type Store interface {
	ReplaceDataset(ctx context.Context, dataset *db.Dataset, records []db.JobRecord) error
	LatestDataset(ctx context.Context) (*db.Dataset, error)
	RecordsByDataset(ctx context.Context, datasetID uuid.UUID) ([]db.JobRecord, error)
}

// Service ingests uploaded datasets and reports on the current one.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates an ingestion service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Ingest decodes and persists an uploaded dataset, replacing any
// previous one, and returns its summary. Schema failures abort before
// any record is written.
func (s *Service) Ingest(ctx context.Context, filename string, content []byte) (*Summary, error) {
	table, err := tabular.Decode(filename, content)
	if err != nil {
		return nil, err
	}
	if table.Len() == 0 {
		return nil, &schema.MappingError{Message: "uploaded dataset is empty"}
	}

	table.RenameColumns(schema.CleanColumns(table.Columns))
	mapping, err := schema.Map(table.Columns)
	if err != nil {
		return nil, err
	}

	dataset := datasetFromMapping(filename, table.Len(), mapping)
	records := buildRecords(dataset, table, mapping)

	if err := s.store.ReplaceDataset(ctx, dataset, records); err != nil {
		return nil, err
	}

	s.logger.Info("dataset ingested",
		"dataset_id", dataset.ID,
		"filename", filename,
		"total_jobs", dataset.TotalJobs,
		"skills_source", dataset.SkillsSource(),
		"mapping_confidence", dataset.MappingConfidence,
	)

	return buildSummary(dataset, records), nil
}

// Summary recomputes the summary for the current dataset, or returns
// (nil, nil) when none has been ingested.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	dataset, err := s.store.LatestDataset(ctx)
	if err != nil {
		return nil, err
	}
	if dataset == nil {
		return nil, nil
	}
	records, err := s.store.RecordsByDataset(ctx, dataset.ID)
	if err != nil {
		return nil, err
	}
	return buildSummary(dataset, records), nil
}

func datasetFromMapping(filename string, totalJobs int, m *schema.Mapping) *db.Dataset {
	dataset := &db.Dataset{
		ID:                        uuid.New(),
		Filename:                  filename,
		UploadedAt:                time.Now().UTC(),
		TotalJobs:                 totalJobs,
		RoleColumn:                m.RoleColumn,
		CountryColumn:             m.CountryColumn,
		HasSkillsColumn:           m.HasSkills,
		UsedDescriptionExtraction: m.UsedDescriptionExtraction(),
		HasDateColumn:             m.HasDate,
		MappingConfidence:         m.Confidence(),
	}
	if m.HasSkills {
		col := m.SkillsColumn
		dataset.SkillsColumn = &col
	}
	if m.HasDescription {
		col := m.DescriptionColumn
		dataset.DescriptionColumn = &col
	}
	if m.HasDate {
		col := m.DateColumn
		dataset.DateColumn = &col
	}
	return dataset
}

func buildRecords(dataset *db.Dataset, table *tabular.Table, m *schema.Mapping) []db.JobRecord {
	records := make([]db.JobRecord, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		role := textutil.Normalize(table.Cell(i, m.RoleColumn))
		country := textutil.Normalize(table.Cell(i, m.CountryColumn))

		var description string
		if m.HasDescription {
			description = textutil.Normalize(table.Cell(i, m.DescriptionColumn))
		}

		var extracted []string
		if m.HasSkills {
			extracted = skills.SplitDelimited(table.Cell(i, m.SkillsColumn))
		} else {
			extracted = skills.FromDescription(description)
		}

		var postedDate *time.Time
		if m.HasDate {
			postedDate = parseDate(table.Cell(i, m.DateColumn))
		}

		raw := make(map[string]string, len(table.Columns))
		for _, col := range table.Columns {
			raw[col] = table.Cell(i, col)
		}

		records = append(records, db.JobRecord{
			ID:          uuid.New(),
			DatasetID:   dataset.ID,
			Role:        role,
			Country:     country,
			SkillsText:  skills.Join(extracted),
			Description: description,
			PostedDate:  postedDate,
			RawRow:      raw,
		})
	}
	return records
}
