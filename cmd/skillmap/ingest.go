package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/guptavanshika1510-jpg/skillmap/internal/config"
	"github.com/guptavanshika1510-jpg/skillmap/internal/db"
	"github.com/guptavanshika1510-jpg/skillmap/internal/ingestion"
	"github.com/guptavanshika1510-jpg/skillmap/internal/observability"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest a job-postings CSV into the database",
	Long:  `Ingest a CSV of job postings, replacing any previously stored dataset, and print the resulting summary.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() { _ = cleanup() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	summary, err := ingestion.NewService(database, logger).Ingest(ctx, filepath.Base(path), content)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintSummary(summary)
	return nil
}
