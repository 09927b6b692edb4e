package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guptavanshika1510-jpg/skillmap/internal/agent"
	"github.com/guptavanshika1510-jpg/skillmap/internal/config"
	"github.com/guptavanshika1510-jpg/skillmap/internal/db"
	"github.com/guptavanshika1510-jpg/skillmap/internal/ingestion"
	"github.com/guptavanshika1510-jpg/skillmap/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes dataset upload, summary, and agent query endpoints.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() { _ = cleanup() }()

	logger.Info("database connection", "url", cfg.MaskedDatabaseURL())

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

	ingestor := ingestion.NewService(database, logger)
	queryAgent := agent.New(database, logger)

	srv := server.New(cfg.Addr(), ingestor, queryAgent, database, logger)
	return srv.Start(ctx)
}
