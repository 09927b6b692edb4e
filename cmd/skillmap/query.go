package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guptavanshika1510-jpg/skillmap/internal/agent"
	"github.com/guptavanshika1510-jpg/skillmap/internal/config"
	"github.com/guptavanshika1510-jpg/skillmap/internal/db"
	"github.com/guptavanshika1510-jpg/skillmap/internal/observability"
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Run a natural language query against the stored dataset",
	Long:  `Run a natural language query (for example "top skills for Data Analyst in USA") directly against the database and print the agent's answer.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
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

	question := strings.Join(args, " ")
	resp, err := agent.New(database, logger).Query(ctx, question)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintResponse(resp)
	return nil
}
