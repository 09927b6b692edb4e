// Package main provides the entry point for the SkillMap HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillmap",
	Short: "SkillMap job-postings analytics agent",
	Long:  "SkillMap ingests job-posting datasets, infers their schema, and answers natural language questions about skill demand via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
