// Package main provides the entry point for the TalentHub HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talenthub",
	Short: "TalentHub recruitment platform server",
	Long:  "TalentHub screens job applications into qualification tiers and serves hiring analytics for company recruiters via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
