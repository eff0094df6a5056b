package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/config"
	"github.com/jonathan/talenthub/internal/db"
	"github.com/jonathan/talenthub/internal/observability"
	"github.com/jonathan/talenthub/internal/screening"
	"github.com/spf13/cobra"
)

var screenPostingID string

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen a posting's applications from the command line",
	Long:  `Run the screening pass for one posting against its own criteria and print the tier summary.`,
	RunE:  runScreen,
}

func init() {
	screenCmd.Flags().StringVar(&screenPostingID, "posting", "", "Posting ID to screen (required)")
	_ = screenCmd.MarkFlagRequired("posting")
	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, _ []string) error {
	postingID, err := uuid.Parse(screenPostingID)
	if err != nil {
		return fmt.Errorf("invalid posting id: %w", err)
	}

	serverConfig, err := config.NewServerConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, serverConfig.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	engine := screening.NewEngine(database)
	result, err := engine.FilterApplications(ctx, postingID, nil)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScreeningSummary(result)
	return nil
}
