package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/analytics"
	"github.com/jonathan/talenthub/internal/config"
	"github.com/jonathan/talenthub/internal/db"
	"github.com/jonathan/talenthub/internal/observability"
	"github.com/spf13/cobra"
)

var (
	turnoverCompanyID string
	turnoverFrom      string
	turnoverTo        string
)

var turnoverCmd = &cobra.Command{
	Use:   "turnover",
	Short: "Compute a company's turnover rate from the command line",
	Long:  `Compute the turnover rate for one company over a window and print the report. The window defaults to the trailing year.`,
	RunE:  runTurnover,
}

func init() {
	turnoverCmd.Flags().StringVar(&turnoverCompanyID, "company", "", "Company ID (required)")
	turnoverCmd.Flags().StringVar(&turnoverFrom, "from", "", "Window start (YYYY-MM-DD)")
	turnoverCmd.Flags().StringVar(&turnoverTo, "to", "", "Window end (YYYY-MM-DD)")
	_ = turnoverCmd.MarkFlagRequired("company")
	rootCmd.AddCommand(turnoverCmd)
}

func runTurnover(cmd *cobra.Command, _ []string) error {
	companyID, err := uuid.Parse(turnoverCompanyID)
	if err != nil {
		return fmt.Errorf("invalid company id: %w", err)
	}

	var from, to time.Time
	if turnoverFrom != "" {
		if from, err = time.Parse("2006-01-02", turnoverFrom); err != nil {
			return fmt.Errorf("invalid from date: %w", err)
		}
	}
	if turnoverTo != "" {
		if to, err = time.Parse("2006-01-02", turnoverTo); err != nil {
			return fmt.Errorf("invalid to date: %w", err)
		}
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

	report, err := analytics.Turnover(ctx, database, companyID, from, to)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTurnover(report)
	return nil
}
