package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"ecomforge/internal/report"
	"ecomforge/internal/store"
)

var reportTop int

// reportCmd runs the predefined analytics queries
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the predefined analytics reports",
	Long: `Runs the predefined JOIN queries against the database and prints
each result set as an aligned table:

  1. Total revenue per product
  2. Top customers by spending
  3. Average rating per product`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportTop, "top", 0, "Number of top customers to show (default from config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	st, err := store.OpenExisting(cfg.Data.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	top := cfg.Report.TopCustomers
	if reportTop > 0 {
		top = reportTop
	}

	return report.All(ctx, os.Stdout, st, top)
}
