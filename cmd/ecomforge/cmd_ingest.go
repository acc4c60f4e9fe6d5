package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ecomforge/internal/dataset"
	"ecomforge/internal/store"
)

var ingestFormat string

// ingestCmd loads dataset files into SQLite
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the dataset files into the SQLite database",
	Long: `Reads the dataset files from the data directory, recreates the
normalized schema (foreign keys enforced), and inserts every table inside a
single transaction, parents before children. Re-running replaces the data.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestFormat, "format", "", "Dataset format: json or csv (default from config)")
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	formatName := cfg.Data.Format
	if ingestFormat != "" {
		formatName = ingestFormat
	}
	format, err := dataset.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logger.Info("Reading datasets",
		zap.String("dir", cfg.Data.Dir),
		zap.String("format", string(format)))

	ds, err := dataset.Read(cfg.Data.Dir, format)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Data.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.CreateSchema(ctx); err != nil {
		return err
	}

	run, err := st.InsertDataset(ctx, ds)
	if err != nil {
		return err
	}

	logger.Info("Ingest complete",
		zap.String("run_id", run.RunID),
		zap.Duration("duration", run.Duration),
		zap.Int("users", run.Users),
		zap.Int("products", run.Products),
		zap.Int("orders", run.Orders),
		zap.Int("order_items", run.OrderItems),
		zap.Int("reviews", run.Reviews))

	fmt.Printf("Database ready at %s (run %s)\n", cfg.Data.DatabasePath, run.RunID)
	return nil
}
