package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ecomforge/internal/model"
	"ecomforge/internal/store"
)

// statusCmd shows database contents at a glance
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database row counts and last ingest",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	st, err := store.OpenExisting(cfg.Data.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	counts, err := st.Counts(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Database: %s (%d bytes)\n\n", st.Path(), st.Size())
	for _, table := range model.TableNames {
		fmt.Printf("  %-12s %6d rows\n", table, counts[table])
	}

	run, err := st.LastIngestRun(ctx)
	if err != nil {
		return err
	}
	if run == nil {
		fmt.Println("\nNo ingest recorded.")
		return nil
	}
	fmt.Printf("\nLast ingest: %s at %s (%s)\n",
		run.RunID, run.StartedAt.Format(time.RFC3339), run.Duration)
	return nil
}
