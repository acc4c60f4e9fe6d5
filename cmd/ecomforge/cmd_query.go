package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ecomforge/internal/report"
	"ecomforge/internal/store"
)

// queryCmd runs ad-hoc SQL against the database
var queryCmd = &cobra.Command{
	Use:   "query [sql]",
	Short: "Run an ad-hoc SQL query against the database",
	Long: `Executes the given SQL against the database and prints the result
as an aligned table.

Example:
  ecomforge query "SELECT name, price FROM products ORDER BY price DESC LIMIT 5"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	st, err := store.OpenExisting(cfg.Data.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	sqlText := strings.Join(args, " ")
	cols, rows, err := st.Query(ctx, sqlText)
	if err != nil {
		return err
	}

	t := report.Table{Title: "Query result", Headers: cols, Rows: rows}
	return t.Render(os.Stdout)
}
