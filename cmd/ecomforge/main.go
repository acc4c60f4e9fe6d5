package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ecomforge/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dataDir    string
	dbPath     string
	timeout    time.Duration

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ecomforge",
	Short: "ecomforge - synthetic e-commerce data pipeline",
	Long: `ecomforge generates seeded synthetic e-commerce datasets, loads them
into a normalized SQLite database, and runs analytics queries against it.

Typical flow:
  ecomforge generate   # write users/products/orders/order_items/reviews files
  ecomforge ingest     # load the files into SQLite with schema + foreign keys
  ecomforge report     # run the predefined revenue/customer/rating reports`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		// Flags beat config file and environment.
		if cmd.Root().PersistentFlags().Changed("data-dir") {
			cfg.Data.Dir = dataDir
		}
		if cmd.Root().PersistentFlags().Changed("db") {
			cfg.Data.DatabasePath = dbPath
		}
		return cfg.Validate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "ecomforge.yaml", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "Dataset directory")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "database/ecom.db", "Path to SQLite database")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
