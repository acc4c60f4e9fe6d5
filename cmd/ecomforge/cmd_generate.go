package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ecomforge/internal/dataset"
	"ecomforge/internal/generate"
)

var (
	genSeed       int64
	genFormat     string
	genUsers      int
	genProducts   int
	genOrders     int
	genOrderItems int
	genReviews    int
)

// generateCmd writes the synthetic dataset files
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic e-commerce datasets",
	Long: `Generates seeded synthetic users, products, orders, order items, and
reviews, then writes one file per table to the data directory.

The same seed and counts always produce the same files. Orders reference
generated users, items reference generated orders and products, and each
order total is the rounded sum of its line items.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", generate.DefaultSeed, "Random seed")
	generateCmd.Flags().StringVar(&genFormat, "format", "", "Dataset format: json or csv (default from config)")
	generateCmd.Flags().IntVar(&genUsers, "users", 0, "Number of users (default from config)")
	generateCmd.Flags().IntVar(&genProducts, "products", 0, "Number of products (default from config)")
	generateCmd.Flags().IntVar(&genOrders, "orders", 0, "Number of orders (default from config)")
	generateCmd.Flags().IntVar(&genOrderItems, "order-items", 0, "Number of order items (default from config)")
	generateCmd.Flags().IntVar(&genReviews, "reviews", 0, "Number of reviews (default from config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	gcfg := generate.Config{
		Seed:       cfg.Generator.Seed,
		Users:      cfg.Generator.Users,
		Products:   cfg.Generator.Products,
		Orders:     cfg.Generator.Orders,
		OrderItems: cfg.Generator.OrderItems,
		Reviews:    cfg.Generator.Reviews,
	}
	if cmd.Flags().Changed("seed") {
		gcfg.Seed = genSeed
	}
	if cmd.Flags().Changed("users") {
		gcfg.Users = genUsers
	}
	if cmd.Flags().Changed("products") {
		gcfg.Products = genProducts
	}
	if cmd.Flags().Changed("orders") {
		gcfg.Orders = genOrders
	}
	if cmd.Flags().Changed("order-items") {
		gcfg.OrderItems = genOrderItems
	}
	if cmd.Flags().Changed("reviews") {
		gcfg.Reviews = genReviews
	}

	formatName := cfg.Data.Format
	if genFormat != "" {
		formatName = genFormat
	}
	format, err := dataset.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logger.Info("Generating datasets",
		zap.Int64("seed", gcfg.Seed),
		zap.Int("users", gcfg.Users),
		zap.Int("products", gcfg.Products),
		zap.Int("orders", gcfg.Orders),
		zap.Int("order_items", gcfg.OrderItems),
		zap.Int("reviews", gcfg.Reviews),
		zap.String("format", string(format)))

	ds, err := generate.New(gcfg).Generate()
	if err != nil {
		return err
	}

	if err := dataset.Write(ctx, cfg.Data.Dir, ds, format); err != nil {
		return err
	}

	fmt.Printf("Wrote datasets to %s\n", cfg.Data.Dir)
	return nil
}
