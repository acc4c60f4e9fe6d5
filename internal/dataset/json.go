package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"ecomforge/internal/model"
)

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	return nil
}

func writeJSONTable(path, table string, ds *model.Dataset) error {
	switch table {
	case "users":
		return writeJSONFile(path, ds.Users)
	case "products":
		return writeJSONFile(path, ds.Products)
	case "orders":
		return writeJSONFile(path, ds.Orders)
	case "order_items":
		return writeJSONFile(path, ds.OrderItems)
	case "reviews":
		return writeJSONFile(path, ds.Reviews)
	}
	return fmt.Errorf("unknown table %q", table)
}

func readJSONTable(path, table string, ds *model.Dataset) error {
	switch table {
	case "users":
		return readJSONFile(path, &ds.Users)
	case "products":
		return readJSONFile(path, &ds.Products)
	case "orders":
		return readJSONFile(path, &ds.Orders)
	case "order_items":
		return readJSONFile(path, &ds.OrderItems)
	case "reviews":
		return readJSONFile(path, &ds.Reviews)
	}
	return fmt.Errorf("unknown table %q", table)
}
