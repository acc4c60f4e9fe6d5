// Package dataset reads and writes the five dataset files in JSON or CSV
// form. File layout matches the generator output: one file per table under
// a single data directory.
package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"ecomforge/internal/model"
)

// Format selects the on-disk encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format string from a flag or config.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown dataset format %q (want json or csv)", s)
	}
}

// FileName returns the dataset file name for a table in the given format.
func FileName(table string, format Format) string {
	return table + "." + string(format)
}

// Write writes every table of the dataset to dir, one file per table. The
// five files are independent, so they are written concurrently.
func Write(ctx context.Context, dir string, ds *model.Dataset, format Format) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	g, _ := errgroup.WithContext(ctx)
	for _, table := range model.TableNames {
		table := table
		path := filepath.Join(dir, FileName(table, format))
		g.Go(func() error {
			var err error
			switch format {
			case FormatJSON:
				err = writeJSONTable(path, table, ds)
			case FormatCSV:
				err = writeCSVTable(path, table, ds)
			default:
				err = fmt.Errorf("unknown dataset format %q", format)
			}
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Read loads every table of the dataset from dir.
func Read(dir string, format Format) (*model.Dataset, error) {
	ds := &model.Dataset{}
	for _, table := range model.TableNames {
		path := filepath.Join(dir, FileName(table, format))
		var err error
		switch format {
		case FormatJSON:
			err = readJSONTable(path, table, ds)
		case FormatCSV:
			err = readCSVTable(path, table, ds)
		default:
			err = fmt.Errorf("unknown dataset format %q", format)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	return ds, nil
}
