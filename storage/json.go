// Package storage writes the assembled record collection to its
// output sinks: the JSON document, the optional flat Parquet export,
// and the Prometheus run metrics.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"iomconv/report"
)

// WriteJSON serializes the record collection to path as an indented
// UTF-8 JSON array, in collection order. The parent directory is
// created if needed.
func WriteJSON(path string, records []*report.TestRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if records == nil {
		records = []*report.TestRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize records: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
