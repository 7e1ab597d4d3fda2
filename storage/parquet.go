package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"iomconv/report"
)

// ParquetWriter exports every result row of the converted records to
// one flat Parquet file for analytical queries. Rows carry their
// source file name, so all files of a batch land in a single export.
type ParquetWriter struct {
	writer    *writer.ParquetWriter
	file      source.ParquetFile
	filePath  string
	batchSize int
	rows      []report.ResultRow
}

// NewParquetWriter creates a Parquet writer at filePath.
func NewParquetWriter(filePath string, batchSize int) (*ParquetWriter, error) {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := local.NewLocalFileWriter(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet file: %w", err)
	}

	pw, err := writer.NewParquetWriter(file, new(report.ResultRow), 4)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create parquet writer: %w", err)
	}

	return &ParquetWriter{
		writer:    pw,
		file:      file,
		filePath:  filePath,
		batchSize: batchSize,
		rows:      make([]report.ResultRow, 0, batchSize),
	}, nil
}

// WriteRecord appends all result rows of one record, flushing
// whenever the batch fills.
func (pw *ParquetWriter) WriteRecord(rec *report.TestRecord) error {
	for _, rows := range [][]report.ResultRow{rec.All, rec.Managers, rec.Processors, rec.Workers} {
		for _, row := range rows {
			pw.rows = append(pw.rows, row)
			if len(pw.rows) >= pw.batchSize {
				if err := pw.flush(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (pw *ParquetWriter) flush() error {
	for _, row := range pw.rows {
		if err := pw.writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	pw.rows = pw.rows[:0]
	return nil
}

// Close flushes any remaining rows and finalizes the file.
func (pw *ParquetWriter) Close() error {
	if err := pw.flush(); err != nil {
		return err
	}
	if err := pw.writer.WriteStop(); err != nil {
		return fmt.Errorf("failed to stop parquet writer: %w", err)
	}
	if err := pw.file.Close(); err != nil {
		return fmt.Errorf("failed to close parquet file: %w", err)
	}
	return nil
}

// GetFilePath returns the path of the written file.
func (pw *ParquetWriter) GetFilePath() string {
	return pw.filePath
}
