package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// FileReader supplies the ordered file names to convert and their
// content as lines. source.Local and source.S3 implement it.
type FileReader interface {
	List(ctx context.Context) ([]string, error)
	Read(ctx context.Context, name string) ([]string, error)
}

// Recorder receives conversion progress for metrics. Implemented by
// storage.Metrics; the nop implementation is used when metrics are
// not wanted.
type Recorder interface {
	FileDone(name string, d time.Duration)
	FileMissing(name string)
	FileFailed(name string)
	RowsDecoded(kind TargetKind, n int)
	SpecsDecoded(n int)
}

type nopRecorder struct{}

func (nopRecorder) FileDone(string, time.Duration) {}
func (nopRecorder) FileMissing(string)             {}
func (nopRecorder) FileFailed(string)              {}
func (nopRecorder) RowsDecoded(TargetKind, int)    {}
func (nopRecorder) SpecsDecoded(int)               {}

// NopRecorder discards all progress events.
var NopRecorder Recorder = nopRecorder{}

// Converter turns a batch of report files into the record collection.
type Converter struct {
	reader  FileReader
	opts    Options
	metrics Recorder

	// Strict restores the legacy behavior: the first row coercion
	// failure aborts the whole batch with no output. Default is
	// file-scoped isolation: the partial record is kept, the error is
	// logged, and the remaining files are still converted.
	Strict bool
}

// NewConverter wires a converter. A nil metrics recorder is replaced
// with NopRecorder.
func NewConverter(reader FileReader, opts Options, metrics Recorder) *Converter {
	if metrics == nil {
		metrics = NopRecorder
	}
	return &Converter{reader: reader, opts: opts, metrics: metrics}
}

// Run converts every file the reader lists, in listing order. A file
// that cannot be read is logged and skipped; the rest of the batch is
// unaffected. The returned collection order equals the listing order.
func (c *Converter) Run(ctx context.Context) ([]*TestRecord, error) {
	names, err := c.reader.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list input files: %w", err)
	}

	log := c.opts.logger()
	records := make([]*TestRecord, 0, len(names))
	for _, name := range names {
		lines, err := c.reader.Read(ctx, name)
		if err != nil {
			c.metrics.FileMissing(name)
			log.Warn("skipping unreadable file", zap.String("file", name), zap.Error(err))
			continue
		}

		start := time.Now()
		rec, err := Parse(name, lines, c.opts)
		if err != nil {
			c.metrics.FileFailed(name)
			var cerr *CoercionError
			if errors.As(err, &cerr) {
				log.Error("row decoding failed, keeping partial record",
					zap.String("file", cerr.File),
					zap.Int("line", cerr.LineNo),
					zap.String("column", cerr.Column()),
					zap.String("content", cerr.Line))
			}
			if c.Strict {
				return nil, err
			}
		}
		c.record(rec, time.Since(start))
		records = append(records, rec)
	}

	return records, nil
}

func (c *Converter) record(rec *TestRecord, d time.Duration) {
	c.metrics.FileDone(rec.FileName, d)
	c.metrics.SpecsDecoded(len(rec.AccessSpecs))
	c.metrics.RowsDecoded(TargetAll, len(rec.All))
	c.metrics.RowsDecoded(TargetManager, len(rec.Managers))
	c.metrics.RowsDecoded(TargetProcessor, len(rec.Processors))
	c.metrics.RowsDecoded(TargetWorker, len(rec.Workers))
}
