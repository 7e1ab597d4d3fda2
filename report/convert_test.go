package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	order []string
	files map[string][]string
}

func (f *fakeReader) List(ctx context.Context) ([]string, error) {
	return f.order, nil
}

func (f *fakeReader) Read(ctx context.Context, name string) ([]string, error) {
	lines, ok := f.files[name]
	if !ok {
		return nil, fmt.Errorf("failed to read %s: no such file", name)
	}
	return lines, nil
}

type countingRecorder struct {
	done, missing, failed int
	rows                  map[TargetKind]int
	specs                 int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{rows: map[TargetKind]int{}}
}

func (c *countingRecorder) FileDone(string, time.Duration)  { c.done++ }
func (c *countingRecorder) FileMissing(string)              { c.missing++ }
func (c *countingRecorder) FileFailed(string)               { c.failed++ }
func (c *countingRecorder) RowsDecoded(k TargetKind, n int) { c.rows[k] += n }
func (c *countingRecorder) SpecsDecoded(n int)              { c.specs += n }

func TestConverterEmptyListing(t *testing.T) {
	conv := NewConverter(&fakeReader{}, DefaultOptions(), nil)
	records, err := conv.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestConverterOrderFollowsListing(t *testing.T) {
	fr := &fakeReader{
		order: []string{"b.csv", "a.csv", "c.csv"},
		files: map[string][]string{
			"a.csv": sampleLines(),
			"b.csv": sampleLines(),
			"c.csv": sampleLines(),
		},
	}
	conv := NewConverter(fr, DefaultOptions(), nil)
	records, err := conv.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "b.csv", records[0].FileName)
	assert.Equal(t, "a.csv", records[1].FileName)
	assert.Equal(t, "c.csv", records[2].FileName)
}

func TestConverterSkipsMissingFile(t *testing.T) {
	fr := &fakeReader{
		order: []string{"gone.csv", "here.csv"},
		files: map[string][]string{"here.csv": sampleLines()},
	}
	rec := newCountingRecorder()
	conv := NewConverter(fr, DefaultOptions(), rec)

	records, err := conv.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "here.csv", records[0].FileName)
	assert.Equal(t, 1, rec.missing)
	assert.Equal(t, 1, rec.done)
	assert.Equal(t, 1, rec.rows[TargetAll])
	assert.Equal(t, 1, rec.specs)
}

func TestConverterIsolatesCoercionFailure(t *testing.T) {
	fr := &fakeReader{
		order: []string{"bad.csv", "good.csv"},
		files: map[string][]string{
			"bad.csv":  {"ALL,too,short"},
			"good.csv": sampleLines(),
		},
	}
	rec := newCountingRecorder()
	conv := NewConverter(fr, DefaultOptions(), rec)

	records, err := conv.Run(context.Background())
	require.NoError(t, err, "a bad file must not abort the batch")
	require.Len(t, records, 2, "the partial record is kept")
	assert.Empty(t, records[0].All)
	assert.Len(t, records[1].All, 1)
	assert.Equal(t, 1, rec.failed)
}

func TestConverterStrictAbortsBatch(t *testing.T) {
	fr := &fakeReader{
		order: []string{"bad.csv", "good.csv"},
		files: map[string][]string{
			"bad.csv":  {"ALL,too,short"},
			"good.csv": sampleLines(),
		},
	}
	conv := NewConverter(fr, DefaultOptions(), nil)
	conv.Strict = true

	records, err := conv.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, records, "strict mode produces no partial output")

	var cerr *CoercionError
	assert.ErrorAs(t, err, &cerr)
}

func TestConverterDeterministic(t *testing.T) {
	fr := &fakeReader{
		order: []string{"a.csv"},
		files: map[string][]string{"a.csv": sampleLines()},
	}
	conv := NewConverter(fr, DefaultOptions(), nil)

	first, err := conv.Run(context.Background())
	require.NoError(t, err)
	second, err := conv.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
