package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iomconv/report"
)

func TestMetricsCounts(t *testing.T) {
	m := NewMetrics()

	m.FileDone("a.csv", 5*time.Millisecond)
	m.FileDone("b.csv", 7*time.Millisecond)
	m.FileMissing("gone.csv")
	m.FileFailed("bad.csv")
	m.RowsDecoded(report.TargetAll, 2)
	m.RowsDecoded(report.TargetWorker, 8)
	m.RowsDecoded(report.TargetProcessor, 0) // must not create a series
	m.SpecsDecoded(3)

	vals, err := m.Gather()
	require.NoError(t, err)

	assert.Equal(t, 2.0, vals["iomconv_files_total_ok"])
	assert.Equal(t, 1.0, vals["iomconv_files_total_missing"])
	assert.Equal(t, 1.0, vals["iomconv_files_total_failed"])
	assert.Equal(t, 2.0, vals["iomconv_result_rows_total_ALL"])
	assert.Equal(t, 8.0, vals["iomconv_result_rows_total_WORKER"])
	assert.NotContains(t, vals, "iomconv_result_rows_total_PROCESSOR")
	assert.Equal(t, 3.0, vals["iomconv_access_specs_total"])
}

func TestMetricsIndependentRegistries(t *testing.T) {
	// Two conversions in one process must not panic on duplicate
	// registration.
	assert.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}
