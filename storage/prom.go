package storage

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"iomconv/report"
)

// Metrics collects conversion run metrics and optionally serves them
// over HTTP for long batch runs. Implements report.Recorder.
type Metrics struct {
	filesTotal    *prometheus.CounterVec
	rowsTotal     *prometheus.CounterVec
	specsTotal    prometheus.Counter
	parseDuration prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates and registers the conversion metrics on a
// dedicated registry, so repeated runs in one process do not collide.
func NewMetrics() *Metrics {
	m := &Metrics{
		filesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iomconv_files_total",
				Help: "Report files seen, by outcome",
			},
			[]string{"outcome"},
		),
		rowsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iomconv_result_rows_total",
				Help: "Result rows decoded, by target kind",
			},
			[]string{"kind"},
		),
		specsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "iomconv_access_specs_total",
				Help: "Access specification rows decoded",
			},
		),
		parseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "iomconv_parse_duration_seconds",
				Help:    "Per-file parse duration",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.filesTotal,
		m.rowsTotal,
		m.specsTotal,
		m.parseDuration,
	)

	return m
}

// StartServer serves /metrics on addr. Blocks; run it in a goroutine.
func (m *Metrics) StartServer(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}

// FileDone records a successfully scanned file.
func (m *Metrics) FileDone(name string, d time.Duration) {
	m.filesTotal.WithLabelValues("ok").Inc()
	m.parseDuration.Observe(d.Seconds())
}

// FileMissing records a file that could not be read.
func (m *Metrics) FileMissing(name string) {
	m.filesTotal.WithLabelValues("missing").Inc()
}

// FileFailed records a file whose scan stopped on a coercion error.
func (m *Metrics) FileFailed(name string) {
	m.filesTotal.WithLabelValues("failed").Inc()
}

// RowsDecoded adds decoded result rows for one target kind.
func (m *Metrics) RowsDecoded(kind report.TargetKind, n int) {
	if n > 0 {
		m.rowsTotal.WithLabelValues(string(kind)).Add(float64(n))
	}
}

// SpecsDecoded adds decoded access specification rows.
func (m *Metrics) SpecsDecoded(n int) {
	if n > 0 {
		m.specsTotal.Add(float64(n))
	}
}

// Gather exposes the raw metric families, used by the check command
// to print a run summary without an HTTP round trip.
func (m *Metrics) Gather() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, fam := range families {
		for _, metric := range fam.GetMetric() {
			name := fam.GetName()
			for _, lp := range metric.GetLabel() {
				name += "_" + lp.GetValue()
			}
			switch {
			case metric.GetCounter() != nil:
				out[name] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				out[name] = metric.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}
