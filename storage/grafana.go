package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// GrafanaDashboard is the import payload for a Grafana dashboard
// covering the converter's Prometheus metrics.
type GrafanaDashboard struct {
	Dashboard DashboardConfig `json:"dashboard"`
	FolderID  int             `json:"folderId"`
	Overwrite bool            `json:"overwrite"`
}

// DashboardConfig is the dashboard body.
type DashboardConfig struct {
	ID            interface{} `json:"id"`
	Title         string      `json:"title"`
	Tags          []string    `json:"tags"`
	Style         string      `json:"style"`
	Timezone      string      `json:"timezone"`
	Panels        []Panel     `json:"panels"`
	Time          TimeRange   `json:"time"`
	Refresh       string      `json:"refresh"`
	SchemaVersion int         `json:"schemaVersion"`
	Version       int         `json:"version"`
}

// Panel is one dashboard panel.
type Panel struct {
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Type    string   `json:"type"`
	GridPos GridPos  `json:"gridPos"`
	Targets []Target `json:"targets"`
}

// GridPos is the panel grid position.
type GridPos struct {
	H int `json:"h"`
	W int `json:"w"`
	X int `json:"x"`
	Y int `json:"y"`
}

// Target is one query target.
type Target struct {
	Expr         string `json:"expr"`
	LegendFormat string `json:"legendFormat,omitempty"`
	RefID        string `json:"refId"`
}

// TimeRange is the default dashboard time range.
type TimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewConversionDashboard builds a dashboard for the metrics exposed
// by Metrics.StartServer.
func NewConversionDashboard() *GrafanaDashboard {
	return &GrafanaDashboard{
		Overwrite: true,
		Dashboard: DashboardConfig{
			ID:            nil,
			Title:         "IOMeter Conversion",
			Tags:          []string{"iometer", "conversion"},
			Style:         "dark",
			Timezone:      "browser",
			SchemaVersion: 30,
			Version:       1,
			Refresh:       "10s",
			Time:          TimeRange{From: "now-1h", To: "now"},
			Panels: []Panel{
				{
					ID:      1,
					Title:   "Files by outcome",
					Type:    "timeseries",
					GridPos: GridPos{H: 8, W: 12, X: 0, Y: 0},
					Targets: []Target{
						{
							Expr:         "rate(iomconv_files_total[1m])",
							LegendFormat: "{{outcome}}",
							RefID:        "A",
						},
					},
				},
				{
					ID:      2,
					Title:   "Result rows by kind",
					Type:    "timeseries",
					GridPos: GridPos{H: 8, W: 12, X: 12, Y: 0},
					Targets: []Target{
						{
							Expr:         "rate(iomconv_result_rows_total[1m])",
							LegendFormat: "{{kind}}",
							RefID:        "A",
						},
					},
				},
				{
					ID:      3,
					Title:   "Parse duration (p95)",
					Type:    "timeseries",
					GridPos: GridPos{H: 8, W: 12, X: 0, Y: 8},
					Targets: []Target{
						{
							Expr:  "histogram_quantile(0.95, rate(iomconv_parse_duration_seconds_bucket[5m]))",
							RefID: "A",
						},
					},
				},
				{
					ID:      4,
					Title:   "Access specifications",
					Type:    "timeseries",
					GridPos: GridPos{H: 8, W: 12, X: 12, Y: 8},
					Targets: []Target{
						{
							Expr:  "rate(iomconv_access_specs_total[1m])",
							RefID: "A",
						},
					},
				},
			},
		},
	}
}

// WriteDashboard serializes the dashboard JSON to path.
func WriteDashboard(path string, d *GrafanaDashboard) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize dashboard: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dashboard file: %w", err)
	}
	return nil
}
