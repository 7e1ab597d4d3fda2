package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"iomconv/storage"
)

var dashboardPath string

// dashboardCmd writes a Grafana dashboard JSON for the Prometheus
// metrics served with --metrics-addr.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Write a Grafana dashboard for the conversion metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := storage.WriteDashboard(dashboardPath, storage.NewConversionDashboard()); err != nil {
			return err
		}
		logger.Info("wrote dashboard", zap.String("path", dashboardPath))
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardPath, "output", "o", "iomconv-dashboard.json", "Dashboard file path")
	rootCmd.AddCommand(dashboardCmd)
}
