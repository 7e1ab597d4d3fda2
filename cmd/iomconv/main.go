// Command iomconv converts IOMeter result exports (CSV-style text
// files) into a structured JSON document, with optional Parquet row
// export and Prometheus run metrics.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"iomconv/config"
	"iomconv/report"
	"iomconv/source"
	"iomconv/storage"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	// Conversion flags
	sourceDir         string
	filePattern       string
	outputPath        string
	includeProcessors bool
	includeWorkers    bool
	strict            bool
	parquetPath       string
	metricsAddr       string

	// S3 source flags
	s3Bucket   string
	s3Prefix   string
	s3Region   string
	s3Endpoint string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "iomconv",
	Short: "Convert IOMeter result exports to structured JSON",
	Long: `iomconv scans a directory (or S3 bucket) for IOMeter result exports,
parses the test header, time stamp, access specifications and the
ALL/MANAGER/PROCESSOR/WORKER result tables of each file, and writes
one JSON document for the whole batch.

Result rows can additionally be exported to a flat Parquet file, and
run metrics can be served for Prometheus during long batches.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runConvert,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&cfgPath, "config", "", "YAML config file (flags override it)")
	pf.StringVarP(&sourceDir, "source-dir", "d", ".", "Directory to scan for report files")
	pf.StringVarP(&filePattern, "pattern", "p", "*.csv", "Glob pattern for report file names")
	pf.BoolVar(&includeProcessors, "include-processors", true, "Decode PROCESSOR result rows")
	pf.BoolVar(&includeWorkers, "include-workers", true, "Decode WORKER result rows")
	pf.BoolVar(&strict, "strict", false, "Abort the whole batch on the first row decoding failure (legacy behavior)")
	pf.StringVar(&s3Bucket, "s3-bucket", "", "Read report files from this S3 bucket instead of a local directory")
	pf.StringVar(&s3Prefix, "s3-prefix", "", "Key prefix within the S3 bucket")
	pf.StringVar(&s3Region, "s3-region", "us-east-1", "S3 region")
	pf.StringVar(&s3Endpoint, "s3-endpoint", "", "Custom S3 endpoint (R2, MinIO); static credentials from S3_ACCESS_KEY_ID / S3_SECRET_ACCESS_KEY")

	f := rootCmd.Flags()
	f.StringVarP(&outputPath, "output", "o", "results.json", "Path of the JSON output document")
	f.StringVar(&parquetPath, "parquet", "", "Also export all result rows to this Parquet file")
	f.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address during the run (e.g. :9100)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyConfig fills every flag that was not set on the command line
// from the YAML config, if one was given.
func applyConfig(cmd *cobra.Command) error {
	if cfgPath == "" {
		return nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	set := func(name string) bool { return cmd.Flags().Changed(name) }
	if !set("source-dir") && cfg.SourceDir != "" {
		sourceDir = cfg.SourceDir
	}
	if !set("pattern") && cfg.FilePattern != "" {
		filePattern = cfg.FilePattern
	}
	if !set("output") && cfg.OutputPath != "" {
		outputPath = cfg.OutputPath
	}
	if !set("include-processors") && cfg.IncludeProcessors != nil {
		includeProcessors = *cfg.IncludeProcessors
	}
	if !set("include-workers") && cfg.IncludeWorkers != nil {
		includeWorkers = *cfg.IncludeWorkers
	}
	if !set("strict") && cfg.Strict {
		strict = true
	}
	if !set("parquet") && cfg.ParquetPath != "" {
		parquetPath = cfg.ParquetPath
	}
	if !set("metrics-addr") && cfg.MetricsAddr != "" {
		metricsAddr = cfg.MetricsAddr
	}
	if !set("s3-bucket") && cfg.S3.Bucket != "" {
		s3Bucket = cfg.S3.Bucket
	}
	if !set("s3-prefix") && cfg.S3.Prefix != "" {
		s3Prefix = cfg.S3.Prefix
	}
	if !set("s3-region") && cfg.S3.Region != "" {
		s3Region = cfg.S3.Region
	}
	if !set("s3-endpoint") && cfg.S3.Endpoint != "" {
		s3Endpoint = cfg.S3.Endpoint
	}
	return nil
}

// buildSource selects the input source: an S3 bucket when one is
// configured, the local directory otherwise.
func buildSource(ctx context.Context) (report.FileReader, error) {
	if s3Bucket != "" {
		return source.NewS3(ctx, source.S3Options{
			Bucket:          s3Bucket,
			Prefix:          s3Prefix,
			Pattern:         filePattern,
			Region:          s3Region,
			Endpoint:        s3Endpoint,
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		})
	}
	return source.NewLocal(sourceDir, filePattern)
}

func parseOptions() report.Options {
	return report.Options{
		IncludeProcessors: includeProcessors,
		IncludeWorkers:    includeWorkers,
		Logger:            logger,
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	ctx := context.Background()
	src, err := buildSource(ctx)
	if err != nil {
		return err
	}

	metrics := storage.NewMetrics()
	if metricsAddr != "" {
		go func() {
			logger.Info("serving metrics", zap.String("addr", metricsAddr))
			if err := metrics.StartServer(metricsAddr); err != nil {
				logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	conv := report.NewConverter(src, parseOptions(), metrics)
	conv.Strict = strict

	records, err := conv.Run(ctx)
	if err != nil {
		return err
	}

	if err := storage.WriteJSON(outputPath, records); err != nil {
		return err
	}
	logger.Info("wrote output document",
		zap.String("path", outputPath),
		zap.Int("files", len(records)))

	if parquetPath != "" {
		pw, err := storage.NewParquetWriter(parquetPath, 1000)
		if err != nil {
			return err
		}
		for _, rec := range records {
			if err := pw.WriteRecord(rec); err != nil {
				pw.Close()
				return err
			}
		}
		if err := pw.Close(); err != nil {
			return err
		}
		logger.Info("wrote parquet export", zap.String("path", pw.GetFilePath()))
	}

	return nil
}
