package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"iomconv/report"
)

// checkCmd is a parse-only dry run: every file is scanned exactly as
// in a conversion, per-file counts are printed, and nothing is
// written. Useful before pointing a long batch at an output path.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse the input files without writing output",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	ctx := context.Background()
	src, err := buildSource(ctx)
	if err != nil {
		return err
	}

	names, err := src.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list input files: %w", err)
	}

	opts := parseOptions()
	var missing, failed int
	for _, name := range names {
		lines, err := src.Read(ctx, name)
		if err != nil {
			missing++
			logger.Warn("unreadable file", zap.String("file", name), zap.Error(err))
			continue
		}

		rec, err := report.Parse(name, lines, opts)
		status := "ok"
		if err != nil {
			failed++
			status = "failed"
			var cerr *report.CoercionError
			if errors.As(err, &cerr) {
				fmt.Printf("%s:%d: bad %s column\n", cerr.File, cerr.LineNo, cerr.Column())
			}
		}
		fmt.Printf("%-40s %-7s specs=%d all=%d managers=%d processors=%d workers=%d\n",
			name, status,
			len(rec.AccessSpecs), len(rec.All), len(rec.Managers),
			len(rec.Processors), len(rec.Workers))
	}

	fmt.Printf("\n%d files, %d unreadable, %d with decoding failures\n",
		len(names), missing, failed)
	if failed > 0 {
		return fmt.Errorf("%d files had decoding failures", failed)
	}
	return nil
}
