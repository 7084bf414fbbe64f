package main

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/gamma-omg/resume-parser/docstore"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Parse resumes concurrently and print one JSON report per line",
	Long:  "Parse resumes concurrently and print one JSON report per line in argument order. Failed files are reported with an error and make the command exit with a non-zero status.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatchCmd,
}

var batchWorkers int

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Number of files parsed at once (overrides the config)")

	rootCmd.AddCommand(batchCmd)
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	workers := a.cfg.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}

	failed, err := runBatch(cmd.Context(), a.parser, args, workers, a.cfg.MaxFileSize, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}

	return nil
}

// runBatch writes a report line for every file in input order and returns
// the number of files that could not be parsed.
func runBatch(ctx context.Context, p ResumeParser, files []string, workers int, maxFileSize int64, out io.Writer) (int, error) {
	reports := make([]docstore.Report, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = parseReport(p, file, maxFileSize)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	failed := 0
	enc := json.NewEncoder(out)
	for _, r := range reports {
		if r.Error != "" {
			failed++
		}
		if err := enc.Encode(r); err != nil {
			return failed, fmt.Errorf("failed to write report: %w", err)
		}
	}

	return failed, nil
}

func parseReport(p ResumeParser, file string, maxFileSize int64) docstore.Report {
	report := docstore.Report{File: file}

	data, err := readResume(file, maxFileSize)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Crc = crc32.ChecksumIEEE(data)

	res, err := p.Parse(data, file)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Resume = res

	return report
}
