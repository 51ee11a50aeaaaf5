package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tibcsoo96/dates-le/internal/config"
	"github.com/tibcsoo96/dates-le/internal/extract"
	"github.com/tibcsoo96/dates-le/internal/files"
)

func newScanCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [glob ...]",
		Short: "Scan files (or stdin) for date-like tokens",
		Long:  "Scan matching files for dates. With no arguments, stdin is scanned and --format is required.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			results, err := runScan(cmd, cfg, args, logger)
			if err != nil {
				return err
			}

			p := newPrinter(outputFormat(cmd, cfg))
			if p.format == "json" {
				return p.json(results)
			}

			var rows [][]string
			total := 0
			for _, res := range results {
				if res.Skipped {
					fmt.Fprintf(os.Stderr, "skipped %s: %s\n", res.Path, res.Reason)
					continue
				}
				if !res.Result.Success {
					fmt.Fprintf(os.Stderr, "failed %s: %s\n", res.Path, res.Result.Errors[0].Message)
					continue
				}
				for _, d := range res.Result.Dates {
					total++
					rows = append(rows, []string{
						res.Path,
						strconv.Itoa(d.Line),
						strconv.Itoa(d.Column),
						string(d.Format),
						d.Value,
						strconv.FormatBool(d.Valid),
					})
				}
			}
			if total == 0 {
				fmt.Println("No dates found.")
				return nil
			}
			p.table([]string{"FILE", "LINE", "COL", "FORMAT", "VALUE", "VALID"}, rows)
			return nil
		},
	}
	addScanFlags(cmd)
	return cmd
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "format hint override (json, yaml, csv, xml, log, javascript, html)")
	cmd.Flags().Int64("max-bytes", 0, "per-file size limit (default from config)")
}

// runScan is the shared front half of every scanning command: resolve
// inputs, enforce the size cap, and scan with bounded parallelism.
func runScan(cmd *cobra.Command, cfg config.Config, args []string, logger *slog.Logger) ([]files.ScanResult, error) {
	maxBytes := cfg.Scan.MaxFileBytes
	if v, _ := cmd.Flags().GetInt64("max-bytes"); v > 0 {
		maxBytes = v
	}
	formatOverride, _ := cmd.Flags().GetString("format")

	if len(args) == 0 {
		if formatOverride == "" {
			return nil, fmt.Errorf("reading stdin requires --format")
		}
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []files.ScanResult{{
			Path:   "(stdin)",
			Format: formatOverride,
			Result: extract.Scan(string(content), formatOverride),
		}}, nil
	}

	found, err := files.Discover(args)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("no files matched")
	}
	if formatOverride != "" {
		for i := range found {
			found[i].Format = formatOverride
		}
	}

	logger.Info("scanning", "files", len(found))
	return files.ScanAll(context.Background(), found, maxBytes, cfg.Scan.Parallel)
}

// gatherDates flattens scan results into one date set, preserving file and
// discovery order.
func gatherDates(results []files.ScanResult) ([]extract.DateValue, []string) {
	var dates []extract.DateValue
	var sources []string
	for _, res := range results {
		if res.Skipped || !res.Result.Success {
			continue
		}
		sources = append(sources, res.Path)
		dates = append(dates, res.Result.Dates...)
	}
	return dates, sources
}
