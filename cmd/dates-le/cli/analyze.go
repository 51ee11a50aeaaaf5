package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tibcsoo96/dates-le/internal/analyze"
	"github.com/tibcsoo96/dates-le/internal/dateops"
)

func newAnalyzeCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [glob ...]",
		Short: "Scan and statistically analyze the recognized dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			results, err := runScan(cmd, cfg, args, logger)
			if err != nil {
				return err
			}
			dates, _ := gatherDates(results)
			if len(dates) == 0 {
				fmt.Println("No dates found.")
				return nil
			}

			// Pattern detection wants chronological intervals; sort first.
			report := analyze.Analyze(dateops.SortByTime(dates, false), analyze.Options{
				ClusterWindow:     cfg.Analysis.ClusterWindow(),
				GapThreshold:      cfg.Analysis.GapThreshold(),
				OutlierMultiplier: cfg.Analysis.OutlierMultiplier,
			})

			p := newPrinter(outputFormat(cmd, cfg))
			if p.format == "json" {
				return p.json(report)
			}

			st := report.Stats
			p.kv([][2]string{
				{"Total", strconv.Itoa(st.Total)},
				{"Unique", strconv.Itoa(st.Unique)},
				{"Duplicates", strconv.Itoa(st.Duplicates)},
				{"Earliest", timeOrDash(st.Earliest)},
				{"Latest", timeOrDash(st.Latest)},
				{"Range", st.Range.String()},
				{"Average", timeOrDash(st.Average)},
				{"Median", timeOrDash(st.Median)},
			})

			if len(report.Anomalies) > 0 {
				fmt.Println("\nAnomalies:")
				var rows [][]string
				for _, a := range report.Anomalies {
					rows = append(rows, []string{string(a.Type), string(a.Severity), a.Description})
				}
				p.table([]string{"TYPE", "SEVERITY", "DESCRIPTION"}, rows)
			}

			if len(report.Patterns) > 0 {
				fmt.Println("\nPatterns:")
				var rows [][]string
				for _, pt := range report.Patterns {
					rows = append(rows, []string{string(pt.Type), fmt.Sprintf("%.0f%%", pt.Confidence*100), pt.Description})
				}
				p.table([]string{"TYPE", "CONFIDENCE", "DESCRIPTION"}, rows)
			}

			if len(report.Clusters) > 0 {
				fmt.Println("\nClusters:")
				var rows [][]string
				for _, c := range report.Clusters {
					rows = append(rows, []string{
						c.Center.Format(time.RFC3339),
						strconv.Itoa(len(c.Dates)),
						fmt.Sprintf("%.2f/hour", c.Density),
					})
				}
				p.table([]string{"CENTER", "DATES", "DENSITY"}, rows)
			}

			if len(report.Gaps) > 0 {
				fmt.Println("\nGaps:")
				var rows [][]string
				for _, g := range report.Gaps {
					rows = append(rows, []string{
						g.Start.Format(time.RFC3339),
						g.End.Format(time.RFC3339),
						g.Duration.String(),
					})
				}
				p.table([]string{"START", "END", "DURATION"}, rows)
			}
			return nil
		},
	}
	addScanFlags(cmd)
	return cmd
}
