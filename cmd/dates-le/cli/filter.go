package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tibcsoo96/dates-le/internal/dateops"
	"github.com/tibcsoo96/dates-le/internal/extract"
)

func newFilterCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter [glob ...]",
		Short: "Scan, then filter, sort, and deduplicate the recognized dates",
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

			if formats, _ := cmd.Flags().GetStringSlice("formats"); len(formats) > 0 {
				fs := make([]extract.Format, 0, len(formats))
				for _, f := range formats {
					fs = append(fs, extract.Format(f))
				}
				dates = dateops.FilterFormat(dates, fs...)
			}

			from, err := timeFlag(cmd, "from")
			if err != nil {
				return err
			}
			to, err := timeFlag(cmd, "to")
			if err != nil {
				return err
			}
			if !from.IsZero() || !to.IsZero() {
				dates = dateops.FilterRange(dates, from, to)
			}

			if unique, _ := cmd.Flags().GetBool("unique"); unique {
				dates = dateops.UniqueByValue(dates)
			}

			switch sortOrder, _ := cmd.Flags().GetString("sort"); sortOrder {
			case "":
			case "asc":
				dates = dateops.SortByTime(dates, false)
			case "desc":
				dates = dateops.SortByTime(dates, true)
			default:
				return fmt.Errorf("--sort must be asc or desc")
			}

			p := newPrinter(outputFormat(cmd, cfg))
			if p.format == "json" {
				return p.json(dates)
			}
			if len(dates) == 0 {
				fmt.Println("No dates match.")
				return nil
			}
			var rows [][]string
			for _, d := range dates {
				rows = append(rows, []string{d.Value, string(d.Format), strconv.Itoa(d.Line), timeOrDash(dateTS(d))})
			}
			p.table([]string{"VALUE", "FORMAT", "LINE", "INSTANT"}, rows)
			return nil
		},
	}
	addScanFlags(cmd)
	cmd.Flags().StringSlice("formats", nil, "keep only these format tags")
	cmd.Flags().String("from", "", "keep dates at or after this time (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().String("to", "", "keep dates at or before this time (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().Bool("unique", false, "drop repeated raw values")
	cmd.Flags().String("sort", "", "sort chronologically: asc or desc")
	return cmd
}

func dateTS(d extract.DateValue) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.TS
}

func timeFlag(cmd *cobra.Command, name string) (time.Time, error) {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("--%s: cannot parse %q", name, v)
}
