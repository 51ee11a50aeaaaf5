package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tibcsoo96/dates-le/internal/convert"
	"github.com/tibcsoo96/dates-le/internal/extract"
)

func newConvertCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [glob ...]",
		Short: "Render every recognized date in another format",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			target, _ := cmd.Flags().GetString("to")
			if target == "" {
				return fmt.Errorf("--to is required (iso, rfc2822, unix, utc, local, simple)")
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

			conversions := convert.All(dates, extract.Format(target))
			p := newPrinter(outputFormat(cmd, cfg))
			if p.format == "json" {
				return p.json(conversions)
			}
			var rows [][]string
			for _, c := range conversions {
				out := c.Output
				if c.Err != "" {
					out = "error: " + c.Err
				}
				rows = append(rows, []string{c.Input.Value, string(c.Input.Format), out})
			}
			p.table([]string{"VALUE", "FORMAT", "CONVERTED"}, rows)
			return nil
		},
	}
	addScanFlags(cmd)
	cmd.Flags().String("to", "", "target format (required)")
	return cmd
}
