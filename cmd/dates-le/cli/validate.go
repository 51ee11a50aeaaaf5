package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tibcsoo96/dates-le/internal/config"
	"github.com/tibcsoo96/dates-le/internal/rules"
)

func newValidateCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [glob ...]",
		Short: "Check recognized dates against validation rules",
		Long:  "Evaluate rules (not-future, not-before=YEAR, not-after=YEAR, parseable, require-zone, same-format) over the recognized dates. Rules come from --rule flags, falling back to the config file's enabled set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ruleSet, err := ruleSetFromFlags(cmd, cfg)
			if err != nil {
				return err
			}

			results, err := runScan(cmd, cfg, args, logger)
			if err != nil {
				return err
			}
			dates, _ := gatherDates(results)

			violations := rules.Evaluate(dates, ruleSet, time.Now())
			p := newPrinter(outputFormat(cmd, cfg))
			if p.format == "json" {
				if err := p.json(violations); err != nil {
					return err
				}
			} else if len(violations) == 0 {
				fmt.Printf("All %d dates pass %d rules.\n", len(dates), len(ruleSet))
			} else {
				var rows [][]string
				for _, v := range violations {
					rows = append(rows, []string{string(v.Rule), v.Value, strconv.Itoa(v.Line), v.Description})
				}
				p.table([]string{"RULE", "VALUE", "LINE", "DESCRIPTION"}, rows)
			}

			if strict, _ := cmd.Flags().GetBool("strict"); strict && len(violations) > 0 {
				return fmt.Errorf("%d rule violations", len(violations))
			}
			return nil
		},
	}
	addScanFlags(cmd)
	cmd.Flags().StringArray("rule", nil, "rule to check, e.g. not-future or not-before=2000 (repeatable)")
	cmd.Flags().Bool("strict", false, "exit non-zero when violations exist")
	return cmd
}

func ruleSetFromFlags(cmd *cobra.Command, cfg config.Config) ([]rules.Rule, error) {
	specs, _ := cmd.Flags().GetStringArray("rule")
	if len(specs) == 0 {
		specs = cfg.Rules.Enabled
	}
	out := make([]rules.Rule, 0, len(specs))
	for _, spec := range specs {
		r, err := rules.Parse(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
