package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tibcsoo96/dates-le/internal/session"
)

func newSessionCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Save and inspect scan sessions",
	}
	cmd.AddCommand(
		newSessionSaveCmd(logger),
		newSessionInfoCmd(),
		newSessionDatesCmd(),
	)
	return cmd
}

func newSessionSaveCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <path> <glob> ...",
		Short: "Scan files and save the result as a session",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			results, err := runScan(cmd, cfg, args[1:], logger)
			if err != nil {
				return err
			}
			dates, sources := gatherDates(results)

			name, _ := cmd.Flags().GetString("name")
			s := session.New(name, sources, dates)
			if err := session.Save(args[0], s); err != nil {
				return err
			}
			fmt.Printf("Saved session %q (%s) with %d dates from %d files.\n",
				s.Meta.Name, s.Meta.ID, len(s.Dates), len(s.Meta.Sources))
			return nil
		},
	}
	addScanFlags(cmd)
	cmd.Flags().String("name", "", "session name (default: generated)")
	return cmd
}

func newSessionInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <path>",
		Short: "Show session metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := session.Load(args[0])
			if err != nil {
				return err
			}
			p := newPrinter(outputFormat(cmd, cfg))
			if p.format == "json" {
				return p.json(s.Meta)
			}
			p.kv([][2]string{
				{"ID", s.Meta.ID},
				{"Name", s.Meta.Name},
				{"Created", s.Meta.CreatedAt.Format(time.RFC3339)},
				{"Sources", strings.Join(s.Meta.Sources, ", ")},
				{"Dates", strconv.Itoa(len(s.Dates))},
			})
			return nil
		},
	}
}

func newSessionDatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dates <path>",
		Short: "List the dates stored in a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := session.Load(args[0])
			if err != nil {
				return err
			}
			p := newPrinter(outputFormat(cmd, cfg))
			if p.format == "json" {
				return p.json(s.Dates)
			}
			var rows [][]string
			for _, d := range s.Dates {
				rows = append(rows, []string{d.Value, string(d.Format), strconv.Itoa(d.Line), strconv.FormatBool(d.Valid)})
			}
			p.table([]string{"VALUE", "FORMAT", "LINE", "VALID"}, rows)
			return nil
		},
	}
}
