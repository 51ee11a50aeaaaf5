// Package cli implements the dates-le command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tibcsoo96/dates-le/internal/config"
	"github.com/tibcsoo96/dates-le/internal/home"
)

// New returns the root command with all subcommands wired in.
func New(logger *slog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dates-le",
		Short:         "Find and analyze dates in structured text files",
		Long:          "Scan JSON, YAML, CSV, XML, log, HTML, and JavaScript files for date-like tokens, then deduplicate, convert, filter, validate, and statistically analyze the recognized set.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().String("config", "", "config file (default: platform config dir)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table or json")

	cmd.AddCommand(
		newScanCmd(logger),
		newAnalyzeCmd(logger),
		newConvertCmd(logger),
		newFilterCmd(logger),
		newValidateCmd(logger),
		newWatchCmd(logger),
		newREPLCmd(logger),
		newSessionCmd(logger),
		newFormatsCmd(),
		newVersionCmd(version),
	)
	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

// loadConfig resolves the config file from the --config flag or the
// platform default location.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		hd, err := home.Default()
		if err != nil {
			return config.Default(), nil
		}
		path = hd.ConfigPath()
	}
	return config.Load(path)
}

// outputFormat returns the effective output format: flag over config.
func outputFormat(cmd *cobra.Command, cfg config.Config) string {
	if f, _ := cmd.Flags().GetString("output"); f != "" {
		return f
	}
	return cfg.Output.Format
}
