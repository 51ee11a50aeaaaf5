package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tibcsoo96/dates-le/internal/repl"
)

func newREPLCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Explore date sets interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			return repl.New(cfg, os.Stdin, os.Stdout, logger).Run(ctx)
		},
	}
}
