package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/tibcsoo96/dates-le/internal/files"
	"github.com/tibcsoo96/dates-le/internal/watch"
)

func newWatchCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <glob> ...",
		Short: "Rescan matching files as they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			every, _ := cmd.Flags().GetDuration("every")
			if every == 0 && cfg.Watch.EverySeconds > 0 {
				every = time.Duration(cfg.Watch.EverySeconds) * time.Second
			}

			w, err := watch.New(watch.Options{
				Patterns:     args,
				MaxFileBytes: cfg.Scan.MaxFileBytes,
				Every:        every,
				RescanRate:   cfg.Watch.RescansPerSec,
				CacheSize:    cfg.Watch.SignatureCache,
				Logger:       logger,
			}, func(res files.ScanResult) {
				printWatchResult(res)
			})
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().Duration("every", 0, "also run a periodic full rescan at this interval")
	return cmd
}

func printWatchResult(res files.ScanResult) {
	now := time.Now().Format(time.TimeOnly)
	switch {
	case res.Skipped:
		fmt.Printf("%s  %s: skipped (%s)\n", now, res.Path, res.Reason)
	case !res.Result.Success:
		fmt.Printf("%s  %s: scan failed (%s)\n", now, res.Path, res.Result.Errors[0].Message)
	default:
		fmt.Printf("%s  %s: %d dates\n", now, res.Path, len(res.Result.Dates))
		for _, d := range res.Result.Dates {
			fmt.Printf("           line %-5d %-8s %s\n", d.Line, d.Format, d.Value)
		}
	}
}
