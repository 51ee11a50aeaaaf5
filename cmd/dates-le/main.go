// Command dates-le scans documents for date-like tokens and analyzes the
// recognized set.
//
// Logging:
//   - Base logger is created here with output format and level
//   - Logger is passed to all components via dependency injection
//   - No global slog configuration (no slog.SetDefault)
package main

import (
	"log/slog"
	"os"

	"github.com/tibcsoo96/dates-le/cmd/dates-le/cli"
)

var version = "dev"

func main() {
	level := slog.LevelWarn
	switch os.Getenv("DATES_LE_LOG") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := cli.New(logger, version).Execute(); err != nil {
		os.Exit(1)
	}
}
