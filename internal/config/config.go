// Package config loads and validates the dates-le TOML configuration.
// Values the file leaves unset keep their defaults; CLI flags override
// file values at the command layer.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tibcsoo96/dates-le/internal/rules"
)

// Config is the on-disk configuration shape.
type Config struct {
	Scan     ScanConfig     `toml:"scan"`
	Analysis AnalysisConfig `toml:"analysis"`
	Rules    RulesConfig    `toml:"rules"`
	Output   OutputConfig   `toml:"output"`
	Watch    WatchConfig    `toml:"watch"`
}

// ScanConfig bounds and tunes document scanning. The core itself has no
// size limits; enforcing MaxFileBytes before a file reaches the scanner is
// the caller's job.
type ScanConfig struct {
	MaxFileBytes int64 `toml:"max_file_bytes"`
	Parallel     int   `toml:"parallel"` // concurrent file scans
}

// AnalysisConfig tunes the analysis thresholds. Defaults preserve the fixed
// constants of the analysis engine.
type AnalysisConfig struct {
	GapDays            int     `toml:"gap_days"`
	ClusterWindowHours int     `toml:"cluster_window_hours"`
	OutlierMultiplier  float64 `toml:"outlier_multiplier"`
}

// GapThreshold returns the configured gap threshold as a duration.
func (a AnalysisConfig) GapThreshold() time.Duration {
	return time.Duration(a.GapDays) * 24 * time.Hour
}

// ClusterWindow returns the configured cluster window as a duration.
func (a AnalysisConfig) ClusterWindow() time.Duration {
	return time.Duration(a.ClusterWindowHours) * time.Hour
}

// RulesConfig selects the enabled validation rules by spec string
// (e.g. "not-future", "not-before=2000").
type RulesConfig struct {
	Enabled []string `toml:"enabled"`
}

// Parsed parses the enabled rule specs.
func (r RulesConfig) Parsed() ([]rules.Rule, error) {
	out := make([]rules.Rule, 0, len(r.Enabled))
	for _, spec := range r.Enabled {
		rule, err := rules.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("rules.enabled: %w", err)
		}
		out = append(out, rule)
	}
	return out, nil
}

// OutputConfig selects presentation defaults.
type OutputConfig struct {
	Format string `toml:"format"` // table or json
}

// WatchConfig tunes watch mode.
type WatchConfig struct {
	EverySeconds   int     `toml:"every_seconds"`    // 0 disables the periodic sweep
	RescansPerSec  float64 `toml:"rescans_per_sec"`  // rate limit for change-triggered rescans
	SignatureCache int     `toml:"signature_cache"`  // max file signatures remembered
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scan: ScanConfig{
			MaxFileBytes: 10 << 20, // 10 MiB
			Parallel:     4,
		},
		Analysis: AnalysisConfig{
			GapDays:            7,
			ClusterWindowHours: 24,
			OutlierMultiplier:  1.5,
		},
		Rules: RulesConfig{
			Enabled: []string{"parseable"},
		},
		Output: OutputConfig{
			Format: "table",
		},
		Watch: WatchConfig{
			RescansPerSec:  2,
			SignatureCache: 1024,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error: the
// defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations no command could run with.
func (c Config) Validate() error {
	if c.Scan.MaxFileBytes <= 0 {
		return fmt.Errorf("scan.max_file_bytes must be positive, got %d", c.Scan.MaxFileBytes)
	}
	if c.Scan.Parallel <= 0 {
		return fmt.Errorf("scan.parallel must be positive, got %d", c.Scan.Parallel)
	}
	if c.Analysis.GapDays <= 0 {
		return fmt.Errorf("analysis.gap_days must be positive, got %d", c.Analysis.GapDays)
	}
	if c.Analysis.ClusterWindowHours <= 0 {
		return fmt.Errorf("analysis.cluster_window_hours must be positive, got %d", c.Analysis.ClusterWindowHours)
	}
	if c.Analysis.OutlierMultiplier <= 0 {
		return fmt.Errorf("analysis.outlier_multiplier must be positive, got %g", c.Analysis.OutlierMultiplier)
	}
	if c.Output.Format != "table" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be table or json, got %q", c.Output.Format)
	}
	if _, err := c.Rules.Parsed(); err != nil {
		return err
	}
	return nil
}
