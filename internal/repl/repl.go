// Package repl provides an interactive explorer over extracted date sets.
// The REPL is a client of the extraction and analysis packages, not their
// owner: it only loads files, runs pure functions, and prints.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/tibcsoo96/dates-le/internal/analyze"
	"github.com/tibcsoo96/dates-le/internal/config"
	"github.com/tibcsoo96/dates-le/internal/convert"
	"github.com/tibcsoo96/dates-le/internal/dateops"
	"github.com/tibcsoo96/dates-le/internal/extract"
	"github.com/tibcsoo96/dates-le/internal/files"
	"github.com/tibcsoo96/dates-le/internal/logging"
	"github.com/tibcsoo96/dates-le/internal/session"
)

// REPL is an interactive read-eval-print loop over a loaded date set.
type REPL struct {
	cfg config.Config

	in  *bufio.Scanner
	out io.Writer

	// Loaded state
	dates   []extract.DateValue
	sources []string

	logger *slog.Logger
}

// New creates a REPL reading commands from in and printing to out.
func New(cfg config.Config, in io.Reader, out io.Writer, logger *slog.Logger) *REPL {
	return &REPL{
		cfg:    cfg,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logging.Default(logger).With("component", "repl"),
	}
}

// Run starts the loop. It blocks until the user exits or input ends.
func (r *REPL) Run(ctx context.Context) error {
	r.printf("dates-le explorer. Type 'help' for commands.\n")
	r.printf("> ")

	for r.in.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			r.printf("> ")
			continue
		}
		if exit := r.execute(line); exit {
			return nil
		}
		r.printf("> ")
	}
	return r.in.Err()
}

// execute runs a single command. Returns true when the REPL should exit.
func (r *REPL) execute(line string) bool {
	parts := strings.Fields(line)
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help":
		r.cmdHelp()
	case "load", "scan":
		r.cmdLoad(args)
	case "dates":
		r.cmdDates(args)
	case "stats":
		r.cmdStats()
	case "anomalies":
		r.cmdAnomalies()
	case "patterns":
		r.cmdPatterns()
	case "clusters":
		r.cmdClusters()
	case "gaps":
		r.cmdGaps()
	case "filter":
		r.cmdFilter(args)
	case "sort":
		r.cmdSort(args)
	case "unique":
		r.cmdUnique()
	case "convert":
		r.cmdConvert(args)
	case "save":
		r.cmdSave(args)
	case "open":
		r.cmdOpen(args)
	case "exit", "quit":
		return true
	default:
		r.printf("Unknown command: %s. Type 'help' for commands.\n", cmd)
	}
	return false
}

func (r *REPL) cmdHelp() {
	r.printf(`Commands:
  help                  Show this help
  load <glob> ...       Scan matching files and load the extracted dates
  dates [n]             Show loaded dates (default: all)
  stats                 Descriptive statistics over the loaded set
  anomalies             Flag future/invalid/outlier/format issues
  patterns              Detect frequency, seasonal, and trend patterns
  clusters              Group temporally close dates
  gaps                  Report silences between consecutive dates
  filter key=value ...  Keep dates matching format=/from=/to= filters
  sort [desc]           Sort loaded dates chronologically
  unique                Drop repeated raw values (first occurrence wins)
  convert <format>      Render every date in another format
  save <path>           Save the loaded set as a session file
  open <path>           Load a previously saved session file
  exit                  Exit

Examples:
  load logs/**/*.log
  filter format=iso from=2023-01-01T00:00:00Z
  convert unix
`)
}

func (r *REPL) cmdLoad(args []string) {
	if len(args) == 0 {
		r.printf("Usage: load <glob> ...\n")
		return
	}
	found, err := files.Discover(args)
	if err != nil {
		r.printf("Discovery failed: %v\n", err)
		return
	}
	if len(found) == 0 {
		r.printf("No files matched.\n")
		return
	}

	results, err := files.ScanAll(context.Background(), found, r.cfg.Scan.MaxFileBytes, r.cfg.Scan.Parallel)
	if err != nil {
		r.printf("Scan failed: %v\n", err)
		return
	}

	r.dates = r.dates[:0]
	r.sources = r.sources[:0]
	scanned, skipped := 0, 0
	for _, res := range results {
		if res.Skipped {
			skipped++
			continue
		}
		scanned++
		r.sources = append(r.sources, res.Path)
		r.dates = append(r.dates, res.Result.Dates...)
	}
	r.printf("Loaded %d dates from %d files (%d skipped).\n", len(r.dates), scanned, skipped)
}

func (r *REPL) cmdDates(args []string) {
	if r.requireLoaded() {
		return
	}
	n := len(r.dates)
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			r.printf("Invalid count: %s\n", args[0])
			return
		}
		n = min(v, len(r.dates))
	}

	var b strings.Builder
	for _, d := range r.dates[:n] {
		validity := ""
		if !d.Valid {
			validity = " (invalid)"
		}
		fmt.Fprintf(&b, "%-30s %-8s line %d%s\n", d.Value, d.Format, d.Line, validity)
	}
	r.page(b.String())
}

func (r *REPL) cmdStats() {
	if r.requireLoaded() {
		return
	}
	st := analyze.Stats(r.dates)
	var b strings.Builder
	fmt.Fprintf(&b, "Total:      %d\n", st.Total)
	fmt.Fprintf(&b, "Unique:     %d\n", st.Unique)
	fmt.Fprintf(&b, "Duplicates: %d\n", st.Duplicates)
	if !st.Earliest.IsZero() {
		fmt.Fprintf(&b, "Earliest:   %s\n", st.Earliest.Format(time.RFC3339))
		fmt.Fprintf(&b, "Latest:     %s\n", st.Latest.Format(time.RFC3339))
		fmt.Fprintf(&b, "Range:      %s\n", st.Range)
		fmt.Fprintf(&b, "Average:    %s\n", st.Average.Format(time.RFC3339))
		fmt.Fprintf(&b, "Median:     %s\n", st.Median.Format(time.RFC3339))
	}
	fmt.Fprintf(&b, "By format:\n")
	for f, n := range st.ByFormat {
		fmt.Fprintf(&b, "  %-10s %d\n", f, n)
	}
	r.page(b.String())
}

func (r *REPL) cmdAnomalies() {
	if r.requireLoaded() {
		return
	}
	anoms := analyze.Anomalies(r.dates, time.Now())
	if len(anoms) == 0 {
		r.printf("No anomalies.\n")
		return
	}
	var b strings.Builder
	for _, a := range anoms {
		fmt.Fprintf(&b, "[%s/%s] %s\n", a.Type, a.Severity, a.Description)
		if a.Suggestion != "" {
			fmt.Fprintf(&b, "  suggestion: %s\n", a.Suggestion)
		}
	}
	r.page(b.String())
}

func (r *REPL) cmdPatterns() {
	if r.requireLoaded() {
		return
	}
	pats := analyze.Patterns(dateops.SortByTime(r.dates, false))
	if len(pats) == 0 {
		r.printf("No patterns detected.\n")
		return
	}
	var b strings.Builder
	for _, p := range pats {
		fmt.Fprintf(&b, "[%s] %.0f%%: %s\n", p.Type, p.Confidence*100, p.Description)
		if len(p.Examples) > 0 {
			fmt.Fprintf(&b, "  e.g. %s\n", strings.Join(p.Examples, ", "))
		}
	}
	r.page(b.String())
}

func (r *REPL) cmdClusters() {
	if r.requireLoaded() {
		return
	}
	clusters := analyze.ClustersWithin(r.dates, r.cfg.Analysis.ClusterWindow())
	if len(clusters) == 0 {
		r.printf("No clusters.\n")
		return
	}
	var b strings.Builder
	for i, c := range clusters {
		fmt.Fprintf(&b, "#%d %s (%d dates, %.2f/hour)\n", i+1, c.Center.Format(time.RFC3339), len(c.Dates), c.Density)
	}
	r.page(b.String())
}

func (r *REPL) cmdGaps() {
	if r.requireLoaded() {
		return
	}
	gaps := analyze.GapsOver(r.dates, r.cfg.Analysis.GapThreshold())
	if len(gaps) == 0 {
		r.printf("No gaps.\n")
		return
	}
	var b strings.Builder
	for _, g := range gaps {
		fmt.Fprintf(&b, "%s\n", g.Description)
	}
	r.page(b.String())
}

func (r *REPL) cmdFilter(args []string) {
	if r.requireLoaded() {
		return
	}
	filtered := r.dates
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			r.printf("Invalid filter: %s (expected key=value)\n", arg)
			return
		}
		switch k {
		case "format":
			filtered = dateops.FilterFormat(filtered, extract.Format(v))
		case "from":
			t, err := parseTime(v)
			if err != nil {
				r.printf("Invalid from time: %v\n", err)
				return
			}
			filtered = dateops.FilterRange(filtered, t, time.Time{})
		case "to":
			t, err := parseTime(v)
			if err != nil {
				r.printf("Invalid to time: %v\n", err)
				return
			}
			filtered = dateops.FilterRange(filtered, time.Time{}, t)
		default:
			r.printf("Unknown filter: %s\n", k)
			return
		}
	}
	r.dates = filtered
	r.printf("%d dates remain.\n", len(r.dates))
}

func (r *REPL) cmdSort(args []string) {
	if r.requireLoaded() {
		return
	}
	desc := len(args) > 0 && args[0] == "desc"
	r.dates = dateops.SortByTime(r.dates, desc)
	r.printf("Sorted %d dates.\n", len(r.dates))
}

func (r *REPL) cmdUnique() {
	if r.requireLoaded() {
		return
	}
	before := len(r.dates)
	r.dates = dateops.UniqueByValue(r.dates)
	r.printf("Dropped %d repeated values, %d remain.\n", before-len(r.dates), len(r.dates))
}

func (r *REPL) cmdConvert(args []string) {
	if r.requireLoaded() {
		return
	}
	if len(args) != 1 {
		r.printf("Usage: convert <iso|rfc2822|unix|utc|local|simple>\n")
		return
	}
	var b strings.Builder
	for _, c := range convert.All(r.dates, extract.Format(args[0])) {
		if c.Err != "" {
			fmt.Fprintf(&b, "%-30s -> error: %s\n", c.Input.Value, c.Err)
			continue
		}
		fmt.Fprintf(&b, "%-30s -> %s\n", c.Input.Value, c.Output)
	}
	r.page(b.String())
}

func (r *REPL) cmdSave(args []string) {
	if r.requireLoaded() {
		return
	}
	if len(args) != 1 {
		r.printf("Usage: save <path>\n")
		return
	}
	s := session.New("", r.sources, r.dates)
	if err := session.Save(args[0], s); err != nil {
		r.printf("Save failed: %v\n", err)
		return
	}
	r.printf("Saved session %q (%s) with %d dates.\n", s.Meta.Name, s.Meta.ID, len(s.Dates))
}

func (r *REPL) cmdOpen(args []string) {
	if len(args) != 1 {
		r.printf("Usage: open <path>\n")
		return
	}
	s, err := session.Load(args[0])
	if err != nil {
		r.printf("Open failed: %v\n", err)
		return
	}
	r.dates = s.Dates
	r.sources = s.Meta.Sources
	r.printf("Loaded session %q with %d dates.\n", s.Meta.Name, len(s.Dates))
}

// requireLoaded prints a hint and returns true when nothing is loaded.
func (r *REPL) requireLoaded() bool {
	if len(r.dates) == 0 {
		r.printf("Nothing loaded. Use 'load <glob>' or 'open <path>' first.\n")
		return true
	}
	return false
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// parseTime accepts RFC 3339 or a bare calendar date.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot parse time: %s", s)
}
