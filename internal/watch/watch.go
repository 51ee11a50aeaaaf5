// Package watch rescans files matching glob patterns as they change.
//
// Change detection combines an fsnotify watch over the patterns' static
// directory prefixes with an optional periodic full sweep. Rescans are rate
// limited, and a bounded signature cache (size + mtime per path) skips
// files that fired an event without actually changing.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"
	"golang.org/x/time/rate"

	"github.com/tibcsoo96/dates-le/internal/cache"
	"github.com/tibcsoo96/dates-le/internal/files"
	"github.com/tibcsoo96/dates-le/internal/logging"
)

// signature identifies a file state cheaply.
type signature struct {
	size  int64
	mtime time.Time
}

// Options configures a Watcher.
type Options struct {
	Patterns     []string
	MaxFileBytes int64
	Every        time.Duration // 0 disables the periodic full sweep
	RescanRate   float64       // change-triggered rescans per second
	CacheSize    int           // file signatures remembered
	Logger       *slog.Logger
}

// Watcher rescans matching files on change and hands each fresh result to
// the callback. The callback runs on the watcher's goroutine.
type Watcher struct {
	opts    Options
	limiter *rate.Limiter
	sigs    *cache.Cache[string, signature]
	onScan  func(files.ScanResult)
	logger  *slog.Logger
}

// New creates a Watcher. fn receives one ScanResult per rescanned file.
func New(opts Options, fn func(files.ScanResult)) (*Watcher, error) {
	if len(opts.Patterns) == 0 {
		return nil, fmt.Errorf("watch: no patterns given")
	}
	if opts.RescanRate <= 0 {
		opts.RescanRate = 2
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 1024
	}
	logger := logging.Default(opts.Logger).With("component", "watch")
	return &Watcher{
		opts:    opts,
		limiter: rate.NewLimiter(rate.Limit(opts.RescanRate), 1),
		sigs:    cache.New[string, signature](opts.CacheSize),
		onScan:  fn,
		logger:  logger,
	}, nil
}

// Run watches until ctx is cancelled. An initial full sweep runs before the
// event loop starts so the callback sees the current state first.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer func() { _ = fw.Close() }()

	dirs := files.WatchDirs(w.opts.Patterns)
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			w.logger.Warn("cannot watch directory", "dir", dir, "error", err)
		}
	}
	w.logger.Info("watching", "dirs", len(dirs), "patterns", w.opts.Patterns)

	sweeps := make(chan struct{}, 1)
	var sched gocron.Scheduler
	if w.opts.Every > 0 {
		sched, err = gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("watch: create scheduler: %w", err)
		}
		_, err = sched.NewJob(
			gocron.DurationJob(w.opts.Every),
			gocron.NewTask(func() {
				select {
				case sweeps <- struct{}{}:
				default:
				}
			}),
		)
		if err != nil {
			return fmt.Errorf("watch: schedule sweep: %w", err)
		}
		sched.Start()
		defer func() { _ = sched.Shutdown() }()
	}

	w.sweep()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sweeps:
			w.sweep()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if !files.MatchesAny(ev.Name, w.opts.Patterns) {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}
			w.rescan(ev.Name)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// sweep rescans everything the patterns currently match.
func (w *Watcher) sweep() {
	found, err := files.Discover(w.opts.Patterns)
	if err != nil {
		w.logger.Warn("discovery failed", "error", err)
		return
	}
	for _, f := range found {
		w.rescan(f.Path)
	}
}

// rescan scans one path unless its signature is unchanged.
func (w *Watcher) rescan(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	sig := signature{size: info.Size(), mtime: info.ModTime()}
	if prev, ok := w.sigs.Get(path); ok && prev == sig {
		return
	}
	w.sigs.Set(path, sig)

	res := files.ScanFile(files.File{Path: path, Format: files.DetectFormat(path)}, w.opts.MaxFileBytes)
	w.onScan(res)
}
