// Package files discovers scannable files from glob patterns and runs the
// extraction core over them with bounded parallelism.
package files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

// File is a discovered file with its detected format hint.
type File struct {
	Path   string `json:"path"`
	Format string `json:"format"`
}

// extFormats maps file extensions to format hints the router understands.
var extFormats = map[string]string{
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".csv":  "csv",
	".xml":  "xml",
	".log":  "log",
	".txt":  "log",
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".html": "html",
	".htm":  "html",
}

// DetectFormat returns the format hint for a path, or "" when the extension
// carries no known hint.
func DetectFormat(path string) string {
	return extFormats[strings.ToLower(filepath.Ext(path))]
}

// Discover returns deduplicated absolute paths of regular files matching any
// of the given glob patterns, each paired with its detected format hint.
func Discover(patterns []string) ([]File, error) {
	seen := make(map[string]bool)
	var out []File

	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			wd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			pattern = filepath.Join(wd, pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}

		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil {
				continue
			}
			info, err := os.Stat(abs)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if seen[abs] {
				continue
			}
			seen[abs] = true
			out = append(out, File{Path: abs, Format: DetectFormat(abs)})
		}
	}
	return out, nil
}

// WatchDirs extracts the static directory prefixes from glob patterns for
// directory watching: the longest path before the first glob metacharacter.
func WatchDirs(patterns []string) []string {
	seen := make(map[string]bool)
	var dirs []string

	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			if wd, err := os.Getwd(); err == nil {
				pattern = filepath.Join(wd, pattern)
			}
		}
		dir := staticPrefix(pattern)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// staticPrefix returns the directory path before the first glob character.
func staticPrefix(pattern string) string {
	for i, c := range pattern {
		if c == '*' || c == '?' || c == '[' || c == '{' {
			return filepath.Dir(pattern[:i])
		}
	}
	return filepath.Dir(pattern)
}

// MatchesAny reports whether path matches any of the given glob patterns.
func MatchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			if wd, err := os.Getwd(); err == nil {
				pattern = filepath.Join(wd, pattern)
			}
		}
		if ok, _ := doublestar.PathMatch(pattern, path); ok {
			return true
		}
	}
	return false
}

// ScanResult is the outcome of scanning one file.
type ScanResult struct {
	Path    string         `json:"path"`
	Format  string         `json:"format"`
	Result  extract.Result `json:"result"`
	Skipped bool           `json:"skipped,omitempty"`
	Reason  string         `json:"reason,omitempty"`
}

// ScanAll scans every file concurrently, at most parallel at a time. Files
// larger than maxBytes and files with no known format hint are reported as
// skipped rather than scanned; the core imposes no size limit of its own,
// so the cap is enforced here. Results keep the input order.
func ScanAll(ctx context.Context, list []File, maxBytes int64, parallel int) ([]ScanResult, error) {
	if parallel <= 0 {
		parallel = 1
	}
	results := make([]ScanResult, len(list))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, f := range list {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = ScanFile(f, maxBytes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ScanFile scans a single file, honoring the size cap.
func ScanFile(f File, maxBytes int64) ScanResult {
	res := ScanResult{Path: f.Path, Format: f.Format}
	if f.Format == "" {
		res.Skipped = true
		res.Reason = "unknown file format"
		return res
	}

	info, err := os.Stat(f.Path)
	if err != nil {
		res.Skipped = true
		res.Reason = err.Error()
		return res
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		res.Skipped = true
		res.Reason = fmt.Sprintf("file size %d exceeds limit %d", info.Size(), maxBytes)
		return res
	}

	content, err := os.ReadFile(f.Path)
	if err != nil {
		res.Skipped = true
		res.Reason = err.Error()
		return res
	}
	res.Result = extract.Scan(string(content), f.Format)
	return res
}
