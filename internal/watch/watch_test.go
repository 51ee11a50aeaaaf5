package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tibcsoo96/dates-le/internal/files"
)

func TestNew_RequiresPatterns(t *testing.T) {
	if _, err := New(Options{}, func(files.ScanResult) {}); err == nil {
		t.Errorf("expected an error for empty patterns")
	}
}

func TestNew_Defaults(t *testing.T) {
	w, err := New(Options{Patterns: []string{"/tmp/*.log"}}, func(files.ScanResult) {})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w.opts.RescanRate != 2 {
		t.Errorf("rescan rate = %v, want 2", w.opts.RescanRate)
	}
	if w.opts.CacheSize != 1024 {
		t.Errorf("cache size = %d, want 1024", w.opts.CacheSize)
	}
}

func TestRescan_SkipsUnchangedSignature(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	if err := os.WriteFile(path, []byte("2023-12-25T10:30:00Z\n"), 0o640); err != nil {
		t.Fatal(err)
	}

	var scans []files.ScanResult
	w, err := New(Options{Patterns: []string{filepath.Join(dir, "*.log")}}, func(r files.ScanResult) {
		scans = append(scans, r)
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w.rescan(path)
	w.rescan(path) // unchanged, must be skipped
	if len(scans) != 1 {
		t.Fatalf("got %d scans, want 1", len(scans))
	}
	if len(scans[0].Result.Dates) != 1 {
		t.Errorf("dates = %+v", scans[0].Result.Dates)
	}

	// A content change with a different size triggers a rescan.
	if err := os.WriteFile(path, []byte("2023-12-25T10:30:00Z extended\n"), 0o640); err != nil {
		t.Fatal(err)
	}
	newer := time.Now().Add(time.Second)
	if err := os.Chtimes(path, newer, newer); err != nil {
		t.Fatal(err)
	}
	w.rescan(path)
	if len(scans) != 2 {
		t.Errorf("got %d scans after change, want 2", len(scans))
	}
}

func TestRescan_MissingFileIgnored(t *testing.T) {
	called := false
	w, err := New(Options{Patterns: []string{"/tmp/*.log"}}, func(files.ScanResult) { called = true })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.rescan(filepath.Join(t.TempDir(), "gone.log"))
	if called {
		t.Errorf("callback fired for a missing file")
	}
}

func TestSweep_ScansDiscoveredFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.log"), []byte("1703508600\n"), 0o640); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.json"), []byte("{}"), 0o640); err != nil {
		t.Fatal(err)
	}

	var paths []string
	w, err := New(Options{Patterns: []string{filepath.Join(dir, "*")}}, func(r files.ScanResult) {
		paths = append(paths, filepath.Base(r.Path))
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.sweep()
	if len(paths) != 2 {
		t.Errorf("swept %v, want both files", paths)
	}
}
