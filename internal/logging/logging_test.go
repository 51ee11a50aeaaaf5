package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger == nil {
		t.Fatal("Discard returned nil")
	}
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger should never be enabled")
	}
	// Must not panic.
	logger.Info("ignored", "key", "value")
	logger.With("component", "test").Error("also ignored")
}

func TestDefault(t *testing.T) {
	if Default(nil) == nil {
		t.Error("Default(nil) returned nil")
	}
	provided := Discard()
	if Default(provided) != provided {
		t.Error("Default should pass a non-nil logger through")
	}
}
