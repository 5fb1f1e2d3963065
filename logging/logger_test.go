package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNopLogger(t *testing.T) {
	t.Run("methods do nothing", func(t *testing.T) {
		l := NopLogger{}
		l.Debug("test message", "key", "value")
		l.Info("test message", "key", "value")
		l.Warn("test message", "key", "value")
		l.Error("test message", "key", "value")
	})

	t.Run("With returns same NopLogger", func(t *testing.T) {
		l := NopLogger{}
		if _, ok := l.With("key", "value").(NopLogger); !ok {
			t.Error("With should return NopLogger")
		}
	})
}

func TestSlogAdapter(t *testing.T) {
	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		if adapter.logger == nil {
			t.Error("adapter.logger should not be nil")
		}
	})

	t.Run("levels are forwarded", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewText(&buf, slog.LevelDebug)

		adapter.Debug("test debug", "foo", "bar")
		adapter.Info("test info")
		adapter.Warn("test warn")
		adapter.Error("test error")

		out := buf.String()
		for _, want := range []string{"level=DEBUG", "test debug", "foo=bar", "level=INFO", "level=WARN", "level=ERROR"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got: %s", want, out)
			}
		}
	})

	t.Run("level threshold filters records", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewText(&buf, slog.LevelWarn)
		adapter.Info("hidden")
		if buf.Len() != 0 {
			t.Errorf("expected no output, got: %s", buf.String())
		}
	})

	t.Run("With adds attributes", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewText(&buf, slog.LevelDebug)
		adapter.With("unit", "PetController").Info("declared")
		if !strings.Contains(buf.String(), "unit=PetController") {
			t.Errorf("expected unit attribute, got: %s", buf.String())
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		level slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{" warning ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, ok := ParseLevel(tt.input)
			if ok != tt.ok || level != tt.level {
				t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.input, level, ok, tt.level, tt.ok)
			}
		})
	}
}

func TestOrNop(t *testing.T) {
	if _, ok := OrNop(nil).(NopLogger); !ok {
		t.Error("OrNop(nil) should return NopLogger")
	}
	l := NewSlogAdapter(nil)
	if OrNop(l) != Logger(l) {
		t.Error("OrNop should return the given logger")
	}
}
