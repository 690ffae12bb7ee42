package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerLine(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, false, nil))

	logger.Info("buffer uploaded", slog.String("module", "rendering"), slog.Int("bytes", 48))

	line := out.String()
	if !strings.HasSuffix(line, "INFO [rendering] buffer uploaded bytes=48\n") {
		t.Errorf("unexpected log line %q", line)
	}
	if strings.Contains(line, "\033[") {
		t.Errorf("colour codes written with colour disabled: %q", line)
	}
}

func TestHandlerColour(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, true, nil))
	logger.Error("Failed to compile")

	if !strings.Contains(out.String(), "\033[91mERROR \033[0m") {
		t.Errorf("expected red level tag, got %q", out.String())
	}
}

func TestHandlerLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, false, &slog.HandlerOptions{Level: slog.LevelWarn}))
	logger.Info("hidden")
	logger.Debug("hidden")
	if out.Len() != 0 {
		t.Errorf("expected nothing below warn, got %q", out.String())
	}
	logger.Warn("shown")
	if !strings.Contains(out.String(), "WARN shown") {
		t.Errorf("expected warning, got %q", out.String())
	}
}

func TestHandlerWithAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, false, nil)).With(slog.String("module", "window"))
	logger.Info("resized", slog.Int("width", 800))
	if !strings.HasSuffix(out.String(), "[window] resized width=800\n") {
		t.Errorf("unexpected log line %q", out.String())
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"ERROR": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		if err != nil {
			t.Errorf("%q: unexpected error %s", in, err)
		}
		if got != want {
			t.Errorf("%q: got %s, expected %s", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}
