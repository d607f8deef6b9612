package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("source finished", "source", "linux-which", "found", 2)

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if parsed["msg"] != "source finished" {
		t.Errorf("msg = %v, want %q", parsed["msg"], "source finished")
	}
	if parsed["source"] != "linux-which" {
		t.Errorf("source = %v, want %q", parsed["source"], "linux-which")
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("source finished", "source", "macos-apps")

	output := buf.String()
	var parsed map[string]any
	if err := json.Unmarshal([]byte(output), &parsed); err == nil {
		t.Error("text format should not be valid JSON")
	}
	for _, want := range []string{"INFO", "source finished", "source=macos-apps"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestNew_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: Format("xml"), Output: &buf})
	logger.Info("message")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err == nil {
		t.Error("unknown format should default to text, not JSON")
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	logger.Info("discarded", "key", "value")
	logger.Error("discarded too")
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		configLevel  slog.Level
		logLevel     slog.Level
		shouldAppear bool
	}{
		{"info at info", slog.LevelInfo, slog.LevelInfo, true},
		{"debug at info", slog.LevelInfo, slog.LevelDebug, false},
		{"info at warn", slog.LevelWarn, slog.LevelInfo, false},
		{"trace at debug", slog.LevelDebug, LevelTrace, false},
		{"trace at trace", LevelTrace, LevelTrace, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: tt.configLevel, Format: FormatText, Output: &buf})
			logger.Log(context.Background(), tt.logLevel, "test message")

			if got := buf.Len() > 0; got != tt.shouldAppear {
				t.Errorf("got output=%v, want %v (output %q)", got, tt.shouldAppear, buf.String())
			}
		})
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		got := LevelFromVerbosity(tt.verbosity)
		if got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelTrace(t *testing.T) {
	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should be lower than LevelDebug")
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf})

	ctx := NewContext(context.Background(), logger)
	if got := FromContext(ctx); got != logger {
		t.Error("FromContext() did not return the stored logger")
	}
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext() without a logger should return slog.Default()")
	}
}

func TestOrDiscard(t *testing.T) {
	if OrDiscard(nil) == nil {
		t.Fatal("OrDiscard(nil) returned nil")
	}
	logger := ForTest(t)
	if OrDiscard(logger) != logger {
		t.Error("OrDiscard() should return a non-nil logger unchanged")
	}
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}
	n, err := tw.Write([]byte("probe finished\n"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len("probe finished\n") {
		t.Errorf("Write() = %d, want %d", n, len("probe finished\n"))
	}
}
