package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/achuth-0908/scgateway/internal/config"
)

func TestApplyLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for level, want := range tests {
		applyLevel(level)
		if got := zerolog.GlobalLevel(); got != want {
			t.Errorf("applyLevel(%q) = %v, want %v", level, got, want)
		}
	}
}

func TestWriterConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(writer(config.Log{}, &buf))
	logger.Info().Str("op", "get suppliers").Msg("database operation")

	if !strings.Contains(buf.String(), "database operation") {
		t.Errorf("expected console output, got %q", buf.String())
	}
}

func TestWriterAlsoWritesFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "scgateway.log")

	w := writer(config.Log{File: path, MaxSizeMB: 1}, &buf)
	logger := zerolog.New(w)
	logger.Error().Str("op", "insert supplier").Msg("database operation failed")
	if c, ok := w.(interface{ Close() error }); ok {
		c.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "insert supplier") {
		t.Errorf("expected log file to contain the op, got %q", data)
	}
	if !strings.Contains(buf.String(), "insert supplier") {
		t.Errorf("expected console to contain the op, got %q", buf.String())
	}
}
