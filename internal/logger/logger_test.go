package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInit_DisabledDiscards(t *testing.T) {
	if err := Init(Options{Enabled: false}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Info("nobody hears this")
}

func TestInit_Writer(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{Enabled: true, Writer: &buf, Level: slog.LevelInfo}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { Init(Options{}) })

	Debug("hidden")
	Info("search executed", "query", "ocean")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Debug message should be filtered at info level")
	}
	if !strings.Contains(out, "query=ocean") {
		t.Errorf("Expected structured attr in output, got %q", out)
	}
}

func TestInit_FileCreatesLog(t *testing.T) {
	dir := t.TempDir()
	if err := Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelDebug}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { Init(Options{}) })

	Info("hello")

	name := logPrefix + time.Now().Format("2006-01-02") + logSuffix
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Errorf("Expected log file %s: %v", name, err)
	}
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	old := filepath.Join(dir, "swatch-2026-01-01.log")
	recent := filepath.Join(dir, "swatch-2026-02-25.log")
	other := filepath.Join(dir, "notes.txt")
	for _, f := range []string{old, recent, other} {
		if err := os.WriteFile(f, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	cleanOldLogs(dir, now)

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("Expected old log to be removed")
	}
	if _, err := os.Stat(recent); err != nil {
		t.Error("Expected recent log to remain")
	}
	if _, err := os.Stat(other); err != nil {
		t.Error("Expected unrelated file to remain")
	}
}
