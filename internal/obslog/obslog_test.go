package obslog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hailam/minichess/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARN":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBuildJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := build(config.Log{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("turn", zap.String("move", "b1c3"))
	_ = logger.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", lines[0], err)
	}
	if entry["msg"] != "turn" || entry["move"] != "b1c3" || entry["level"] != "info" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestBuildWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "minichess.log")
	var buf bytes.Buffer
	logger, err := build(config.Log{Level: "debug", Format: "console", File: path}, &buf)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	logger.Debug("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(buf.String(), "hello") {
		t.Errorf("message missing: file=%q console=%q", data, buf.String())
	}
}

func TestSetNil(t *testing.T) {
	Set(nil)
	if L() == nil {
		t.Fatal("L() returned nil after Set(nil)")
	}
}
