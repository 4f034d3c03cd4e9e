package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWritesJSONLines(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")

	logger, err := NewLogger(logFile, "info")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	logger.Debug("debug message is filtered")
	logger.Info("report started", "input", "data/search.json")
	logger.Warning("record skipped", "index", 3)

	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "debug message is filtered") {
		t.Errorf("debug entry should be below the configured level:\n%s", content)
	}
	for _, want := range []string{`"msg":"report started"`, `"input":"data/search.json"`, `"index":3`, `"timestamp":`} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %s:\n%s", want, content)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DEBUG,
		"INFO":    INFO,
		"warn":    WARNING,
		"Warning": WARNING,
		"error":   ERROR,
		"":        INFO,
		"verbose": INFO,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNopLoggerClose(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("nothing happens")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
