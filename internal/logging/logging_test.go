// internal/logging/logging_test.go
package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "perfgate.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("compared %s against %s", "baseline.json", "current.json")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "compared baseline.json against current.json") {
		t.Fatalf("expected LogEvent content, got: %s", data)
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}
