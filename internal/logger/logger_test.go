package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Warn("malformed document treated as absent", "key", "sleepData")
	Error("reminder delivery failed", "kind", "water")

	data, err := os.ReadFile(LogFile(configDir))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "malformed document treated as absent") {
		t.Errorf("log file missing warning entry, got %q", string(data))
	}
}

func TestInitDebugMode(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: true, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("timer tick", "remaining", 3)
	Info("sleep record saved", "date", "2024-03-01")
}

func TestLogFile(t *testing.T) {
	got := LogFile("/tmp/wellhub")
	want := filepath.Join("/tmp/wellhub", "logs", "wellhub.log")
	if got != want {
		t.Errorf("LogFile() = %q, want %q", got, want)
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}
