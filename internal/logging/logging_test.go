package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := Init(dir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	slog.Info("board loaded", "tasks", 2)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "tablero.log"))
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "board loaded") || !strings.Contains(string(data), "tasks=2") {
		t.Errorf("Unexpected log contents: %s", data)
	}
}
