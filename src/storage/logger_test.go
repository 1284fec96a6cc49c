package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWritesLeveledEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidytable.log")
	logger, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer logger.Close()

	logger.Info("scan started")
	logger.Error("file unreadable")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "INFO: scan started") {
		t.Errorf("missing INFO entry in %q", got)
	}
	if !strings.Contains(got, "ERROR: file unreadable") {
		t.Errorf("missing ERROR entry in %q", got)
	}
}

func TestLoggerSubscribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidytable.log")
	logger, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	defer logger.Close()

	ch := logger.Subscribe()
	logger.Warning("3 columns failed to convert")

	select {
	case entry := <-ch:
		if !strings.Contains(entry, "WARNING") {
			t.Errorf("entry = %q, want WARNING", entry)
		}
	default:
		t.Fatal("no entry delivered to subscriber")
	}
}

func TestLoggerReopen(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(filepath.Join(dir, "a.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer logger.Close()

	second := filepath.Join(dir, "b.log")
	if err := logger.Reopen(second); err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	logger.Info("after rotation")

	data, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "after rotation") {
		t.Errorf("entry not written to reopened file: %q", data)
	}
}

func TestEval(t *testing.T) {
	cases := []struct {
		expr string
		want int64
	}{
		{"1024", 1024},
		{"10 * 1024", 10240},
		{"10 * 1024 * 1024", 10485760},
	}
	for _, c := range cases {
		if got := eval(c.expr); got != c.want {
			t.Errorf("eval(%q) = %d, want %d", c.expr, got, c.want)
		}
	}
}
