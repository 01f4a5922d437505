package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeKVs(t *testing.T) {
	got := sanitizeKVs([]any{"lesson_id", "l1", "api_key", "sk-123", "Authorization", "Bearer x", "dangling"})
	want := []any{"lesson_id", "l1", "api_key", "[REDACTED]", "Authorization", "[REDACTED]", "dangling"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kv[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "devroad.log")
	log, err := New(Options{Mode: "prod", Level: "info", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("session completed", "total", 30, "token", "abc")
	log.Debug("hidden")
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "session completed") {
		t.Errorf("log missing message: %s", out)
	}
	if strings.Contains(out, "abc") {
		t.Errorf("token not redacted: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %s", out)
	}
}

func TestNop(t *testing.T) {
	l := Nop().With("k", "v")
	l.Error("ignored")
}
