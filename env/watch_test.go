package env

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReportsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secrets.json")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`{"Key":"1"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Clean(got) != path {
			t.Errorf("event path = %q, want %q", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for watched file write")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "secrets.json")
	other := filepath.Join(dir, "notes.txt")

	w, err := NewWatcher(watched)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	// The watched file write must still arrive even after unrelated churn
	if err := os.WriteFile(watched, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Clean(got) != watched {
			t.Errorf("event path = %q, want %q", got, watched)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for watched file write")
	}
}

func TestWatchSources_NilContext(t *testing.T) {
	if _, err := WatchSources(nil); !errors.Is(err, ErrNoContext) {
		t.Errorf("error = %v, want ErrNoContext", err)
	}
}
