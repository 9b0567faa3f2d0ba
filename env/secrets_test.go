package env

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mobiletools/buildenv/build"
	"github.com/mobiletools/buildenv/testutil"
)

func TestMergeFile_MissingFile(t *testing.T) {
	target := map[string]string{"Existing": "1"}

	err := MergeFile(target, filepath.Join(t.TempDir(), "secrets.json"))
	if err != nil {
		t.Fatalf("MergeFile() error = %v, want nil for missing file", err)
	}
	if len(target) != 1 {
		t.Errorf("target has %d keys, want 1", len(target))
	}
}

func TestMergeFile_DoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSecrets(t, dir, map[string]any{
		"Existing": "file",
		"Fresh":    "file",
	})

	target := map[string]string{"Existing": "original"}
	if err := MergeFile(target, filepath.Join(dir, "secrets.json")); err != nil {
		t.Fatalf("MergeFile() error = %v", err)
	}

	if got := target["Existing"]; got != "original" {
		t.Errorf("Existing = %q, want %q (first writer wins)", got, "original")
	}
	if got := target["Fresh"]; got != "file" {
		t.Errorf("Fresh = %q, want %q", got, "file")
	}
}

func TestMergeFile_StringifiesValues(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteJSON(t, dir, "secrets.json", map[string]any{
		"Str":    "plain",
		"Int":    7,
		"Float":  4.5,
		"Bool":   true,
		"Null":   nil,
		"Nested": map[string]any{"a": 1},
		"List":   []any{1, 2},
	})

	target := map[string]string{}
	if err := MergeFile(target, filepath.Join(dir, "secrets.json")); err != nil {
		t.Fatalf("MergeFile() error = %v", err)
	}

	want := map[string]string{
		"Str":    "plain",
		"Int":    "7",
		"Float":  "4.5",
		"Bool":   "true",
		"Null":   "",
		"Nested": `{"a":1}`,
		"List":   `[1,2]`,
	}
	for key, value := range want {
		if got := target[key]; got != value {
			t.Errorf("%s = %q, want %q", key, got, value)
		}
	}
}

func TestMergeFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secrets.json")
	if err := os.WriteFile(path, []byte(`["not", "an", "object"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	err := MergeFile(map[string]string{}, path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}

func TestSourcePaths_Order(t *testing.T) {
	bc := &build.Context{
		ProjectDirectory:  "/sln/proj",
		SolutionDirectory: "/sln",
		Configuration:     "Release",
	}

	got := SourcePaths(bc, true)
	want := []string{
		filepath.Join("/sln/proj", "secrets.json"),
		filepath.Join("/sln/proj", "secrets.Release.json"),
		filepath.Join("/sln", "secrets.json"),
		filepath.Join("/sln", "secrets.Release.json"),
		filepath.Join("/sln/proj", "manifest.json"),
		filepath.Join("/sln", "manifest.json"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d paths, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSourcePaths_NoConfiguration(t *testing.T) {
	bc := &build.Context{
		ProjectDirectory:  "/sln/proj",
		SolutionDirectory: "/sln",
	}

	for _, path := range SourcePaths(bc, false) {
		if filepath.Base(path) != SecretsFileName {
			t.Errorf("unexpected candidate %q without an active configuration", path)
		}
	}
}

func TestSourcePaths_NilContext(t *testing.T) {
	if got := SourcePaths(nil, true); got != nil {
		t.Errorf("SourcePaths(nil) = %v, want nil", got)
	}
}
