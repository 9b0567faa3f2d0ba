// Package testutil provides utilities for testing.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mobiletools/buildenv/build"
)

// TempSolution creates a temporary solution layout: a solution root
// containing App.sln and a project subdirectory. It returns the solution
// and project directories.
func TempSolution(t *testing.T) (solutionDir, projectDir string) {
	t.Helper()

	solutionDir = t.TempDir()
	if err := os.WriteFile(filepath.Join(solutionDir, "App.sln"), []byte{}, 0o644); err != nil {
		t.Fatalf("write solution file: %v", err)
	}

	projectDir = filepath.Join(solutionDir, "App")
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		t.Fatalf("create project dir: %v", err)
	}

	return solutionDir, projectDir
}

// BuildContext creates a build context over a fresh temporary solution.
func BuildContext(t *testing.T, platform build.Platform, configuration string) *build.Context {
	t.Helper()

	solutionDir, projectDir := TempSolution(t)
	return &build.Context{
		ProjectName:       "App",
		ProjectDirectory:  projectDir,
		SolutionDirectory: solutionDir,
		Configuration:     configuration,
		Platform:          platform,
	}
}

// WriteJSON marshals values and writes them to dir/name.
func WriteJSON(t *testing.T, dir, name string, values map[string]any) string {
	t.Helper()

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		t.Fatalf("marshal %s: %v", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteSecrets writes a secrets.json file in dir with the given values.
func WriteSecrets(t *testing.T, dir string, values map[string]any) string {
	t.Helper()
	return WriteJSON(t, dir, "secrets.json", values)
}

// WriteConfigSecrets writes a configuration-scoped secrets file
// (secrets.<configuration>.json) in dir.
func WriteConfigSecrets(t *testing.T, dir, configuration string, values map[string]any) string {
	t.Helper()
	return WriteJSON(t, dir, "secrets."+configuration+".json", values)
}

// WriteManifest writes a manifest.json file in dir with the given values.
func WriteManifest(t *testing.T, dir string, values map[string]any) string {
	t.Helper()
	return WriteJSON(t, dir, "manifest.json", values)
}
