// Package solution locates the solution root for a build.
//
// Callers use the located directory to compute the solution-level secrets
// and configuration file paths fed into environment resolution.
package solution

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Locate walks upward from startDir looking for a directory containing a
// *.sln file or a .git subdirectory and returns it. If the walk reaches
// the filesystem root without a match, the root is returned; callers that
// care can compare the result against the root themselves.
func Locate(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	for {
		if isSolutionRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root: terminal result, not an error.
			return dir, nil
		}
		dir = parent
	}
}

// InGitRepo reports whether path is inside a git repository. Unlike
// Locate, the walk also stops at the current user's home directory:
// reaching home reports false even though home is not the filesystem root
// and even when home itself contains .git. Repositories at or above home
// are almost always accidental, so they are deliberately not claimed.
func InGitRepo(path string) bool {
	dir, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	home, _ := os.UserHomeDir()

	for {
		if home != "" && dir == home {
			return false
		}
		if hasGitDir(dir) {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}

func isSolutionRoot(dir string) bool {
	if hasGitDir(dir) {
		return true
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sln") {
			return true
		}
	}
	return false
}

func hasGitDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}
