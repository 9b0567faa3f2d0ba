package env

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mobiletools/buildenv/build"
)

// Conventional file names for on-disk value sources.
const (
	// SecretsFileName is the base secrets file name. The
	// configuration-scoped variant is secrets.<Configuration>.json.
	SecretsFileName = "secrets.json"

	// ManifestFileName holds values for manifest token substitution.
	ManifestFileName = "manifest.json"
)

// MergeFile folds the flat JSON object at path into target, inserting only
// keys that are not already present. A missing file is not an error;
// malformed JSON returns a *ParseError. Non-string property values are
// stringified (numbers and booleans via their literal form, nested
// structures as compact JSON).
func MergeFile(target map[string]string, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return &ParseError{Path: path, Err: err}
	}

	for key, value := range values {
		if _, exists := target[key]; exists {
			continue
		}
		target[key] = stringify(value)
	}
	return nil
}

// SourcePaths returns the candidate file paths for a build context in
// merge-precedence order (project before solution, base file before the
// configuration-scoped variant). Paths are returned whether or not the
// files exist; MergeFile skips absent ones.
func SourcePaths(bc *build.Context, includeManifests bool) []string {
	if bc == nil {
		return nil
	}

	var paths []string
	scoped := ""
	if bc.Configuration != "" {
		scoped = "secrets." + bc.Configuration + ".json"
	}

	for _, dir := range []string{bc.ProjectDirectory, bc.SolutionDirectory} {
		if dir == "" {
			continue
		}
		paths = append(paths, filepath.Join(dir, SecretsFileName))
		if scoped != "" {
			paths = append(paths, filepath.Join(dir, scoped))
		}
	}

	if includeManifests {
		for _, dir := range []string{bc.ProjectDirectory, bc.SolutionDirectory} {
			if dir == "" {
				continue
			}
			paths = append(paths, filepath.Join(dir, ManifestFileName))
		}
	}

	return paths
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		// Nested object or array: keep it as compact JSON text.
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
