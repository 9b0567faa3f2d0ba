package env

import "strings"

// environToMap converts an os.Environ-shaped slice into a mapping.
// Entries without a '=' or with an empty name are skipped. If a name
// appears twice, the first occurrence wins, matching the merge semantics
// used everywhere else in this package.
func environToMap(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			continue
		}
		if _, exists := vars[name]; exists {
			continue
		}
		vars[name] = value
	}
	return vars
}
