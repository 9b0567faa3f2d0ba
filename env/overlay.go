package env

// ApplySettings inserts each settings key into target only if absent.
// Existing entries always outrank the overlay. A nil or empty settings
// mapping is a no-op.
func ApplySettings(target, settings map[string]string) {
	for key, value := range settings {
		if _, exists := target[key]; exists {
			continue
		}
		target[key] = value
	}
}
