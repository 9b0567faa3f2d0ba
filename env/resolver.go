package env

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mobiletools/buildenv/build"
)

// Resolver gathers environment variables and secrets for a build.
// The zero value is ready to use.
type Resolver struct {
	// Environ supplies the OS environment table.
	// Defaults to os.Environ; override in tests to control the seed.
	Environ func() []string

	// Logger receives debug notes about contributing sources.
	// Defaults to slog.Default.
	Logger *slog.Logger
}

func (r *Resolver) environ() []string {
	if r.Environ != nil {
		return r.Environ()
	}
	return os.Environ()
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Gather produces the merged environment mapping for the build context:
// OS environment first, then secrets files in precedence order, then the
// configuration's declared environment settings. Later sources only fill
// keys absent from everything earlier. A nil context returns just the OS
// environment.
func (r *Resolver) Gather(bc *build.Context) (map[string]string, error) {
	return r.gather(bc, false)
}

// GatherWithManifests is Gather with the project and solution manifest
// files layered in after the secrets files.
func (r *Resolver) GatherWithManifests(bc *build.Context) (map[string]string, error) {
	return r.gather(bc, true)
}

func (r *Resolver) gather(bc *build.Context, includeManifests bool) (map[string]string, error) {
	vars := environToMap(r.environ())
	if bc == nil {
		return vars, nil
	}

	for _, path := range SourcePaths(bc, includeManifests) {
		before := len(vars)
		if err := MergeFile(vars, path); err != nil {
			return nil, err
		}
		if added := len(vars) - before; added > 0 {
			r.logger().Debug("merged file values", "path", path, "keys", added)
		}
	}

	ApplySettings(vars, bc.EnvironmentSettings().Effective(bc.Configuration))

	return vars, nil
}

// Secrets scans the OS environment for variables carrying the platform's
// secret prefixes (plus knownPrefix, if supplied) and returns them with
// the prefixes stripped from the key names. Only the OS environment is
// scanned; secrets files do not contribute. The configuration's declared
// environment settings are overlaid onto the stripped-key result.
//
// Two variables reducing to the same stripped key is ambiguous and fails
// with ErrDuplicateKey.
func (r *Resolver) Secrets(bc *build.Context, knownPrefix string) (map[string]string, error) {
	if bc == nil {
		return nil, ErrNoContext
	}

	prefixes := SecretPrefixes(bc.Platform, false)
	if knownPrefix != "" {
		prefixes = append(prefixes, knownPrefix)
	}

	environ := environToMap(r.environ())
	secrets := make(map[string]string)
	for _, prefix := range prefixes {
		for name, value := range environ {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			key := strings.TrimPrefix(name, prefix)
			if _, exists := secrets[key]; exists {
				return nil, fmt.Errorf("%q from %q: %w", key, name, ErrDuplicateKey)
			}
			secrets[key] = value
		}
	}

	r.logger().Debug("extracted secrets",
		"platform", bc.Platform, "prefixes", len(prefixes), "keys", len(secrets))

	ApplySettings(secrets, bc.EnvironmentSettings().Effective(bc.Configuration))

	return secrets, nil
}
