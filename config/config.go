package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Conventional file names for the tool configuration, in search order.
const (
	// DefaultFileName is the primary configuration file name.
	DefaultFileName = "buildtools.json"

	// YAMLFileName is the YAML variant of the configuration file.
	YAMLFileName = "buildtools.yaml"
)

// Config is the tool configuration stored at the solution root.
type Config struct {
	// AppName is the display name of the application being built.
	AppName string `json:"appName,omitempty" yaml:"appName,omitempty"`

	// Environment declares default settings and per-configuration overrides
	// applied during environment resolution.
	Environment *EnvironmentSettings `json:"environment,omitempty" yaml:"environment,omitempty"`
}

// EnvironmentSettings declares key/value settings merged into resolved
// environment mappings. Entries never replace keys supplied by a
// higher-precedence source (OS environment or secrets files).
type EnvironmentSettings struct {
	// Defaults apply to every build configuration.
	Defaults map[string]string `json:"defaults,omitempty" yaml:"defaults,omitempty"`

	// Configuration maps a build configuration name (e.g. "Release") to
	// settings that override Defaults for that configuration.
	Configuration map[string]map[string]string `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// Effective returns the settings for the named build configuration:
// Defaults with the configuration-specific entries written over them.
// The receiver is not modified. Returns nil if there is nothing to apply.
func (e *EnvironmentSettings) Effective(buildConfiguration string) map[string]string {
	if e == nil {
		return nil
	}

	var overrides map[string]string
	if buildConfiguration != "" {
		overrides = e.Configuration[buildConfiguration]
	}
	if len(e.Defaults) == 0 && len(overrides) == 0 {
		return nil
	}

	effective := make(map[string]string, len(e.Defaults)+len(overrides))
	for key, value := range e.Defaults {
		effective[key] = value
	}
	for key, value := range overrides {
		effective[key] = value
	}
	return effective
}

// Default returns a scaffold configuration suitable for a new solution.
func Default(appName string) *Config {
	return &Config{
		AppName: appName,
		Environment: &EnvironmentSettings{
			Defaults:      map[string]string{},
			Configuration: map[string]map[string]string{},
		},
	}
}

// Find looks for a configuration file in dir using the conventional names.
// It returns the full path of the first match.
func Find(dir string) (string, bool) {
	for _, name := range []string{DefaultFileName, YAMLFileName} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Load reads and parses the configuration file at path. The format is
// chosen by extension: .yaml/.yml parse as YAML, anything else as JSON.
// A missing file returns ErrNotFound; malformed content returns a
// *ParseError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if isYAML(path) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	} else {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed. The format is chosen by extension like Load.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	// Configuration is shared with the team and should be readable
	return os.WriteFile(path, data, 0o644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
