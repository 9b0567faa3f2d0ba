package buildenv

import (
	"fmt"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/mobiletools/buildenv/build"
	"github.com/mobiletools/buildenv/env"
)

// State is the shared state threaded through pipeline steps. Steps receive
// it by value and return an updated copy.
type State struct {
	// RunID uniquely identifies this pipeline run in logs.
	RunID string

	// Build is the build context steps resolve against.
	Build *build.Context

	// Environment holds the merged environment mapping after
	// GatherEnvironmentStep.
	Environment map[string]string

	// Secrets holds de-prefixed secrets after SecretsStep.
	Secrets map[string]string

	// ManifestValues holds the merged mapping (manifest files included)
	// after ManifestValuesStep.
	ManifestValues map[string]string

	// KnownPrefix is the caller-supplied extra prefix, if any, recorded by
	// SecretsStep and ManifestValuesStep for token expansion.
	KnownPrefix string
}

// NewState creates pipeline state for the build context with a fresh run ID.
func NewState(bc *build.Context) State {
	name := ""
	if bc != nil {
		name = bc.ProjectName
	}
	return State{
		RunID: generateRunID(name),
		Build: bc,
	}
}

// WithRunID sets a custom run ID.
func (s State) WithRunID(runID string) State {
	s.RunID = runID
	return s
}

// ExpandManifest substitutes $Token$ occurrences in content using the
// manifest values gathered by ManifestValuesStep. Each token is tried bare
// and under every manifest prefix for the build's platform.
func (s State) ExpandManifest(content string) string {
	platform := build.Unsupported
	if s.Build != nil {
		platform = s.Build.Platform
	}
	return env.ReplaceTokens(content, s.ManifestValues, env.ManifestPrefixes(platform, s.KnownPrefix))
}

// generateRunID creates a unique run ID.
func generateRunID(projectName string) string {
	if projectName == "" {
		projectName = "build"
	}
	suffix, err := nanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 8)
	if err != nil {
		// Fallback to a timestamp suffix on entropy failure
		suffix = fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%s-%s-%s", time.Now().Format("2006-01-02"), projectName, suffix)
}
