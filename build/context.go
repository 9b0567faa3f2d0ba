package build

import (
	"github.com/mobiletools/buildenv/config"
)

// Context describes one build invocation. It is created by the task host
// and treated as immutable for the duration of a resolution.
type Context struct {
	// ProjectName is the name of the project being built.
	ProjectName string

	// ProjectDirectory is the directory containing the project file.
	ProjectDirectory string

	// SolutionDirectory is the solution root directory.
	SolutionDirectory string

	// Configuration is the active build configuration name,
	// e.g. "Debug" or "Release".
	Configuration string

	// Platform is the target platform of this build.
	Platform Platform

	// Config is the loaded tool configuration, if any.
	Config *config.Config
}

// EnvironmentSettings returns the declared environment settings from the
// attached tool configuration, or nil when no configuration is attached.
func (c *Context) EnvironmentSettings() *config.EnvironmentSettings {
	if c == nil || c.Config == nil {
		return nil
	}
	return c.Config.Environment
}
