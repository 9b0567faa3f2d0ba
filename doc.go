// Package buildenv provides build-time configuration and secrets resolution
// for mobile app build pipelines.
//
// The package is organized into subpackages by domain:
//
//   - build: Build context and target platform enumeration
//   - env: Environment/secrets resolution engine (the core)
//   - config: Tool configuration file load/save and scaffolding
//   - solution: Solution root and git repository location
//   - testutil: Test utilities and fixtures
//
// The root package is the step runner: discrete pipeline steps a task host
// composes into a build, sharing a State that accumulates resolved values.
//
// # Quick Start
//
//	bc := &build.Context{
//	    ProjectDirectory:  projDir,
//	    SolutionDirectory: slnDir,
//	    Configuration:     "Release",
//	    Platform:          build.Android,
//	}
//
//	state, err := buildenv.Run(ctx, buildenv.NewState(bc),
//	    buildenv.LoadConfigStep,
//	    buildenv.GatherEnvironmentStep,
//	    buildenv.SecretsStep(""),
//	)
//
// See individual package documentation for detailed usage.
package buildenv
