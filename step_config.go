package buildenv

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/mobiletools/buildenv/config"
	"github.com/mobiletools/buildenv/solution"
)

// LoadConfigStep locates and loads the tool configuration and attaches it
// to the build context. A missing configuration file is not an error; the
// build simply runs without declared environment settings.
//
// Prerequisites: state.Build must be set
// Updates: state.Build.SolutionDirectory (if empty), state.Build.Config
func LoadConfigStep(ctx context.Context, state State) (State, error) {
	bc := state.Build
	if bc == nil {
		return state, ErrNoBuildContext
	}

	if bc.SolutionDirectory == "" && bc.ProjectDirectory != "" {
		root, err := solution.Locate(bc.ProjectDirectory)
		if err != nil {
			return state, err
		}
		bc.SolutionDirectory = root
	}

	path, ok := config.Find(bc.SolutionDirectory)
	if !ok {
		slog.Debug("no tool configuration found",
			"runId", state.RunID, "dir", bc.SolutionDirectory)
		return state, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return state, nil
		}
		return state, err
	}

	bc.Config = cfg
	return state, nil
}

// ScaffoldConfigStep writes a default tool configuration at the solution
// root when none exists yet. Existing configurations are left untouched.
//
// Prerequisites: state.Build and state.Build.SolutionDirectory must be set
func ScaffoldConfigStep(ctx context.Context, state State) (State, error) {
	bc := state.Build
	if bc == nil {
		return state, ErrNoBuildContext
	}

	if _, ok := config.Find(bc.SolutionDirectory); ok {
		return state, nil
	}

	cfg := config.Default(bc.ProjectName)
	path := filepath.Join(bc.SolutionDirectory, config.DefaultFileName)
	if err := config.Save(path, cfg); err != nil {
		return state, err
	}

	bc.Config = cfg
	slog.Info("scaffolded default configuration", "runId", state.RunID, "path", path)
	return state, nil
}
