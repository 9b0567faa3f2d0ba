package buildenv

import (
	"context"

	"github.com/mobiletools/buildenv/env"
)

// GatherEnvironmentStep resolves the merged environment mapping for the
// build context.
//
// Prerequisites: state.Build must be set (LoadConfigStep should run first
// so declared environment settings participate)
// Updates: state.Environment
func GatherEnvironmentStep(ctx context.Context, state State) (State, error) {
	if state.Build == nil {
		return state, ErrNoBuildContext
	}

	vars, err := env.Gather(state.Build)
	if err != nil {
		return state, err
	}

	state.Environment = vars
	return state, nil
}
