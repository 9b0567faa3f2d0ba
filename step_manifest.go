package buildenv

import (
	"context"

	"github.com/mobiletools/buildenv/env"
)

// ManifestValuesStep returns a step that resolves the merged mapping with
// manifest files included, for use in manifest token substitution via
// State.ExpandManifest. knownPrefix optionally extends the prefix set
// tried when expanding tokens.
//
// Prerequisites: state.Build must be set
// Updates: state.ManifestValues, state.KnownPrefix
func ManifestValuesStep(knownPrefix string) Step {
	return func(ctx context.Context, state State) (State, error) {
		if state.Build == nil {
			return state, ErrNoBuildContext
		}

		values, err := env.GatherWithManifests(state.Build)
		if err != nil {
			return state, err
		}

		state.ManifestValues = values
		state.KnownPrefix = knownPrefix
		return state, nil
	}
}
