package buildenv

import (
	"context"

	"github.com/mobiletools/buildenv/env"
)

// SecretsStep returns a step that extracts de-prefixed secrets for the
// build's platform. knownPrefix optionally extends the prefix set with a
// caller-specific convention.
//
// Prerequisites: state.Build must be set
// Updates: state.Secrets, state.KnownPrefix
func SecretsStep(knownPrefix string) Step {
	return func(ctx context.Context, state State) (State, error) {
		if state.Build == nil {
			return state, ErrNoBuildContext
		}

		secrets, err := env.Secrets(state.Build, knownPrefix)
		if err != nil {
			return state, err
		}

		state.Secrets = secrets
		state.KnownPrefix = knownPrefix
		return state, nil
	}
}
