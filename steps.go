package buildenv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Step is a discrete unit of pipeline work. Steps receive state and return
// updated state; a returned error stops the run.
type Step func(ctx context.Context, state State) (State, error)

// ErrNoBuildContext indicates a step that requires a build context ran
// without one.
var ErrNoBuildContext = errors.New("no build context in state")

// Run executes steps in order, threading state through them. It returns
// the state produced by the last successful step along with the first
// error encountered, and stops early if ctx is canceled.
func Run(ctx context.Context, state State, steps ...Step) (State, error) {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return state, err
		}
		next, err := step(ctx, state)
		if err != nil {
			return state, err
		}
		state = next
	}
	return state, nil
}

// WithTiming wraps a step with timing metrics logged at debug level.
func WithTiming(step Step, name string) Step {
	return func(ctx context.Context, state State) (State, error) {
		start := time.Now()
		result, err := step(ctx, state)
		slog.Debug("step completed",
			"step", name, "runId", state.RunID, "duration", time.Since(start), "err", err)
		return result, err
	}
}

// WithRetry wraps a step with retry logic.
func WithRetry(step Step, maxRetries int) Step {
	return func(ctx context.Context, state State) (State, error) {
		var lastErr error
		for i := 0; i < maxRetries; i++ {
			result, err := step(ctx, state)
			if err == nil {
				return result, nil
			}
			lastErr = err
			if ctx.Err() != nil {
				break
			}
		}
		return state, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
	}
}
