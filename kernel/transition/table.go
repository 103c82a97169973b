// Package transition is the static mapping from (current step, handler
// outcome) to the next step. It replaces implicit graph wiring with a
// finite, independently testable set of edges.
package transition

import (
	"errors"
	"fmt"

	"github.com/OnslaughtSnail/vitae/kernel/handler"
	"github.com/OnslaughtSnail/vitae/kernel/state"
)

// ErrInvalid marks a transition not permitted by the state model, such as
// any attempt to leave the terminal Finalized step.
var ErrInvalid = errors.New("transition: invalid")

// Next resolves the step that follows one handler outcome. target is only
// consulted for handler.OutcomeCorrection and must name a step before
// Review.
func Next(current state.Step, outcome handler.Outcome, target state.Step) (state.Step, error) {
	if !current.Valid() {
		return "", fmt.Errorf("%w: unknown step %q", ErrInvalid, current)
	}
	if current == state.StepFinalized {
		return "", fmt.Errorf("%w: %q is terminal", ErrInvalid, current)
	}

	switch outcome {
	case handler.OutcomeNeedsMoreInput, handler.OutcomeRejected:
		return current, nil
	case handler.OutcomeEntryComplete:
		// The loop decision (another entry or not) arrives as a later
		// answer; committing an entry always stays on the step.
		return current, nil
	case handler.OutcomeSectionComplete:
		next, ok := current.Next()
		if !ok {
			return "", fmt.Errorf("%w: no successor for %q", ErrInvalid, current)
		}
		return next, nil
	case handler.OutcomeCorrection:
		if current != state.StepReview {
			return "", fmt.Errorf("%w: correction from %q", ErrInvalid, current)
		}
		if !target.Before(state.StepReview) {
			return "", fmt.Errorf("%w: correction target %q", ErrInvalid, target)
		}
		return target, nil
	default:
		return "", fmt.Errorf("%w: unknown outcome %q from %q", ErrInvalid, outcome, current)
	}
}
