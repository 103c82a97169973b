package engine

import (
	"errors"
	"fmt"

	"github.com/OnslaughtSnail/vitae/kernel/handler"
	"github.com/OnslaughtSnail/vitae/kernel/state"
)

// ConflictError indicates the commit race exhausted its retry budget. The
// turn had no effect; resubmitting the same input is safe.
type ConflictError struct {
	SessionID string
	Attempts  int
}

func (e *ConflictError) Error() string {
	if e == nil {
		return "engine: concurrency conflict"
	}
	return fmt.Sprintf("engine: session %q commit conflicted after %d attempts", e.SessionID, e.Attempts)
}

func (e *ConflictError) Code() ErrorCode {
	return ErrorCodeConcurrencyConflict
}

// IsConflict reports whether err is a retries-exhausted commit conflict.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// InvalidTransitionError indicates a handler or the table produced a
// transition the state model forbids. This is an internal invariant
// violation, fatal to the turn.
type InvalidTransitionError struct {
	SessionID string
	Step      state.Step
	Outcome   handler.Outcome
	Cause     error
}

func (e *InvalidTransitionError) Error() string {
	if e == nil {
		return "engine: invalid transition"
	}
	return fmt.Sprintf("engine: session %q: invalid transition from %q on %q: %v", e.SessionID, e.Step, e.Outcome, e.Cause)
}

func (e *InvalidTransitionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func (e *InvalidTransitionError) Code() ErrorCode {
	return ErrorCodeInvalidTransition
}

// IsInvalidTransition reports whether err is an invariant-violating
// transition.
func IsInvalidTransition(err error) bool {
	var target *InvalidTransitionError
	return errors.As(err, &target)
}

// FinalizedError indicates a mutation attempt on a finalized session.
type FinalizedError struct {
	SessionID string
}

func (e *FinalizedError) Error() string {
	if e == nil {
		return "engine: session is finalized"
	}
	return fmt.Sprintf("engine: session %q is finalized and immutable", e.SessionID)
}

func (e *FinalizedError) Code() ErrorCode {
	return ErrorCodeSessionFinalized
}

// IsFinalized reports whether err is a write against a finalized session.
func IsFinalized(err error) bool {
	var target *FinalizedError
	return errors.As(err, &target)
}
