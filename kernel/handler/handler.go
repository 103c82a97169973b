// Package handler implements the per-section step handlers of the intake
// dialogue. Handlers are pure: they consume the current resume data, the
// step cursor and one user input, and return a new data copy plus an
// outcome. They never touch the session store.
package handler

import (
	"fmt"

	"github.com/OnslaughtSnail/vitae/kernel/form"
	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/validate"
)

// Outcome classifies one handler result for the transition table.
type Outcome string

const (
	// OutcomeNeedsMoreInput keeps the dialogue on the current step.
	OutcomeNeedsMoreInput Outcome = "needs_more_input"
	// OutcomeEntryComplete commits one repeatable entry; the step loops
	// while the follow-up "add another?" question is answered.
	OutcomeEntryComplete Outcome = "entry_complete"
	// OutcomeSectionComplete advances to the next step in canonical order.
	OutcomeSectionComplete Outcome = "section_complete"
	// OutcomeRejected leaves data and cursor untouched.
	OutcomeRejected Outcome = "rejected"
	// OutcomeCorrection requests a side transition back to Target.
	OutcomeCorrection Outcome = "correction"
)

// Hint is the machine-readable directive seed for the next outbound
// prompt. The engine turns it into a render directive; no human text here.
type Hint struct {
	// Field to ask for next, when collecting.
	Field string
	// AskAnother requests the "add another entry?" question.
	AskAnother bool
	// Review requests presentation of the accumulated data.
	Review bool
	// Reason carries the rejection code to phrase a re-prompt around.
	Reason validate.Reason
}

// Input is one user message routed to a handler.
type Input struct {
	Text     string
	Language string
}

// Result is the tagged handler outcome.
type Result struct {
	Outcome Outcome
	// Data is the updated resume copy. For OutcomeRejected and
	// OutcomeNeedsMoreInput on bad input it equals the input data.
	Data state.ResumeData
	// Sub is the updated cursor for the current step.
	Sub state.SubState
	// Hint seeds the outbound prompt.
	Hint Hint
	// Reason is set for OutcomeRejected.
	Reason validate.Reason
	// Target is the side-transition destination for OutcomeCorrection.
	Target state.Step
}

// Handler processes turns for one step.
type Handler interface {
	Step() state.Step
	// Handle applies one user input. Implementations must not mutate the
	// given data or cursor; updated copies are returned in the Result.
	Handle(data state.ResumeData, sub state.SubState, in Input) Result
	// Prompt seeds the outbound directive when the step is entered
	// without consuming input (fresh step or side transition).
	Prompt(data state.ResumeData, sub state.SubState) Hint
}

// Registry builds the full step-to-handler map for a schema.
func Registry(schema *form.Schema) (map[state.Step]Handler, error) {
	if schema == nil {
		return nil, fmt.Errorf("handler: schema is nil")
	}
	handlers := []Handler{
		NewPersonalInfo(schema.Personal),
		NewEducation(schema.Education),
		NewExperience(schema.Experience),
		NewSkills(schema.Limits.MaxSkills),
		NewReview(),
	}
	out := make(map[state.Step]Handler, len(handlers))
	for _, h := range handlers {
		out[h.Step()] = h
	}
	return out, nil
}

func rejected(data state.ResumeData, sub state.SubState, reason validate.Reason, hint Hint) Result {
	hint.Reason = reason
	return Result{
		Outcome: OutcomeRejected,
		Data:    data.Clone(),
		Sub:     sub.Clone(),
		Hint:    hint,
		Reason:  reason,
	}
}
