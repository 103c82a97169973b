package handler

import (
	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/validate"
)

// Review presents the accumulated resume for confirmation. It collects no
// data: a confirm keyword finalizes, an edit request yields a side
// transition back to the named section.
type Review struct{}

func NewReview() *Review {
	return &Review{}
}

func (h *Review) Step() state.Step {
	return state.StepReview
}

func (h *Review) Prompt(data state.ResumeData, sub state.SubState) Hint {
	return Hint{Review: true}
}

func (h *Review) Handle(data state.ResumeData, sub state.SubState, in Input) Result {
	if signalOf(in.Text) == signalConfirm {
		return Result{
			Outcome: OutcomeSectionComplete,
			Data:    data.Clone(),
			Sub:     state.SubState{},
		}
	}
	if target, ok := editTarget(in.Text); ok {
		return Result{
			Outcome: OutcomeCorrection,
			Data:    data.Clone(),
			Sub:     state.SubState{},
			Target:  target,
		}
	}
	return rejected(data, sub, validate.ReasonUnrecognized, Hint{Review: true})
}
