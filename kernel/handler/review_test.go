package handler

import (
	"testing"

	"github.com/OnslaughtSnail/vitae/kernel/form"
	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/validate"
)

func TestReview_ConfirmCompletes(t *testing.T) {
	h := NewReview()
	for _, text := range []string{"confirm", "generate", "تأكيد", "إنشاء"} {
		res := h.Handle(state.ResumeData{}, state.SubState{}, Input{Text: text})
		if res.Outcome != OutcomeSectionComplete {
			t.Fatalf("%q: expected section complete, got %s", text, res.Outcome)
		}
	}
}

func TestReview_EditRequestsCorrection(t *testing.T) {
	h := NewReview()
	cases := map[string]state.Step{
		"edit education":      state.StepEducation,
		"edit skills":         state.StepSkills,
		"edit personal":       state.StepPersonalInfo,
		"edit work experience": state.StepExperience,
		"تعديل التعليم":       state.StepEducation,
		"edit":                state.StepPersonalInfo,
	}
	for text, want := range cases {
		res := h.Handle(state.ResumeData{}, state.SubState{}, Input{Text: text})
		if res.Outcome != OutcomeCorrection {
			t.Fatalf("%q: expected correction, got %s", text, res.Outcome)
		}
		if res.Target != want {
			t.Fatalf("%q: expected target %s, got %s", text, want, res.Target)
		}
	}
}

func TestReview_UnknownInputRejected(t *testing.T) {
	h := NewReview()
	for _, text := range []string{"hello", "edit salary", "yes"} {
		res := h.Handle(state.ResumeData{}, state.SubState{}, Input{Text: text})
		if res.Outcome != OutcomeRejected || res.Reason != validate.ReasonUnrecognized {
			t.Fatalf("%q: expected unrecognized rejection, got %s (%s)", text, res.Outcome, res.Reason)
		}
		if !res.Hint.Review {
			t.Fatalf("%q: rejection must re-present the review", text)
		}
	}
}

func TestReview_Prompt(t *testing.T) {
	h := NewReview()
	if hint := h.Prompt(state.ResumeData{}, state.SubState{}); !hint.Review {
		t.Fatal("review prompt must request the summary")
	}
}

func TestRegistry_CoversAllDialogueSteps(t *testing.T) {
	schema, err := form.Default()
	if err != nil {
		t.Fatal(err)
	}
	handlers, err := Registry(schema)
	if err != nil {
		t.Fatal(err)
	}
	for _, step := range state.Order() {
		if step == state.StepFinalized {
			continue
		}
		h, ok := handlers[step]
		if !ok {
			t.Fatalf("no handler for %s", step)
		}
		if h.Step() != step {
			t.Fatalf("handler for %s reports %s", step, h.Step())
		}
	}
	if _, ok := handlers[state.StepFinalized]; ok {
		t.Fatal("the terminal step must have no handler")
	}
}
