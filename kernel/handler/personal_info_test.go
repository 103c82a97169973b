package handler

import (
	"testing"

	"github.com/OnslaughtSnail/vitae/kernel/form"
	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/validate"
)

func personalFields(t *testing.T) []form.Field {
	t.Helper()
	schema, err := form.Default()
	if err != nil {
		t.Fatal(err)
	}
	return schema.Personal
}

func TestPersonalInfo_FirstContactAsksWithoutConsuming(t *testing.T) {
	h := NewPersonalInfo(personalFields(t))
	res := h.Handle(state.ResumeData{}, state.SubState{}, Input{Text: "hello"})
	if res.Outcome != OutcomeNeedsMoreInput {
		t.Fatalf("unexpected outcome %s", res.Outcome)
	}
	if res.Sub.Field != "name" {
		t.Fatalf("expected cursor on name, got %q", res.Sub.Field)
	}
	if len(res.Data.Personal) != 0 {
		t.Fatalf("greeting must not be stored: %+v", res.Data.Personal)
	}
}

func TestPersonalInfo_CollectsFieldByField(t *testing.T) {
	h := NewPersonalInfo(personalFields(t))
	data := state.ResumeData{}
	sub := state.SubState{Field: "name"}

	res := h.Handle(data, sub, Input{Text: "Jane Doe"})
	if res.Outcome != OutcomeNeedsMoreInput || res.Sub.Field != "email" {
		t.Fatalf("after name: %s cursor=%q", res.Outcome, res.Sub.Field)
	}
	if res.Data.Personal["name"] != "Jane Doe" {
		t.Fatalf("name not stored: %+v", res.Data.Personal)
	}

	res = h.Handle(res.Data, res.Sub, Input{Text: "jane@example.com"})
	if res.Sub.Field != "phone" {
		t.Fatalf("after email: cursor=%q", res.Sub.Field)
	}

	res = h.Handle(res.Data, res.Sub, Input{Text: "+1 555 123 4567"})
	if res.Sub.Field != "address" {
		t.Fatalf("after phone: cursor=%q", res.Sub.Field)
	}

	res = h.Handle(res.Data, res.Sub, Input{Text: "12 Main St"})
	if res.Outcome != OutcomeSectionComplete {
		t.Fatalf("expected section complete, got %s", res.Outcome)
	}
	if res.Data.Personal["address"] != "12 Main St" {
		t.Fatalf("address not stored: %+v", res.Data.Personal)
	}
}

func TestPersonalInfo_RejectsInvalidEmail(t *testing.T) {
	h := NewPersonalInfo(personalFields(t))
	data := state.ResumeData{Personal: map[string]string{"name": "Jane Doe"}}
	sub := state.SubState{Field: "email"}

	res := h.Handle(data, sub, Input{Text: "not-an-email"})
	if res.Outcome != OutcomeRejected {
		t.Fatalf("unexpected outcome %s", res.Outcome)
	}
	if res.Reason != validate.ReasonBadEmail {
		t.Fatalf("unexpected reason %s", res.Reason)
	}
	if res.Sub.Field != "email" {
		t.Fatalf("cursor must stay on email, got %q", res.Sub.Field)
	}
	if _, ok := res.Data.Personal["email"]; ok {
		t.Fatal("rejected value must not be stored")
	}
}

func TestPersonalInfo_SkipOptionalField(t *testing.T) {
	h := NewPersonalInfo(personalFields(t))
	data := state.ResumeData{Personal: map[string]string{
		"name": "Jane Doe", "email": "jane@example.com", "phone": "+1 555 123 4567",
		"address": "old address",
	}}
	res := h.Handle(data, state.SubState{Field: "address"}, Input{Text: "skip"})
	if res.Outcome != OutcomeSectionComplete {
		t.Fatalf("unexpected outcome %s", res.Outcome)
	}
	if _, ok := res.Data.Personal["address"]; ok {
		t.Fatal("skip must clear the optional value")
	}
}

func TestPersonalInfo_SkipRequiredFieldIsRejected(t *testing.T) {
	h := NewPersonalInfo(personalFields(t))
	res := h.Handle(state.ResumeData{}, state.SubState{Field: "name"}, Input{Text: "skip"})
	// "skip" on a required text field is treated as its literal value,
	// which the name kind accepts; a required email rejects it outright.
	if res.Outcome != OutcomeNeedsMoreInput && res.Outcome != OutcomeRejected {
		t.Fatalf("unexpected outcome %s", res.Outcome)
	}
	res = h.Handle(state.ResumeData{}, state.SubState{Field: "email"}, Input{Text: "skip"})
	if res.Outcome != OutcomeRejected || res.Reason != validate.ReasonBadEmail {
		t.Fatalf("expected bad_email rejection, got %s (%s)", res.Outcome, res.Reason)
	}
}

func TestPersonalInfo_UnknownCursorRestartsSection(t *testing.T) {
	h := NewPersonalInfo(personalFields(t))
	res := h.Handle(state.ResumeData{}, state.SubState{Field: "removed"}, Input{Text: "anything"})
	if res.Outcome != OutcomeNeedsMoreInput || res.Sub.Field != "name" {
		t.Fatalf("expected restart at name, got %s cursor=%q", res.Outcome, res.Sub.Field)
	}
}

func TestPersonalInfo_Prompt(t *testing.T) {
	h := NewPersonalInfo(personalFields(t))
	if hint := h.Prompt(state.ResumeData{}, state.SubState{}); hint.Field != "name" {
		t.Fatalf("fresh prompt should ask name, got %q", hint.Field)
	}
	if hint := h.Prompt(state.ResumeData{}, state.SubState{Field: "phone"}); hint.Field != "phone" {
		t.Fatalf("prompt should follow the cursor, got %q", hint.Field)
	}
}
