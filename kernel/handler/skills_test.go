package handler

import (
	"fmt"
	"strings"
	"testing"

	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/validate"
)

func TestSkills_AccumulatesAndDeduplicates(t *testing.T) {
	h := NewSkills(50)
	res := h.Handle(state.ResumeData{}, state.SubState{}, Input{Text: "Go, SQL, go , Docker"})
	if res.Outcome != OutcomeNeedsMoreInput {
		t.Fatalf("unexpected outcome %s", res.Outcome)
	}
	if len(res.Data.Skills) != 3 {
		t.Fatalf("expected 3 unique skills, got %v", res.Data.Skills)
	}
	if res.Data.Skills[0] != "Go" || res.Data.Skills[1] != "SQL" || res.Data.Skills[2] != "Docker" {
		t.Fatalf("insertion order lost: %v", res.Data.Skills)
	}

	res = h.Handle(res.Data, res.Sub, Input{Text: "docker; Kubernetes"})
	if len(res.Data.Skills) != 4 {
		t.Fatalf("existing skills must dedupe case-insensitively: %v", res.Data.Skills)
	}
}

func TestSkills_DoneCompletesSection(t *testing.T) {
	h := NewSkills(50)
	data := state.ResumeData{Skills: []string{"Go"}}
	res := h.Handle(data, state.SubState{}, Input{Text: "done"})
	if res.Outcome != OutcomeSectionComplete {
		t.Fatalf("unexpected outcome %s", res.Outcome)
	}
	res = h.Handle(data, state.SubState{}, Input{Text: "تم"})
	if res.Outcome != OutcomeSectionComplete {
		t.Fatalf("arabic done must complete, got %s", res.Outcome)
	}
}

func TestSkills_BatchIsAtomic(t *testing.T) {
	h := NewSkills(50)
	long := strings.Repeat("x", 90)
	res := h.Handle(state.ResumeData{}, state.SubState{}, Input{Text: "Go," + long})
	if res.Outcome != OutcomeRejected || res.Reason != validate.ReasonTooLong {
		t.Fatalf("expected too_long rejection, got %s (%s)", res.Outcome, res.Reason)
	}
	if len(res.Data.Skills) != 0 {
		t.Fatalf("no token of a rejected batch may commit: %v", res.Data.Skills)
	}
}

func TestSkills_EmptyInputRejected(t *testing.T) {
	h := NewSkills(50)
	res := h.Handle(state.ResumeData{}, state.SubState{}, Input{Text: " , ; "})
	if res.Outcome != OutcomeRejected || res.Reason != validate.ReasonEmpty {
		t.Fatalf("expected empty rejection, got %s (%s)", res.Outcome, res.Reason)
	}
}

func TestSkills_CapCompletesSection(t *testing.T) {
	h := NewSkills(3)
	var tokens []string
	for i := 0; i < 5; i++ {
		tokens = append(tokens, fmt.Sprintf("skill%d", i))
	}
	res := h.Handle(state.ResumeData{}, state.SubState{}, Input{Text: strings.Join(tokens, ", ")})
	if res.Outcome != OutcomeSectionComplete {
		t.Fatalf("reaching the cap must complete, got %s", res.Outcome)
	}
	if len(res.Data.Skills) != 3 {
		t.Fatalf("expected exactly 3 skills, got %v", res.Data.Skills)
	}
}

func TestSkills_ArabicSeparator(t *testing.T) {
	h := NewSkills(50)
	res := h.Handle(state.ResumeData{}, state.SubState{}, Input{Text: "البرمجة، التحليل"})
	if len(res.Data.Skills) != 2 {
		t.Fatalf("arabic comma must split tokens: %v", res.Data.Skills)
	}
}
