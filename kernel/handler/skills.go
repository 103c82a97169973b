package handler

import (
	"strings"

	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/validate"
)

// Skills accumulates a free-form token list. Tokens are trimmed and
// deduplicated case-insensitively against the existing set. The section
// completes on the done keyword or when the configured cap is reached.
type Skills struct {
	maxSkills int
}

func NewSkills(maxSkills int) *Skills {
	if maxSkills <= 0 {
		maxSkills = 50
	}
	return &Skills{maxSkills: maxSkills}
}

func (h *Skills) Step() state.Step {
	return state.StepSkills
}

func (h *Skills) Prompt(data state.ResumeData, sub state.SubState) Hint {
	return Hint{Field: "skill"}
}

func (h *Skills) Handle(data state.ResumeData, sub state.SubState, in Input) Result {
	if signalOf(in.Text) == signalDone {
		return Result{
			Outcome: OutcomeSectionComplete,
			Data:    data.Clone(),
			Sub:     state.SubState{},
		}
	}

	tokens := splitSkills(in.Text)
	if len(tokens) == 0 {
		return rejected(data, sub, validate.ReasonEmpty, Hint{Field: "skill"})
	}

	// Validate the whole batch before committing any of it.
	normalized := make([]string, 0, len(tokens))
	for _, token := range tokens {
		value, err := validate.Check(validate.KindSkill, token)
		if err != nil {
			return rejected(data, sub, validate.ReasonOf(err), Hint{Field: "skill"})
		}
		normalized = append(normalized, value)
	}

	updated := data.Clone()
	seen := map[string]bool{}
	for _, s := range updated.Skills {
		seen[strings.ToLower(s)] = true
	}
	for _, value := range normalized {
		folded := strings.ToLower(value)
		if seen[folded] {
			continue
		}
		seen[folded] = true
		updated.Skills = append(updated.Skills, value)
		if len(updated.Skills) >= h.maxSkills {
			return Result{
				Outcome: OutcomeSectionComplete,
				Data:    updated,
				Sub:     state.SubState{},
			}
		}
	}
	return Result{
		Outcome: OutcomeNeedsMoreInput,
		Data:    updated,
		Sub:     sub.Clone(),
		Hint:    Hint{Field: "skill"},
	}
}

func splitSkills(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';' || r == '،'
	})
	out := make([]string, 0, len(raw))
	for _, token := range raw {
		if t := strings.TrimSpace(token); t != "" {
			out = append(out, t)
		}
	}
	return out
}
