package handler

import (
	"maps"

	"github.com/OnslaughtSnail/vitae/kernel/form"
	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/validate"
)

// entrySection is the shared engine behind the Education and Experience
// steps: collect a fixed field set into the cursor's draft, commit the
// entry atomically once complete, then ask whether to add another.
type entrySection struct {
	step   state.Step
	fields []form.Field
	commit func(data *state.ResumeData, draft map[string]string)
	count  func(data state.ResumeData) int
}

func (h *entrySection) Step() state.Step {
	return h.step
}

// awaiting reports whether the "add another?" question is pending. A
// cleared cursor over existing entries (a review side transition back into
// the section) is treated the same way.
func (h *entrySection) awaiting(data state.ResumeData, sub state.SubState) bool {
	return sub.AwaitingAnother || (sub.Field == "" && len(sub.Draft) == 0 && h.count(data) > 0)
}

func (h *entrySection) Prompt(data state.ResumeData, sub state.SubState) Hint {
	if h.awaiting(data, sub) {
		return Hint{AskAnother: true}
	}
	field := sub.Field
	if field == "" {
		field = h.fields[0].ID
	}
	return Hint{Field: field}
}

func (h *entrySection) Handle(data state.ResumeData, sub state.SubState, in Input) Result {
	if h.awaiting(data, sub) {
		switch signalOf(in.Text) {
		case signalYes:
			next := state.SubState{Field: h.fields[0].ID, Draft: map[string]string{}}
			return Result{
				Outcome: OutcomeNeedsMoreInput,
				Data:    data.Clone(),
				Sub:     next,
				Hint:    Hint{Field: next.Field},
			}
		case signalNo, signalDone:
			return Result{
				Outcome: OutcomeSectionComplete,
				Data:    data.Clone(),
				Sub:     state.SubState{},
			}
		default:
			return rejected(data, sub, validate.ReasonUnrecognized, Hint{AskAnother: true})
		}
	}

	// Entering the step with no entries yet: open a draft and ask the
	// first field without consuming the input.
	if sub.Field == "" {
		next := state.SubState{Field: h.fields[0].ID, Draft: map[string]string{}}
		return Result{
			Outcome: OutcomeNeedsMoreInput,
			Data:    data.Clone(),
			Sub:     next,
			Hint:    Hint{Field: next.Field},
		}
	}

	field, ok := form.FieldByID(h.fields, sub.Field)
	if !ok {
		next := state.SubState{Field: h.fields[0].ID, Draft: map[string]string{}}
		return Result{
			Outcome: OutcomeNeedsMoreInput,
			Data:    data.Clone(),
			Sub:     next,
			Hint:    Hint{Field: next.Field},
		}
	}

	value, err := validate.Check(field.Kind, in.Text)
	if err != nil {
		return rejected(data, sub, validate.ReasonOf(err), Hint{Field: field.ID})
	}

	draft := map[string]string{}
	maps.Copy(draft, sub.Draft)
	draft[field.ID] = value

	if nextField, ok := h.fieldAfter(field.ID); ok {
		next := state.SubState{Field: nextField, Draft: draft}
		return Result{
			Outcome: OutcomeNeedsMoreInput,
			Data:    data.Clone(),
			Sub:     next,
			Hint:    Hint{Field: nextField},
		}
	}

	// Last field collected; the whole draft must pass the range check
	// before anything is committed.
	if err := validate.CheckRange(draft["start"], draft["end"]); err != nil {
		return rejected(data, sub, validate.ReasonOf(err), Hint{Field: field.ID})
	}

	updated := data.Clone()
	h.commit(&updated, draft)
	return Result{
		Outcome: OutcomeEntryComplete,
		Data:    updated,
		Sub:     state.SubState{AwaitingAnother: true},
		Hint:    Hint{AskAnother: true},
	}
}

func (h *entrySection) fieldAfter(id string) (string, bool) {
	for i, f := range h.fields {
		if f.ID == id && i+1 < len(h.fields) {
			return h.fields[i+1].ID, true
		}
	}
	return "", false
}

// NewEducation builds the education step handler.
func NewEducation(fields []form.Field) Handler {
	return &entrySection{
		step:   state.StepEducation,
		fields: fields,
		commit: func(data *state.ResumeData, draft map[string]string) {
			data.Education = append(data.Education, state.EducationEntry{
				Institution: draft["institution"],
				Degree:      draft["degree"],
				Start:       draft["start"],
				End:         draft["end"],
			})
		},
		count: func(data state.ResumeData) int { return len(data.Education) },
	}
}

// NewExperience builds the work-experience step handler.
func NewExperience(fields []form.Field) Handler {
	return &entrySection{
		step:   state.StepExperience,
		fields: fields,
		commit: func(data *state.ResumeData, draft map[string]string) {
			data.Experience = append(data.Experience, state.ExperienceEntry{
				Employer: draft["employer"],
				Role:     draft["role"],
				Start:    draft["start"],
				End:      draft["end"],
			})
		},
		count: func(data state.ResumeData) int { return len(data.Experience) },
	}
}
