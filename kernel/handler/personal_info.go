package handler

import (
	"github.com/OnslaughtSnail/vitae/kernel/form"
	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/validate"
)

// PersonalInfo collects the fixed personal-detail fields in schema order.
// Optional fields may be skipped with the skip keyword.
type PersonalInfo struct {
	fields []form.Field
}

func NewPersonalInfo(fields []form.Field) *PersonalInfo {
	return &PersonalInfo{fields: fields}
}

func (h *PersonalInfo) Step() state.Step {
	return state.StepPersonalInfo
}

func (h *PersonalInfo) Prompt(data state.ResumeData, sub state.SubState) Hint {
	field := sub.Field
	if field == "" {
		field = h.fields[0].ID
	}
	return Hint{Field: field}
}

func (h *PersonalInfo) Handle(data state.ResumeData, sub state.SubState, in Input) Result {
	// First contact with the step: ask the first field without consuming
	// the input that brought the user here.
	if sub.Field == "" {
		next := sub.Clone()
		next.Field = h.fields[0].ID
		return Result{
			Outcome: OutcomeNeedsMoreInput,
			Data:    data.Clone(),
			Sub:     next,
			Hint:    Hint{Field: next.Field},
		}
	}

	field, ok := form.FieldByID(h.fields, sub.Field)
	if !ok {
		// Cursor points at a field the schema no longer has; restart the
		// section rather than corrupt it.
		next := state.SubState{Field: h.fields[0].ID}
		return Result{
			Outcome: OutcomeNeedsMoreInput,
			Data:    data.Clone(),
			Sub:     next,
			Hint:    Hint{Field: next.Field},
		}
	}

	updated := data.Clone()
	if updated.Personal == nil {
		updated.Personal = map[string]string{}
	}

	if signalOf(in.Text) == signalSkip && !field.Required {
		delete(updated.Personal, field.ID)
	} else {
		value, err := validate.Check(field.Kind, in.Text)
		if err != nil {
			return rejected(data, sub, validate.ReasonOf(err), Hint{Field: field.ID})
		}
		updated.Personal[field.ID] = value
	}

	if nextField, ok := h.fieldAfter(field.ID); ok {
		next := state.SubState{Field: nextField}
		return Result{
			Outcome: OutcomeNeedsMoreInput,
			Data:    updated,
			Sub:     next,
			Hint:    Hint{Field: nextField},
		}
	}
	return Result{
		Outcome: OutcomeSectionComplete,
		Data:    updated,
		Sub:     state.SubState{},
	}
}

func (h *PersonalInfo) fieldAfter(id string) (string, bool) {
	for i, f := range h.fields {
		if f.ID == id && i+1 < len(h.fields) {
			return h.fields[i+1].ID, true
		}
	}
	return "", false
}
