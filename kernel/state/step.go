package state

import "fmt"

// Step identifies one section of the intake dialogue.
type Step string

const (
	StepPersonalInfo Step = "personal_info"
	StepEducation    Step = "education"
	StepExperience   Step = "experience"
	StepSkills       Step = "skills"
	StepReview       Step = "review"
	StepFinalized    Step = "finalized"
)

// order is the canonical forward progression of the intake.
var order = []Step{
	StepPersonalInfo,
	StepEducation,
	StepExperience,
	StepSkills,
	StepReview,
	StepFinalized,
}

// Order returns the canonical step sequence, first to last.
func Order() []Step {
	out := make([]Step, len(order))
	copy(out, order)
	return out
}

func (s Step) index() int {
	for i, step := range order {
		if step == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s names a known step.
func (s Step) Valid() bool {
	return s.index() >= 0
}

// Next returns the successor in canonical order. ok is false for
// StepFinalized (terminal) and for unknown steps.
func (s Step) Next() (Step, bool) {
	i := s.index()
	if i < 0 || i+1 >= len(order) {
		return "", false
	}
	return order[i+1], true
}

// Before reports whether s precedes other in canonical order.
func (s Step) Before(other Step) bool {
	i, j := s.index(), other.index()
	return i >= 0 && j >= 0 && i < j
}

// ParseStep converts a serialized step name back to a Step.
func ParseStep(raw string) (Step, error) {
	s := Step(raw)
	if !s.Valid() {
		return "", fmt.Errorf("state: unknown step %q", raw)
	}
	return s, nil
}
