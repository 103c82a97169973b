package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"
)

var ErrSessionNotFound = errors.New("state: session not found")

// SubState is the transient per-step cursor. It is cleared whenever the
// session leaves its current step.
type SubState struct {
	// Field is the id of the field currently being collected.
	Field string `json:"field,omitempty"`
	// Draft holds validated values for an in-progress list entry. The
	// entry is committed to ResumeData atomically, never field by field.
	Draft map[string]string `json:"draft,omitempty"`
	// AwaitingAnother marks a pending "add another entry?" question.
	AwaitingAnother bool `json:"awaiting_another,omitempty"`
}

// Clone returns an independent copy of the cursor.
func (s SubState) Clone() SubState {
	out := s
	if s.Draft != nil {
		out.Draft = make(map[string]string, len(s.Draft))
		maps.Copy(out.Draft, s.Draft)
	}
	return out
}

// Session is the whole durable record for one intake dialogue. It is
// mutated only by the workflow engine and committed as an atomic replace.
type Session struct {
	ID       string `json:"id"`
	Language string `json:"language"`

	Step Step     `json:"step"`
	Sub  SubState `json:"sub"`

	Data ResumeData `json:"data"`

	// Corrections counts review-stage side transitions taken so far.
	Corrections int `json:"corrections,omitempty"`

	// Version increases by exactly one per committed mutation and is the
	// optimistic-concurrency token for the store's compare-and-set.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New returns a fresh session positioned at the first step with version 0.
func New(id, language string, now time.Time) Session {
	return Session{
		ID:        id,
		Language:  language,
		Step:      StepPersonalInfo,
		Data:      ResumeData{},
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	out := s
	out.Sub = s.Sub.Clone()
	out.Data = s.Data.Clone()
	return out
}

// Finalized reports whether the session reached the terminal step.
func (s Session) Finalized() bool {
	return s.Step == StepFinalized
}

// Marshal serializes the session for the store. The store treats the
// result as an opaque value.
func Marshal(s Session) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("state: marshal session %q: %w", s.ID, err)
	}
	return raw, nil
}

// Unmarshal restores a session from its stored form.
func Unmarshal(raw []byte) (Session, error) {
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, fmt.Errorf("state: unmarshal session: %w", err)
	}
	if !s.Step.Valid() {
		return Session{}, fmt.Errorf("state: unmarshal session %q: unknown step %q", s.ID, s.Step)
	}
	return s, nil
}
