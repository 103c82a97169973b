// Package render turns the engine's structured prompt directives into
// human-readable text. The engine never inspects the rendered output; all
// dialogue decisions ride on the directive alone, so static templates and
// LLM renderers are interchangeable.
package render

import (
	"context"

	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/validate"
)

// Directive is the structured outbound prompt produced by one turn.
type Directive struct {
	// Step the dialogue is on after the turn.
	Step state.Step
	// Field to ask for, when collecting a single value.
	Field string
	// AskAnother requests the "add another entry?" question.
	AskAnother bool
	// Review requests presenting the accumulated resume for confirmation.
	Review bool
	// Finalized announces completion and document availability.
	Finalized bool
	// Reason is the rejection code when the previous input was refused;
	// the rendered text should re-ask around it.
	Reason validate.Reason
}

// Renderer produces the outbound message for one directive.
type Renderer interface {
	Render(ctx context.Context, d Directive, data state.ResumeData, lang string) (string, error)
}
