package render

import (
	"context"
	"strings"
	"testing"

	"github.com/OnslaughtSnail/vitae/kernel/form"
	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/validate"
)

func newTemplate(t *testing.T) *Template {
	t.Helper()
	schema, err := form.Default()
	if err != nil {
		t.Fatal(err)
	}
	return NewTemplate(schema)
}

func TestTemplate_FieldQuestionUsesLabel(t *testing.T) {
	r := newTemplate(t)
	out, err := r.Render(context.Background(), Directive{Step: state.StepPersonalInfo, Field: "email"}, state.ResumeData{}, "en")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "your email address") {
		t.Fatalf("expected the field label, got %q", out)
	}

	out, err = r.Render(context.Background(), Directive{Step: state.StepPersonalInfo, Field: "email"}, state.ResumeData{}, "ar")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "عنوان بريدك الإلكتروني") {
		t.Fatalf("expected the arabic label, got %q", out)
	}
}

func TestTemplate_ReasonPrefixesQuestion(t *testing.T) {
	r := newTemplate(t)
	out, err := r.Render(context.Background(), Directive{
		Step:   state.StepPersonalInfo,
		Field:  "email",
		Reason: validate.ReasonBadEmail,
	}, state.ResumeData{}, "en")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "valid email") {
		t.Fatalf("expected the reason first, got %q", out)
	}
	if !strings.Contains(out, "your email address") {
		t.Fatalf("expected the re-ask after the reason, got %q", out)
	}
}

func TestTemplate_Review(t *testing.T) {
	r := newTemplate(t)
	data := state.ResumeData{
		Personal: map[string]string{"name": "Jane Doe"},
		Skills:   []string{"Go"},
	}
	out, err := r.Render(context.Background(), Directive{Step: state.StepReview, Review: true}, data, "en")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "# Jane Doe") {
		t.Fatalf("review must embed the resume body, got %q", out)
	}
	if !strings.Contains(out, "'confirm'") {
		t.Fatalf("review must explain the confirm keyword, got %q", out)
	}
}

func TestTemplate_AskAnotherPerStep(t *testing.T) {
	r := newTemplate(t)
	out, _ := r.Render(context.Background(), Directive{Step: state.StepExperience, AskAnother: true}, state.ResumeData{}, "en")
	if !strings.Contains(out, "Work experience entry saved") {
		t.Fatalf("expected the experience phrasing, got %q", out)
	}
}

func TestTemplate_Finalized(t *testing.T) {
	r := newTemplate(t)
	out, _ := r.Render(context.Background(), Directive{Step: state.StepFinalized, Finalized: true}, state.ResumeData{}, "en")
	if !strings.Contains(out, "generated") {
		t.Fatalf("unexpected finalized message %q", out)
	}
}

func TestTemplate_UnknownLanguageFallsBack(t *testing.T) {
	r := newTemplate(t)
	out, _ := r.Render(context.Background(), Directive{Step: state.StepSkills}, state.ResumeData{}, "de")
	if !strings.Contains(out, "done") {
		t.Fatalf("expected english fallback, got %q", out)
	}
}
