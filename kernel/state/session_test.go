package state

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	now := time.Now()
	sess := New("s1", "ar", now)
	if sess.Step != StepPersonalInfo {
		t.Fatalf("expected personal_info start, got %s", sess.Step)
	}
	if sess.Version != 0 {
		t.Fatalf("expected version 0, got %d", sess.Version)
	}
	if sess.Language != "ar" || sess.ID != "s1" {
		t.Fatalf("unexpected identity: %s %s", sess.ID, sess.Language)
	}
	if sess.Finalized() {
		t.Fatal("fresh session must not be finalized")
	}
}

func TestSession_CloneIsDeep(t *testing.T) {
	sess := New("s1", "en", time.Now())
	sess.Data.Personal = map[string]string{"name": "Jane"}
	sess.Data.Skills = []string{"Go"}
	sess.Sub = SubState{Field: "start", Draft: map[string]string{"institution": "MIT"}}

	clone := sess.Clone()
	clone.Data.Personal["name"] = "changed"
	clone.Data.Skills[0] = "changed"
	clone.Sub.Draft["institution"] = "changed"

	if sess.Data.Personal["name"] != "Jane" {
		t.Fatal("personal map aliased")
	}
	if sess.Data.Skills[0] != "Go" {
		t.Fatal("skills slice aliased")
	}
	if sess.Sub.Draft["institution"] != "MIT" {
		t.Fatal("draft map aliased")
	}
}

func TestSession_MarshalRoundTrip(t *testing.T) {
	sess := New("s1", "en", time.Now().UTC())
	sess.Step = StepEducation
	sess.Version = 4
	sess.Data.Education = []EducationEntry{{Institution: "MIT", Degree: "BSc", Start: "2015", End: "2019"}}

	raw, err := Marshal(sess)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got.Step != StepEducation || got.Version != 4 {
		t.Fatalf("unexpected restore: %s v%d", got.Step, got.Version)
	}
	if len(got.Data.Education) != 1 || got.Data.Education[0].Institution != "MIT" {
		t.Fatalf("education entries lost: %+v", got.Data.Education)
	}
}

func TestUnmarshal_RejectsUnknownStep(t *testing.T) {
	if _, err := Unmarshal([]byte(`{"id":"s1","step":"bogus","version":1}`)); err == nil {
		t.Fatal("expected error for unknown step")
	}
}

func TestResumeData_HasSkill(t *testing.T) {
	data := ResumeData{Skills: []string{"Go", "SQL"}}
	if !data.HasSkill(" go ") {
		t.Fatal("case-folded lookup failed")
	}
	if data.HasSkill("Rust") {
		t.Fatal("unexpected skill")
	}
}
