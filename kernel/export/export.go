// Package export renders a finalized resume into downloadable documents.
// Export is a read-only projection of session data: it never mutates state
// and is safe to retry independently of the dialogue.
package export

import (
	"fmt"
	"strings"

	"github.com/OnslaughtSnail/vitae/kernel/state"
)

// sectionTitles per language.
var sectionTitles = map[string]struct {
	education  string
	experience string
	skills     string
}{
	"en": {education: "Education", experience: "Work Experience", skills: "Skills"},
	"ar": {education: "التعليم", experience: "الخبرة المهنية", skills: "المهارات"},
}

func titlesFor(lang string) struct{ education, experience, skills string } {
	if t, ok := sectionTitles[lang]; ok {
		return t
	}
	return sectionTitles["en"]
}

// Markdown formats the resume as a markdown document. Also used by the
// review step to present the accumulated data.
func Markdown(data state.ResumeData, lang string) string {
	t := titlesFor(lang)
	var sb strings.Builder

	name := data.Personal["name"]
	if name == "" {
		name = "—"
	}
	fmt.Fprintf(&sb, "# %s\n\n", name)

	contact := make([]string, 0, 3)
	for _, id := range []string{"email", "phone", "address"} {
		if v := data.Personal[id]; v != "" {
			contact = append(contact, v)
		}
	}
	if len(contact) > 0 {
		fmt.Fprintf(&sb, "%s\n\n", strings.Join(contact, " | "))
	}

	fmt.Fprintf(&sb, "## %s\n\n", t.education)
	for _, e := range data.Education {
		fmt.Fprintf(&sb, "- %s, %s (%s – %s)\n", e.Degree, e.Institution, e.Start, e.End)
	}
	if len(data.Education) == 0 {
		sb.WriteString("- —\n")
	}

	fmt.Fprintf(&sb, "\n## %s\n\n", t.experience)
	for _, e := range data.Experience {
		fmt.Fprintf(&sb, "- %s, %s (%s – %s)\n", e.Role, e.Employer, e.Start, e.End)
	}
	if len(data.Experience) == 0 {
		sb.WriteString("- —\n")
	}

	fmt.Fprintf(&sb, "\n## %s\n\n", t.skills)
	if len(data.Skills) > 0 {
		fmt.Fprintf(&sb, "%s\n", strings.Join(data.Skills, ", "))
	} else {
		sb.WriteString("—\n")
	}
	return sb.String()
}
