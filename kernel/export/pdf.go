package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/OnslaughtSnail/vitae/kernel/state"
)

// PDF renders the resume as a single-page A4 document. Layout is
// deliberately plain; visual polish is out of scope.
func PDF(data state.ResumeData, lang string) ([]byte, error) {
	t := titlesFor(lang)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	name := data.Personal["name"]
	if name == "" {
		name = "—"
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, name, "", "L", false)

	contact := make([]string, 0, 3)
	for _, id := range []string{"email", "phone", "address"} {
		if v := data.Personal[id]; v != "" {
			contact = append(contact, v)
		}
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, strings.Join(contact, " | "), "", "L", false)
	pdf.Ln(4)

	section := func(title string, lines []string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, 8, title, "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		if len(lines) == 0 {
			lines = []string{"—"}
		}
		for _, line := range lines {
			pdf.MultiCell(0, 6, line, "", "L", false)
		}
		pdf.Ln(3)
	}

	edu := make([]string, 0, len(data.Education))
	for _, e := range data.Education {
		edu = append(edu, fmt.Sprintf("%s, %s (%s – %s)", e.Degree, e.Institution, e.Start, e.End))
	}
	section(t.education, edu)

	exp := make([]string, 0, len(data.Experience))
	for _, e := range data.Experience {
		exp = append(exp, fmt.Sprintf("%s, %s (%s – %s)", e.Role, e.Employer, e.Start, e.End))
	}
	section(t.experience, exp)

	var skills []string
	if len(data.Skills) > 0 {
		skills = []string{strings.Join(data.Skills, ", ")}
	}
	section(t.skills, skills)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
