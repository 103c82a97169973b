package state

import (
	"maps"
	"strings"
)

// EducationEntry is one completed education item. Dates are normalized
// strings ("2006-01" or "2006"); End may be the open-end marker "present".
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// ExperienceEntry is one completed work-experience item.
type ExperienceEntry struct {
	Employer string `json:"employer"`
	Role     string `json:"role"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// ResumeData accumulates validated section values. Entry slices keep
// insertion order; Skills keeps insertion order with case-folded uniqueness.
type ResumeData struct {
	Personal   map[string]string `json:"personal,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
}

// Clone returns a deep copy so a rejected or conflicted turn can never
// alias committed state.
func (d ResumeData) Clone() ResumeData {
	out := ResumeData{}
	if d.Personal != nil {
		out.Personal = make(map[string]string, len(d.Personal))
		maps.Copy(out.Personal, d.Personal)
	}
	if d.Education != nil {
		out.Education = append([]EducationEntry(nil), d.Education...)
	}
	if d.Experience != nil {
		out.Experience = append([]ExperienceEntry(nil), d.Experience...)
	}
	if d.Skills != nil {
		out.Skills = append([]string(nil), d.Skills...)
	}
	return out
}

// HasSkill reports whether the case-folded token is already recorded.
func (d ResumeData) HasSkill(token string) bool {
	folded := strings.ToLower(strings.TrimSpace(token))
	for _, s := range d.Skills {
		if strings.ToLower(s) == folded {
			return true
		}
	}
	return false
}
