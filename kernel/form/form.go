// Package form describes the intake questionnaire: which fields each
// section collects, in what order, and the section limits. The default
// schema is embedded; deployments may override it with a YAML file.
package form

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OnslaughtSnail/vitae/kernel/validate"
)

// Field is one collectable value within a section.
type Field struct {
	ID       string
	Kind     validate.Kind
	Required bool
	// Label phrases the field per language ("en", "ar").
	Label map[string]string
}

// Limits are the configurable section caps.
type Limits struct {
	// MaxSkills completes the skills section once reached.
	MaxSkills int
	// MaxCorrections bounds review-stage edit requests; 0 means unlimited.
	MaxCorrections int
}

// Schema is a parsed intake questionnaire.
type Schema struct {
	Name       string
	Personal   []Field
	Education  []Field
	Experience []Field
	Limits     Limits
}

type rawField struct {
	ID       string            `yaml:"id"`
	Kind     string            `yaml:"kind"`
	Required bool              `yaml:"required"`
	Label    map[string]string `yaml:"label"`
}

type rawSchema struct {
	Name       string     `yaml:"name"`
	Personal   []rawField `yaml:"personal"`
	Education  []rawField `yaml:"education"`
	Experience []rawField `yaml:"experience"`
	Limits     struct {
		MaxSkills      int `yaml:"max_skills"`
		MaxCorrections int `yaml:"max_corrections"`
	} `yaml:"limits"`
}

// Load parses a schema YAML file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("form: read schema: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Schema, error) {
	var raw rawSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("form: parse schema: %w", err)
	}
	s := &Schema{
		Name: raw.Name,
		Limits: Limits{
			MaxSkills:      raw.Limits.MaxSkills,
			MaxCorrections: raw.Limits.MaxCorrections,
		},
	}
	var err error
	if s.Personal, err = convertFields("personal", raw.Personal); err != nil {
		return nil, err
	}
	if s.Education, err = convertFields("education", raw.Education); err != nil {
		return nil, err
	}
	if s.Experience, err = convertFields("experience", raw.Experience); err != nil {
		return nil, err
	}
	if len(s.Personal) == 0 || len(s.Education) == 0 || len(s.Experience) == 0 {
		return nil, fmt.Errorf("form: schema must define personal, education and experience fields")
	}
	return s, nil
}

func convertFields(section string, raw []rawField) ([]Field, error) {
	fields := make([]Field, 0, len(raw))
	seen := map[string]bool{}
	for _, f := range raw {
		if f.ID == "" {
			return nil, fmt.Errorf("form: %s field without id", section)
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("form: duplicate %s field %q", section, f.ID)
		}
		seen[f.ID] = true
		fields = append(fields, Field{
			ID:       f.ID,
			Kind:     validate.Kind(f.Kind),
			Required: f.Required,
			Label:    f.Label,
		})
	}
	return fields, nil
}

// FieldByID looks a field up within a section's field list.
func FieldByID(fields []Field, id string) (Field, bool) {
	for _, f := range fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}
