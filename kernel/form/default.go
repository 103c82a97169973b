package form

import (
	_ "embed"
)

//go:embed default_form.yml
var defaultFormYAML []byte

// Default returns the bundled intake schema.
func Default() (*Schema, error) {
	return parse(defaultFormYAML)
}

// MustDefault returns the bundled schema and panics if the embedded YAML
// is broken, which only a bad build can cause.
func MustDefault() *Schema {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}
