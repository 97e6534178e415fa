package theme

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses a custom theme from the given reader with strict field
// validation; unknown fields are rejected.
func Load(r io.Reader) (Theme, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var t Theme
	if err := decoder.Decode(&t); err != nil {
		if err == io.EOF {
			return Theme{}, fmt.Errorf("empty theme file")
		}
		return Theme{}, fmt.Errorf("failed to parse theme: %w", err)
	}
	if t.Name == "" {
		t.Name = strings.Title(t.ID) //nolint:staticcheck // theme ids are ASCII
	}
	if err := t.Validate(); err != nil {
		return Theme{}, fmt.Errorf("invalid theme: %w", err)
	}
	return t, nil
}

// Resolve returns the theme for a name: a built-in id, or a path to a YAML
// theme file.
func Resolve(name string) (Theme, error) {
	if t, err := Get(name); err == nil {
		return t, nil
	}
	if filepath.Ext(name) == ".yaml" || filepath.Ext(name) == ".yml" {
		f, err := os.Open(name) //nolint:gosec // theme path comes from user input
		if err != nil {
			return Theme{}, fmt.Errorf("failed to open theme file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return Load(f)
	}
	return Theme{}, fmt.Errorf("unknown theme %q (available: %v)", name, List())
}
