package scene

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses a scene from the given reader with strict field validation.
// Unknown fields in the YAML cause an error.
func Load(r io.Reader) (*Scene, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var scn Scene
	if err := decoder.Decode(&scn); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty scene file")
		}
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	if err := scn.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	return &scn, nil
}

// LoadFile loads a scene from the given file path. When the scene has no id,
// the file stem is used.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path) //nolint:gosec // scene path comes from user input
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)

	var scn Scene
	if err := decoder.Decode(&scn); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty scene file %s", path)
		}
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	if scn.ID == "" {
		scn.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := scn.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return &scn, nil
}
