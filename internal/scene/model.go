// Package scene provides the authored scene-script model, its strict YAML
// loader, and the compiler that turns an ordered step list into a timeline.
package scene

import (
	"errors"
	"fmt"
	"strings"
)

// StepType discriminates scene step kinds. The set is closed: compilation is
// an exhaustive switch over these values and unknown types fail at load.
type StepType string

// Known step types.
const (
	StepBanner     StepType = "banner"
	StepLine       StepType = "line"
	StepCommand    StepType = "command"
	StepSpinner    StepType = "spinner"
	StepProgress   StepType = "progress"
	StepTransition StepType = "transition"
	StepPause      StepType = "pause"
)

// knownStyles are the visual style hints a step may carry.
var knownStyles = map[string]bool{
	"": true, "default": true, "command": true, "success": true,
	"warn": true, "error": true, "dim": true, "accent": true,
}

// Scene is a complete scene definition loaded from a YAML file.
type Scene struct {
	ID    string            `yaml:"id"`
	Title string            `yaml:"title,omitempty"`
	Theme string            `yaml:"theme,omitempty"` // optional theme override
	Vars  map[string]string `yaml:"vars,omitempty"`
	Steps []Step            `yaml:"steps"`
}

// Validate checks the scene and every step, reporting the offending step
// index on failure.
func (s *Scene) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("id must be non-empty")
	}
	if len(s.Steps) == 0 {
		return errors.New("steps must contain at least one step")
	}
	for i, step := range s.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// Step is a single step in a scene definition. Only the fields relevant to
// its Type are consulted during compilation.
type Step struct {
	Type StepType `yaml:"type"`

	Text   string `yaml:"text,omitempty"`
	Label  string `yaml:"label,omitempty"`
	Style  string `yaml:"style,omitempty"`
	Banner string `yaml:"banner,omitempty"` // named built-in banner

	Mode   string   `yaml:"mode,omitempty"` // command: fake | real
	Output []string `yaml:"output,omitempty"`

	Cycles int `yaml:"cycles,omitempty"` // spinner
	Width  int `yaml:"width,omitempty"`  // progress

	Duration   int64  `yaml:"duration_ms,omitempty"` // pause/transition override
	Transition string `yaml:"transition,omitempty"`  // cut, fade, wipe, glitch, ...
}

// Validate checks per-kind required fields.
func (st *Step) Validate() error {
	if !knownStyles[st.Style] {
		return fmt.Errorf("unknown style %q", st.Style)
	}
	switch st.Type {
	case StepBanner:
		// Banner may fall back to the scene title; nothing required.
	case StepLine:
		if st.Text == "" {
			return errors.New("line step requires text")
		}
	case StepCommand:
		if st.Text == "" {
			return errors.New("command step requires text")
		}
		if st.Mode != "" && st.Mode != "fake" && st.Mode != "real" {
			return fmt.Errorf("command mode must be fake or real, got %q", st.Mode)
		}
	case StepSpinner:
		if st.Cycles < 0 {
			return fmt.Errorf("spinner cycles must be non-negative, got %d", st.Cycles)
		}
	case StepProgress:
		if st.Width < 0 {
			return fmt.Errorf("progress width must be non-negative, got %d", st.Width)
		}
	case StepTransition, StepPause:
		if st.Duration < 0 {
			return fmt.Errorf("duration_ms must be non-negative, got %d", st.Duration)
		}
	case "":
		return errors.New("step type is required")
	default:
		return fmt.Errorf("unknown step type %q", st.Type)
	}
	return nil
}
