// Package theme provides the color palette and effect-intensity registry.
// Themes never influence timeline structure except through the effects they
// enable (a glitch-cut theme makes transitions consult the scheduler); colors
// are carried symbolically and resolved by the downstream renderer.
package theme

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors a theme resolves style hints against.
type Palette struct {
	BG      lipgloss.Color `yaml:"bg"`
	Panel   lipgloss.Color `yaml:"panel,omitempty"`
	Header  lipgloss.Color `yaml:"header,omitempty"`
	Text    lipgloss.Color `yaml:"text"`
	Cmd     lipgloss.Color `yaml:"cmd"`
	Success lipgloss.Color `yaml:"success"`
	Warn    lipgloss.Color `yaml:"warn"`
	Accent  lipgloss.Color `yaml:"accent"`
	Error   lipgloss.Color `yaml:"error,omitempty"`
	Dim     lipgloss.Color `yaml:"dim,omitempty"`
	Cursor  lipgloss.Color `yaml:"cursor,omitempty"`
	Border  lipgloss.Color `yaml:"border,omitempty"`
}

// Effects holds effect toggles and intensities in [0, 1]. They are consumed
// by the external pixel pipeline; the compiler only reads GlitchCuts to
// decide whether transitions carry scheduler-derived cut payloads.
type Effects struct {
	CRT                 bool    `yaml:"crt,omitempty"`
	Scanlines           float64 `yaml:"scanlines,omitempty"`
	Noise               float64 `yaml:"noise,omitempty"`
	Vignette            float64 `yaml:"vignette,omitempty"`
	GlitchCuts          bool    `yaml:"glitch_cuts,omitempty"`
	Glow                float64 `yaml:"glow,omitempty"`
	ChromaticAberration float64 `yaml:"chromatic_aberration,omitempty"`
}

// Theme is a fully resolved theme.
type Theme struct {
	ID      string            `yaml:"id"`
	Name    string            `yaml:"name,omitempty"`
	Colors  Palette           `yaml:"colors"`
	Effects Effects           `yaml:"effects,omitempty"`
	Glyphs  map[string]string `yaml:"glyphs,omitempty"` // font-safety substitutions
}

// Validate checks the theme for required fields and sane effect ranges.
func (t *Theme) Validate() error {
	if t.ID == "" {
		return errors.New("id must be non-empty")
	}
	required := map[string]lipgloss.Color{
		"bg":      t.Colors.BG,
		"text":    t.Colors.Text,
		"cmd":     t.Colors.Cmd,
		"success": t.Colors.Success,
		"warn":    t.Colors.Warn,
		"accent":  t.Colors.Accent,
	}
	for name, c := range required {
		if c == "" {
			return fmt.Errorf("colors.%s must be set", name)
		}
	}
	for name, v := range map[string]float64{
		"scanlines":            t.Effects.Scanlines,
		"noise":                t.Effects.Noise,
		"vignette":             t.Effects.Vignette,
		"glow":                 t.Effects.Glow,
		"chromatic_aberration": t.Effects.ChromaticAberration,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("effects.%s must be in [0, 1], got %v", name, v)
		}
	}
	return nil
}

// Built-in themes.
var builtin = map[string]Theme{
	"synthwave": {
		ID:   "synthwave",
		Name: "Synthwave",
		Colors: Palette{
			BG:      lipgloss.Color("#0a0a14"),
			Panel:   lipgloss.Color("#141428"),
			Header:  lipgloss.Color("#1e1e3c"),
			Text:    lipgloss.Color("#e0e0ff"),
			Cmd:     lipgloss.Color("#67e8f9"),
			Success: lipgloss.Color("#86efac"),
			Warn:    lipgloss.Color("#fbbf24"),
			Accent:  lipgloss.Color("#c084fc"),
			Error:   lipgloss.Color("#f87171"),
			Dim:     lipgloss.Color("#666680"),
			Cursor:  lipgloss.Color("#ffffff"),
			Border:  lipgloss.Color("#333355"),
		},
		Effects: Effects{
			CRT:       true,
			Scanlines: 0.12,
			Vignette:  0.3,
			Glow:      0.4,
		},
	},
	"glitch": {
		ID:   "glitch",
		Name: "Glitch Grid",
		Colors: Palette{
			BG:      lipgloss.Color("#050505"),
			Panel:   lipgloss.Color("#101010"),
			Header:  lipgloss.Color("#181818"),
			Text:    lipgloss.Color("#d0ffd0"),
			Cmd:     lipgloss.Color("#00ffcc"),
			Success: lipgloss.Color("#00ff66"),
			Warn:    lipgloss.Color("#ffcc00"),
			Accent:  lipgloss.Color("#ff0066"),
			Error:   lipgloss.Color("#ff3333"),
			Dim:     lipgloss.Color("#446644"),
			Cursor:  lipgloss.Color("#00ff66"),
			Border:  lipgloss.Color("#224422"),
		},
		Effects: Effects{
			CRT:                 true,
			Scanlines:           0.2,
			Noise:               0.15,
			Vignette:            0.4,
			GlitchCuts:          true,
			Glow:                0.3,
			ChromaticAberration: 0.5,
		},
	},
}

// Get returns a built-in theme by id.
func Get(id string) (Theme, error) {
	t, ok := builtin[id]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %v)", id, List())
	}
	return t, nil
}

// List returns the built-in theme ids, sorted.
func List() []string {
	ids := make([]string, 0, len(builtin))
	for id := range builtin {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
