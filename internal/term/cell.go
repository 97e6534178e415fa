// Package term implements an incremental terminal stream interpreter: it
// consumes raw terminal output (printables, control bytes, ANSI escape
// sequences) and maintains a grid of styled character cells reflecting what a
// real terminal would display.
package term

// Color is a symbolic color reference carried through to the renderer
// unresolved: a named ANSI color ("red", "bright-cyan"), a 256-palette
// reference ("256:196"), a truecolor value ("#ff00aa"), or the empty string
// for the terminal default.
type Color string

// Style holds the SGR attributes applied to subsequently written cells.
type Style struct {
	FG        Color `json:"fg,omitempty" yaml:"fg,omitempty"`
	BG        Color `json:"bg,omitempty" yaml:"bg,omitempty"`
	Bold      bool  `json:"bold,omitempty" yaml:"bold,omitempty"`
	Dim       bool  `json:"dim,omitempty" yaml:"dim,omitempty"`
	Underline bool  `json:"underline,omitempty" yaml:"underline,omitempty"`
	Inverse   bool  `json:"inverse,omitempty" yaml:"inverse,omitempty"`
}

// Cell is a single character position in the grid. A zero Cell is blank.
// Attributes are fixed by the style in effect when the cell was written;
// overwriting replaces the whole cell, never merges attributes.
type Cell struct {
	Glyph string `json:"glyph,omitempty"`
	Style `yaml:",inline"`
}

// IsBlank reports whether the cell has no visible glyph.
func (c Cell) IsBlank() bool {
	return c.Glyph == "" || c.Glyph == " "
}
