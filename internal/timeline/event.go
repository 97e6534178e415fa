// Package timeline defines the ordered container of timestamped render
// events that compilation produces and every downstream consumer (renderer,
// dry-run printer, exporter) relies on. All timing is in virtual
// milliseconds, not wall clock.
package timeline

import (
	"github.com/neonshell/neonshell/internal/term"
)

// Kind identifies the type of a timeline event.
type Kind string

// Event kinds. Exactly one foreground-content event owns the screen at any
// instant; pause and transition events never carry grid content.
const (
	KindGridSnapshot  Kind = "grid_snapshot"
	KindSpinnerFrame  Kind = "spinner_frame"
	KindProgressFrame Kind = "progress_frame"
	KindTransition    Kind = "transition"
	KindPause         Kind = "pause"
)

// SpinnerFrame is the payload of a spinner_frame event.
type SpinnerFrame struct {
	Index int    `json:"index"`
	Glyph string `json:"glyph"`
	Label string `json:"label,omitempty"`
	Done  bool   `json:"done,omitempty"`
}

// ProgressFrame is the payload of a progress_frame event.
type ProgressFrame struct {
	Filled  int    `json:"filled"`
	Empty   int    `json:"empty"`
	Percent int    `json:"percent"`
	Label   string `json:"label,omitempty"`
}

// Transition is the payload of a transition event. Kind is an opaque tag
// consumed by the effects pipeline; Cuts carries scheduler-derived trigger
// offsets (virtual ms within the transition) for glitch-style cuts.
type Transition struct {
	Kind      string  `json:"kind"`
	Cuts      []int64 `json:"cuts,omitempty"`
	NoiseSeed int64   `json:"noise_seed,omitempty"`
}

// Event is a single timestamped render instruction. Exactly one payload
// field is set, matching Kind.
type Event struct {
	Start    int64 `json:"start_ms"`
	Duration int64 `json:"duration_ms"`
	Kind     Kind  `json:"kind"`

	Snapshot   *term.Snapshot `json:"snapshot,omitempty"`
	Spinner    *SpinnerFrame  `json:"spinner,omitempty"`
	Progress   *ProgressFrame `json:"progress,omitempty"`
	Transition *Transition    `json:"transition,omitempty"`

	// Style is a visual hint for grid snapshots (command, success, dim, ...)
	// that themes map to palette entries.
	Style string `json:"style,omitempty"`
}

// End returns the event's end time in virtual milliseconds.
func (e Event) End() int64 {
	return e.Start + e.Duration
}
