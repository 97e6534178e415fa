package timeline

import (
	"errors"
	"fmt"
)

// ErrFrozen is returned when appending to a timeline after Freeze.
var ErrFrozen = errors.New("timeline is frozen")

// Meta carries the global metadata of a compiled timeline.
type Meta struct {
	FPS    int    `json:"fps"`
	Aspect string `json:"aspect,omitempty"`
	Seed   int64  `json:"seed"`
	Scene  string `json:"scene,omitempty"`
	Theme  string `json:"theme,omitempty"`
	Preset string `json:"preset,omitempty"`
	Source string `json:"source,omitempty"`
}

// Timeline is an append-only, strictly time-ordered sequence of events.
// It is mutable during compilation and frozen (read-only) afterwards; a
// frozen timeline may be shared by any number of consumers.
type Timeline struct {
	meta   Meta
	events []Event
	frozen bool
}

// New returns an empty timeline with the given metadata.
func New(meta Meta) *Timeline {
	return &Timeline{meta: meta}
}

// Meta returns the timeline metadata.
func (t *Timeline) Meta() Meta { return t.meta }

// Append adds an event. Events must arrive in non-decreasing start order;
// a regression or an append after Freeze is an error.
func (t *Timeline) Append(e Event) error {
	if t.frozen {
		return ErrFrozen
	}
	if e.Duration < 0 {
		return fmt.Errorf("event %d: negative duration %d", len(t.events), e.Duration)
	}
	if n := len(t.events); n > 0 && e.Start < t.events[n-1].Start {
		return fmt.Errorf("event %d: start %dms precedes previous start %dms",
			n, e.Start, t.events[n-1].Start)
	}
	t.events = append(t.events, e)
	return nil
}

// Freeze marks the timeline read-only. Further appends fail with ErrFrozen.
func (t *Timeline) Freeze() { t.frozen = true }

// Frozen reports whether the timeline has been frozen.
func (t *Timeline) Frozen() bool { return t.frozen }

// Len returns the number of events.
func (t *Timeline) Len() int { return len(t.events) }

// Events returns the ordered event list. Callers must not mutate it; a
// frozen timeline is shared read-only.
func (t *Timeline) Events() []Event { return t.events }

// TotalDuration returns the end time of the last event, in virtual ms.
func (t *Timeline) TotalDuration() int64 {
	if len(t.events) == 0 {
		return 0
	}
	return t.events[len(t.events)-1].End()
}

// EventsInRange returns the events whose start falls in [from, to).
func (t *Timeline) EventsInRange(from, to int64) []Event {
	var out []Event
	for _, e := range t.events {
		if e.Start >= from && e.Start < to {
			out = append(out, e)
		}
	}
	return out
}
