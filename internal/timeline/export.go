package timeline

import (
	"encoding/json"
	"io"
)

// document is the renderer-facing JSON shape of a compiled timeline.
type document struct {
	Meta          Meta    `json:"meta"`
	TotalDuration int64   `json:"total_duration_ms"`
	Events        []Event `json:"events"`
}

// WriteJSON writes the timeline as indented JSON, the contract consumed by
// the pixel renderer and encoder.
func (t *Timeline) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{
		Meta:          t.meta,
		TotalDuration: t.TotalDuration(),
		Events:        t.events,
	})
}

// WriteJSONL writes one event per line, preceded by no header; useful for
// streaming very long timelines into external tooling.
func (t *Timeline) WriteJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, e := range t.events {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON lets a timeline be embedded directly in other JSON documents.
func (t *Timeline) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{
		Meta:          t.meta,
		TotalDuration: t.TotalDuration(),
		Events:        t.events,
	})
}
