// Package cast parses asciicast v2 recordings and converts them into
// timelines, so real terminal sessions can be re-rendered through the same
// pipeline as authored scenes.
//
// Unlike the terminal interpreter, which degrades gracefully on malformed
// bytes, a recording is ground truth: any structural defect (bad JSON, wrong
// version, out-of-order timestamps) aborts parsing with the offending chunk
// index rather than producing a partial timeline.
package cast

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// Header is the first line of an asciicast v2 file.
type Header struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// Chunk is one output event from a recording. Delta is the gap to the
// previous chunk in milliseconds; Data is the raw byte payload fed to the
// terminal interpreter.
type Chunk struct {
	Delta int64
	Data  string
}

// Recording is a fully parsed asciicast file.
type Recording struct {
	Header Header
	Chunks []Chunk
}

// maxLineBytes bounds a single recording line; real casts stay far below
// this, but a pathological chunk should not OOM the scanner.
const maxLineBytes = 4 << 20

// ReadFile parses an asciicast v2 file from disk.
func ReadFile(path string) (*Recording, error) {
	f, err := os.Open(path) //nolint:gosec // file path from caller
	if err != nil {
		return nil, fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file close

	rec, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Parse reads an asciicast v2 stream: one JSON header line followed by
// event lines of the form [timestamp_seconds, type, data]. Only "o" (output)
// events become chunks; other event types are timestamp-checked and skipped.
func Parse(r io.Reader) (*Recording, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading recording: %w", err)
		}
		return nil, fmt.Errorf("empty recording")
	}

	var header Header
	if err := json.Unmarshal(scanner.Bytes(), &header); err != nil {
		return nil, fmt.Errorf("invalid header JSON: %w", err)
	}
	if header.Version != 2 {
		return nil, fmt.Errorf("unsupported asciicast version %d (expected 2)", header.Version)
	}

	var (
		chunks  []Chunk
		prevTS  float64
		pending int64
		index   int
	)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		index++

		ts, etype, data, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", index, err)
		}
		if ts < prevTS {
			return nil, fmt.Errorf("chunk %d: timestamp %.6f precedes %.6f", index, ts, prevTS)
		}
		pending += int64(math.Round((ts - prevTS) * 1000))
		prevTS = ts

		// Resize and input events carry no grid-visible output; their
		// elapsed time rolls into the next output chunk.
		if etype != "o" {
			continue
		}
		chunks = append(chunks, Chunk{Delta: pending, Data: data})
		pending = 0
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading recording: %w", err)
	}

	return &Recording{Header: header, Chunks: chunks}, nil
}

// parseEntry decodes one event line [ts, type, data].
func parseEntry(line []byte) (ts float64, etype, data string, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(line, &raw); err != nil {
		return 0, "", "", fmt.Errorf("invalid JSON: %w", err)
	}
	if len(raw) != 3 {
		return 0, "", "", fmt.Errorf("expected [timestamp, type, data], got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &ts); err != nil {
		return 0, "", "", fmt.Errorf("invalid timestamp: %w", err)
	}
	if err := json.Unmarshal(raw[1], &etype); err != nil {
		return 0, "", "", fmt.Errorf("invalid event type: %w", err)
	}
	if err := json.Unmarshal(raw[2], &data); err != nil {
		return 0, "", "", fmt.Errorf("invalid data payload: %w", err)
	}
	return ts, etype, data, nil
}
