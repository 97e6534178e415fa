package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonshell/neonshell/internal/timeline"
)

func sampleTimeline(t *testing.T) *timeline.Timeline {
	t.Helper()
	tl := timeline.New(timeline.Meta{FPS: 30, Scene: "demo"})
	require.NoError(t, tl.Append(timeline.Event{
		Start: 0, Duration: 120, Kind: timeline.KindSpinnerFrame, Style: "warn",
		Spinner: &timeline.SpinnerFrame{Index: 0, Glyph: "⠋", Label: "loading"},
	}))
	require.NoError(t, tl.Append(timeline.Event{
		Start: 120, Duration: 40, Kind: timeline.KindProgressFrame, Style: "accent",
		Progress: &timeline.ProgressFrame{Filled: 5, Empty: 5, Percent: 50, Label: "build"},
	}))
	require.NoError(t, tl.Append(timeline.Event{
		Start: 160, Duration: 300, Kind: timeline.KindPause,
	}))
	tl.Freeze()
	return tl
}

func TestRows(t *testing.T) {
	rows := Rows(sampleTimeline(t))
	require.Len(t, rows, 3)
	assert.Equal(t, 0, rows[0].Index)
	assert.Equal(t, "spinner_frame", rows[0].Kind)
	assert.Contains(t, rows[0].Content, "loading")
	assert.Contains(t, rows[1].Content, "50%")
	assert.Equal(t, "pause", rows[2].Kind)
	assert.Empty(t, rows[2].Content)
}

func TestWriteTimeline_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimeline(&buf, sampleTimeline(t), "table"))

	out := buf.String()
	assert.Contains(t, out, "spinner_frame")
	assert.Contains(t, out, "progress_frame")
	assert.Contains(t, out, "0:00.460") // total duration footer
	assert.Contains(t, out, "3 events")
}

func TestWriteTimeline_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimeline(&buf, sampleTimeline(t), "plain"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4) // header + 3 rows
	assert.Contains(t, lines[0], "index")
	assert.Contains(t, lines[3], "pause")
}

func TestWriteTimeline_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimeline(&buf, sampleTimeline(t), "json"))

	var rows []Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, int64(120), rows[1].Start)
}

func TestWriteTimeline_JSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimeline(&buf, sampleTimeline(t), "jsonl"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		var r Row
		require.NoError(t, json.Unmarshal([]byte(line), &r))
	}
}

func TestWriteTimeline_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTimeline(&buf, sampleTimeline(t), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestFormatMS(t *testing.T) {
	assert.Equal(t, "0:00.000", formatMS(0))
	assert.Equal(t, "0:01.250", formatMS(1250))
	assert.Equal(t, "2:05.030", formatMS(125030))
}

func TestTruncateClipsWideRunes(t *testing.T) {
	long := strings.Repeat("例", 40)
	out := truncate(long)
	assert.True(t, strings.HasSuffix(out, "…"))
	assert.Less(t, len([]rune(out)), 40)
}
