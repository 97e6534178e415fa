// Package report renders a compiled timeline as a human-readable event
// listing for dry runs, without performing any rendering.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/neonshell/neonshell/internal/timeline"
)

// previewWidth bounds the content column so wide grid snapshots do not blow
// up the table layout.
const previewWidth = 48

// Row is one event in the dry-run listing.
type Row struct {
	Index    int    `json:"index"`
	Start    int64  `json:"start_ms"`
	Duration int64  `json:"duration_ms"`
	Kind     string `json:"kind"`
	Style    string `json:"style,omitempty"`
	Content  string `json:"content,omitempty"`
}

// ColorEnabled reports whether styled output should be produced on f,
// honoring the NO_COLOR convention.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Rows flattens a timeline into listing rows.
func Rows(tl *timeline.Timeline) []Row {
	rows := make([]Row, 0, tl.Len())
	for i, e := range tl.Events() {
		rows = append(rows, Row{
			Index:    i,
			Start:    e.Start,
			Duration: e.Duration,
			Kind:     string(e.Kind),
			Style:    e.Style,
			Content:  describe(e),
		})
	}
	return rows
}

// WriteTimeline writes the dry-run listing to w in the requested format.
func WriteTimeline(w io.Writer, tl *timeline.Timeline, format string) error {
	rows := Rows(tl)
	switch strings.ToLower(format) {
	case "", "table":
		return writeTable(w, tl, rows)
	case "plain":
		return writePlain(w, rows)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "jsonl":
		enc := json.NewEncoder(w)
		for _, r := range rows {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writePlain(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintln(w, "index\tstart\tduration\tkind\tstyle\tcontent"); err != nil {
		return err
	}
	for _, r := range rows {
		line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s",
			r.Index, formatMS(r.Start), formatMS(r.Duration), r.Kind, r.Style, r.Content)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, tl *timeline.Timeline, rows []Row) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateHeader = true

	// Clamp the table to the terminal width when writing to one.
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			tw.SetAllowedRowLength(width)
		}
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 6, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: previewWidth + 2},
	})

	tw.AppendHeader(table.Row{"#", "Start", "Duration", "Kind", "Style", "Content"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.Index, formatMS(r.Start), formatMS(r.Duration), r.Kind, r.Style, r.Content})
	}
	if len(rows) == 0 {
		tw.AppendRow(table.Row{"-", "-", "-", "(empty timeline)", "-", "-"})
	}
	tw.AppendFooter(table.Row{"", "", formatMS(tl.TotalDuration()), "total", "", fmt.Sprintf("%d events", len(rows))})

	_ = tw.Render()
	return nil
}

// describe produces a one-line content preview for an event.
func describe(e timeline.Event) string {
	switch e.Kind {
	case timeline.KindGridSnapshot:
		if e.Snapshot == nil {
			return ""
		}
		return truncate(lastNonEmptyLine(e.Snapshot.Lines()))
	case timeline.KindSpinnerFrame:
		if e.Spinner == nil {
			return ""
		}
		if e.Spinner.Done {
			return truncate(e.Spinner.Glyph + " " + e.Spinner.Label)
		}
		return truncate(fmt.Sprintf("%s %s [%d]", e.Spinner.Glyph, e.Spinner.Label, e.Spinner.Index))
	case timeline.KindProgressFrame:
		if e.Progress == nil {
			return ""
		}
		return truncate(fmt.Sprintf("%s %d%%", e.Progress.Label, e.Progress.Percent))
	case timeline.KindTransition:
		if e.Transition == nil {
			return ""
		}
		if len(e.Transition.Cuts) > 0 {
			return fmt.Sprintf("%s (%d cuts)", e.Transition.Kind, len(e.Transition.Cuts))
		}
		return e.Transition.Kind
	default:
		return ""
	}
}

func lastNonEmptyLine(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i]
		}
	}
	return ""
}

// truncate clips a preview to the display width, accounting for wide runes.
func truncate(s string) string {
	return runewidth.Truncate(s, previewWidth, "…")
}

// formatMS renders virtual milliseconds as m:ss.mmm.
func formatMS(ms int64) string {
	m := ms / 60000
	s := (ms % 60000) / 1000
	frac := ms % 1000
	return fmt.Sprintf("%d:%02d.%03d", m, s, frac)
}
