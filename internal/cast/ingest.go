package cast

import (
	"fmt"
	"math"

	"github.com/neonshell/neonshell/internal/term"
	"github.com/neonshell/neonshell/internal/timeline"
)

// Defaults applied when the recording header or caller leaves a knob unset.
const (
	defaultRows    = 40
	defaultCols    = 120
	defaultMaxIdle = 2000 // ms; caps dead air between chunks
	tailHold       = 1000 // ms; how long the final snapshot stays on screen
)

// Options configures recording-to-timeline conversion.
type Options struct {
	// Speed multiplies every inter-chunk delay; 1 preserves original pacing,
	// 0 collapses the recording to instantaneous playback.
	Speed float64

	// MaxIdle caps a single inter-chunk gap in virtual ms. Zero selects the
	// default; negative disables the cap.
	MaxIdle int64

	// SampleInterval, when positive, coalesces chunk snapshots so that at
	// most one grid_snapshot is emitted per interval of virtual time. Long
	// recordings with thousands of tiny writes stay bounded this way.
	SampleInterval int64

	// Rows and Cols override the recording header's terminal dimensions.
	Rows, Cols int

	FPS    int
	Aspect string
	Theme  string
}

// ToTimeline replays the recording through a terminal interpreter and
// captures a grid snapshot at each chunk boundary, or once per sampling
// interval when one is set. The whole recording is interpreted in a single
// synchronous pass.
func ToTimeline(rec *Recording, opts Options) (*timeline.Timeline, error) {
	if opts.Speed < 0 {
		return nil, fmt.Errorf("speed multiplier must be non-negative, got %g", opts.Speed)
	}
	rows := firstPositive(opts.Rows, rec.Header.Height, defaultRows)
	cols := firstPositive(opts.Cols, rec.Header.Width, defaultCols)
	maxIdle := opts.MaxIdle
	if maxIdle == 0 {
		maxIdle = defaultMaxIdle
	}

	tl := timeline.New(timeline.Meta{
		FPS:    firstPositive(opts.FPS, 30),
		Aspect: firstNonEmpty(opts.Aspect, "16:9"),
		Scene:  rec.Header.Title,
		Theme:  opts.Theme,
		Source: "asciicast",
	})

	interp := term.NewInterpreter(rows, cols)

	var (
		cursor   int64
		lastEmit int64 = -1
		starts   []int64
		snaps    []*term.Snapshot
	)
	for i, chunk := range rec.Chunks {
		delta := int64(math.Round(float64(chunk.Delta) * opts.Speed))
		if maxIdle > 0 && delta > maxIdle {
			delta = maxIdle
		}
		cursor += delta

		interp.Feed(chunk.Data)

		last := i == len(rec.Chunks)-1
		if opts.SampleInterval > 0 && !last &&
			lastEmit >= 0 && cursor-lastEmit < opts.SampleInterval {
			continue
		}
		lastEmit = cursor
		starts = append(starts, cursor)
		snaps = append(snaps, interp.Snapshot())
	}

	// Each snapshot owns the screen until the next one appears; the final
	// snapshot holds for a fixed tail so the recording does not end on a
	// zero-length frame.
	for i, start := range starts {
		dur := int64(math.Round(float64(tailHold) * opts.Speed))
		if i+1 < len(starts) {
			dur = starts[i+1] - start
		}
		if err := tl.Append(timeline.Event{
			Start:    start,
			Duration: dur,
			Kind:     timeline.KindGridSnapshot,
			Snapshot: snaps[i],
		}); err != nil {
			return nil, err
		}
	}

	tl.Freeze()
	return tl, nil
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
