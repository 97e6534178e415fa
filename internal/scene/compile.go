package scene

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/neonshell/neonshell/internal/preset"
	"github.com/neonshell/neonshell/internal/sched"
	"github.com/neonshell/neonshell/internal/template"
	"github.com/neonshell/neonshell/internal/term"
	"github.com/neonshell/neonshell/internal/theme"
	"github.com/neonshell/neonshell/internal/timeline"
)

// Spinner frame glyphs, cycled in order; the final frame always renders the
// completion glyph.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerDoneGlyph = "✓"

// glitchCutGap is the mean gap between glitch-cut triggers inside a
// transition, in virtual ms.
const glitchCutGap = 120

// Default grid dimensions when the caller does not size the terminal.
const (
	defaultRows = 40
	defaultCols = 120
)

// Options configures a compilation pass.
type Options struct {
	Preset preset.Preset
	Theme  theme.Theme

	// Speed multiplies every emitted duration. 1 keeps preset timing; 0
	// collapses all durations to zero for instantaneous rendering.
	Speed float64

	// Vars overrides the built-in template variables (workspace, theme,
	// date) and the scene's own vars.
	Vars map[string]string

	// Sched supplies every stochastic decision. When nil, a randomly seeded
	// scheduler is constructed and its seed recorded in the timeline meta.
	Sched *sched.Scheduler

	Rows, Cols int
	Aspect     string
}

// compiler carries the state of one single-threaded compilation pass. The
// interpreter and timeline are exclusively owned until Compile returns.
type compiler struct {
	opts   Options
	vars   map[string]string
	interp *term.Interpreter
	tl     *timeline.Timeline
	cursor int64
}

// Compile walks the scene's steps in order and produces a frozen timeline.
// Steps compile independently in a single linear pass; any error aborts with
// the offending step index and no partial timeline is returned.
func Compile(scn *Scene, opts Options) (*timeline.Timeline, error) {
	if err := scn.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	if opts.Speed < 0 {
		return nil, fmt.Errorf("speed multiplier must be non-negative, got %g", opts.Speed)
	}
	if opts.Rows <= 0 {
		opts.Rows = defaultRows
	}
	if opts.Cols <= 0 {
		opts.Cols = defaultCols
	}
	if opts.Aspect == "" {
		opts.Aspect = "16:9"
	}
	if opts.Sched == nil {
		opts.Sched = sched.NewRandom()
	}

	c := &compiler{
		opts:   opts,
		vars:   buildVars(scn, opts),
		interp: term.NewInterpreter(opts.Rows, opts.Cols),
		tl: timeline.New(timeline.Meta{
			FPS:    opts.Preset.FPS,
			Aspect: opts.Aspect,
			Seed:   opts.Sched.Seed(),
			Scene:  scn.ID,
			Theme:  opts.Theme.ID,
			Preset: opts.Preset.Name,
			Source: "scene",
		}),
	}

	for i, step := range scn.Steps {
		if err := c.compileStep(scn, step); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Type, err)
		}
	}

	c.tl.Freeze()
	return c.tl, nil
}

// buildVars assembles the template variable map: built-ins, then scene vars,
// then caller overrides.
func buildVars(scn *Scene, opts Options) map[string]string {
	builtins := map[string]string{
		"workspace": filepath.Join(os.TempDir(), "demo-"+opts.Theme.ID),
		"theme":     opts.Theme.ID,
		"date":      time.Now().Format("2006-01-02"),
	}
	return template.MergeVars(template.MergeVars(builtins, scn.Vars), opts.Vars)
}

func (c *compiler) compileStep(scn *Scene, step Step) error {
	switch step.Type {
	case StepBanner:
		return c.compileBanner(scn, step)
	case StepLine:
		return c.compileLine(step)
	case StepCommand:
		return c.compileCommand(step)
	case StepSpinner:
		return c.compileSpinner(step)
	case StepProgress:
		return c.compileProgress(step)
	case StepTransition:
		return c.compileTransition(step)
	case StepPause:
		c.emit(timeline.Event{
			Kind:     timeline.KindPause,
			Duration: c.scale(orDefault(step.Duration, c.opts.Preset.Pause)),
		})
		return nil
	default:
		return fmt.Errorf("unknown step type %q", step.Type)
	}
}

func (c *compiler) compileBanner(scn *Scene, step Step) error {
	text := step.Text
	if step.Banner != "" {
		art, err := Banner(step.Banner)
		if err != nil {
			return err
		}
		text = art
	} else if text == "" {
		text = scn.Title
	}
	text, err := template.Expand(text, c.vars)
	if err != nil {
		return err
	}
	for _, line := range strings.Split(text, "\n") {
		c.writeLine(line, "accent")
	}
	c.snapshot(c.scale(c.opts.Preset.BannerHold), "banner")
	return nil
}

func (c *compiler) compileLine(step Step) error {
	text, err := template.Expand(step.Text, c.vars)
	if err != nil {
		return err
	}
	c.writeLine(text, step.Style)
	c.snapshot(c.scale(c.opts.Preset.LineHold), step.Style)
	return nil
}

// compileCommand emits a prompt snapshot and, when the step has output, one
// output snapshot. Real mode feeds the literal output text byte-for-byte
// through the interpreter; fake mode styles each line and folds the per-line
// streaming delay into the event duration. Both paths emit identical event
// shapes so the renderer cannot tell real from fake.
func (c *compiler) compileCommand(step Step) error {
	text, err := template.Expand(step.Text, c.vars)
	if err != nil {
		return err
	}
	c.writeLine("❯ "+text, "command")
	c.snapshot(c.scale(c.opts.Preset.CommandHold), "command")

	if len(step.Output) == 0 {
		return nil
	}
	out, err := template.ExpandAll(step.Output, c.vars)
	if err != nil {
		return fmt.Errorf("output %w", err)
	}
	if step.Mode == "real" {
		c.interp.Feed(strings.Join(out, "\r\n") + "\r\n")
	} else {
		for _, line := range out {
			c.writeLine(line, step.Style)
		}
	}
	dur := c.scale(c.opts.Preset.CommandOutput)*int64(len(out)) +
		c.scale(c.opts.Preset.LineHold)
	c.snapshot(dur, step.Style)
	return nil
}

func (c *compiler) compileSpinner(step Step) error {
	label, err := template.Expand(firstNonEmpty(step.Label, step.Text), c.vars)
	if err != nil {
		return err
	}
	cycles := step.Cycles
	if cycles == 0 {
		cycles = c.opts.Preset.SpinnerCycles
	}
	// Frame selection is purely cyclic, never seeded: the same step always
	// animates identically regardless of scheduler state.
	for i := 0; i < cycles; i++ {
		idx := i % len(spinnerFrames)
		c.emit(timeline.Event{
			Kind:     timeline.KindSpinnerFrame,
			Duration: c.scale(c.opts.Preset.SpinnerCycle),
			Spinner:  &timeline.SpinnerFrame{Index: idx, Glyph: spinnerFrames[idx], Label: label},
			Style:    "warn",
		})
	}
	c.emit(timeline.Event{
		Kind:     timeline.KindSpinnerFrame,
		Duration: c.scale(c.opts.Preset.LineHold),
		Spinner:  &timeline.SpinnerFrame{Index: cycles % len(spinnerFrames), Glyph: spinnerDoneGlyph, Label: label, Done: true},
		Style:    "success",
	})
	return nil
}

func (c *compiler) compileProgress(step Step) error {
	label, err := template.Expand(firstNonEmpty(step.Label, step.Text), c.vars)
	if err != nil {
		return err
	}
	width := step.Width
	if width == 0 {
		width = 26
	}
	for i := 0; i <= width; i++ {
		c.emit(timeline.Event{
			Kind:     timeline.KindProgressFrame,
			Duration: c.scale(c.opts.Preset.ProgressStep),
			Progress: &timeline.ProgressFrame{
				Filled:  i,
				Empty:   width - i,
				Percent: i * 100 / width,
				Label:   label,
			},
			Style: "accent",
		})
	}
	return nil
}

func (c *compiler) compileTransition(step Step) error {
	kind := step.Transition
	if kind == "" {
		kind = "cut"
	}
	dur := c.scale(orDefault(step.Duration, c.opts.Preset.Transition))
	payload := &timeline.Transition{Kind: kind}
	if kind == "glitch" || c.opts.Theme.Effects.GlitchCuts {
		payload.Cuts = c.opts.Sched.GlitchCuts(dur, glitchCutGap)
		payload.NoiseSeed = c.opts.Sched.NoiseSeed(c.tl.Len())
	}
	c.emit(timeline.Event{
		Kind:       timeline.KindTransition,
		Duration:   dur,
		Transition: payload,
	})
	return nil
}

// writeLine feeds one styled line into the interpreter, terminated CR+LF so
// the next line starts at column 0.
func (c *compiler) writeLine(text, style string) {
	if sgr := styleSGR(style); sgr != "" {
		c.interp.Feed(sgr + text + "\x1b[0m\r\n")
	} else {
		c.interp.Feed(text + "\r\n")
	}
}

// snapshot emits a grid_snapshot event covering the current screen state.
func (c *compiler) snapshot(duration int64, style string) {
	c.emit(timeline.Event{
		Kind:     timeline.KindGridSnapshot,
		Duration: duration,
		Snapshot: c.interp.Snapshot(),
		Style:    style,
	})
}

// emit appends an event at the running cursor and advances it. Start times
// are derived from the cursor, so Append cannot regress.
func (c *compiler) emit(e timeline.Event) {
	e.Start = c.cursor
	if err := c.tl.Append(e); err != nil {
		panic(fmt.Sprintf("scene: internal ordering violation: %v", err))
	}
	c.cursor += e.Duration
}

// scale applies the speed multiplier to a base duration.
func (c *compiler) scale(base int64) int64 {
	return int64(math.Round(float64(base) * c.opts.Speed))
}

// styleSGR maps a style hint to the escape prefix fed ahead of the text, so
// cell attributes carry the hint symbolically.
func styleSGR(style string) string {
	switch style {
	case "command":
		return "\x1b[1;36m"
	case "success":
		return "\x1b[32m"
	case "warn":
		return "\x1b[33m"
	case "error":
		return "\x1b[31m"
	case "dim":
		return "\x1b[2m"
	case "accent":
		return "\x1b[35m"
	default:
		return ""
	}
}

func orDefault(v, def int64) int64 {
	if v > 0 {
		return v
	}
	return def
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
