package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonshell/neonshell/internal/preset"
	"github.com/neonshell/neonshell/internal/sched"
	"github.com/neonshell/neonshell/internal/theme"
	"github.com/neonshell/neonshell/internal/timeline"
)

func testOptions(t *testing.T, seed int64) Options {
	t.Helper()
	p, err := preset.Get("standard")
	require.NoError(t, err)
	th, err := theme.Get("synthwave")
	require.NoError(t, err)
	return Options{
		Preset: p,
		Theme:  th,
		Speed:  1,
		Sched:  sched.New(seed),
	}
}

func TestCompile_BannerCommandPauseShape(t *testing.T) {
	scn := &Scene{
		ID: "e2e",
		Steps: []Step{
			{Type: StepBanner, Banner: "demo"},
			{Type: StepCommand, Text: "make build", Mode: "fake",
				Output: []string{"compiling...", "done"}},
			{Type: StepPause, Duration: 500},
		},
	}

	tl, err := Compile(scn, testOptions(t, 1))
	require.NoError(t, err)

	events := tl.Events()
	require.Len(t, events, 4)
	assert.Equal(t, timeline.KindGridSnapshot, events[0].Kind) // banner
	assert.Equal(t, timeline.KindGridSnapshot, events[1].Kind) // command prompt
	assert.Equal(t, timeline.KindGridSnapshot, events[2].Kind) // fake output
	assert.Equal(t, timeline.KindPause, events[3].Kind)
	assert.Equal(t, int64(500), events[3].Duration)

	// Strictly increasing start times, and total equals the duration sum.
	var sum int64
	for i, e := range events {
		if i > 0 {
			assert.Greater(t, e.Start, events[i-1].Start)
		}
		assert.Equal(t, sum, e.Start)
		sum += e.Duration
	}
	assert.Equal(t, sum, tl.TotalDuration())
	assert.True(t, tl.Frozen())
}

func TestCompile_IdempotentWithSameSeed(t *testing.T) {
	scn := DefaultScene("glitch")
	th, err := theme.Get("glitch")
	require.NoError(t, err)

	opts := testOptions(t, 99)
	opts.Theme = th
	opts.Sched = sched.New(99)
	a, err := Compile(scn, opts)
	require.NoError(t, err)

	opts.Sched = sched.New(99)
	b, err := Compile(scn, opts)
	require.NoError(t, err)

	require.Equal(t, a.Len(), b.Len())
	assert.Equal(t, a.TotalDuration(), b.TotalDuration())
	assert.Equal(t, a.Events(), b.Events())
	assert.Equal(t, a.Meta(), b.Meta())
}

func TestCompile_SpinnerFramesAreCyclic(t *testing.T) {
	const cycles = 25 // more than one trip around the 10-glyph set
	scn := &Scene{
		ID:    "spin",
		Steps: []Step{{Type: StepSpinner, Label: "working", Cycles: cycles}},
	}

	// Different seeds must not affect frame selection.
	for _, seed := range []int64{1, 2} {
		tl, err := Compile(scn, testOptions(t, seed))
		require.NoError(t, err)

		events := tl.Events()
		require.Len(t, events, cycles+1) // trailing done frame

		for i := 0; i < cycles; i++ {
			require.NotNil(t, events[i].Spinner)
			assert.Equal(t, i%len(spinnerFrames), events[i].Spinner.Index)
			assert.Equal(t, spinnerFrames[i%len(spinnerFrames)], events[i].Spinner.Glyph)
			assert.False(t, events[i].Spinner.Done)
		}
		done := events[cycles].Spinner
		require.NotNil(t, done)
		assert.True(t, done.Done)
		assert.Equal(t, spinnerDoneGlyph, done.Glyph)
	}
}

func TestCompile_ProgressEmitsWidthPlusOne(t *testing.T) {
	scn := &Scene{
		ID:    "bar",
		Steps: []Step{{Type: StepProgress, Label: "building", Width: 10}},
	}

	tl, err := Compile(scn, testOptions(t, 1))
	require.NoError(t, err)

	events := tl.Events()
	require.Len(t, events, 11)
	for i, e := range events {
		require.Equal(t, timeline.KindProgressFrame, e.Kind)
		require.NotNil(t, e.Progress)
		assert.Equal(t, i, e.Progress.Filled)
		assert.Equal(t, 10-i, e.Progress.Empty)
		assert.Equal(t, i*10, e.Progress.Percent)
	}
}

func TestCompile_SpeedMultiplierScalesDurations(t *testing.T) {
	scn := DefaultScene("synthwave")

	base, err := Compile(scn, testOptions(t, 7))
	require.NoError(t, err)

	slow := testOptions(t, 7)
	slow.Speed = 2
	scaled, err := Compile(scn, slow)
	require.NoError(t, err)

	require.Equal(t, base.Len(), scaled.Len())
	for i, e := range base.Events() {
		se := scaled.Events()[i]
		assert.Equal(t, e.Kind, se.Kind, "event %d", i)
		assert.Equal(t, 2*e.Duration, se.Duration, "event %d", i)
	}
	assert.Equal(t, 2*base.TotalDuration(), scaled.TotalDuration())
}

func TestCompile_SpeedZeroCollapsesDurations(t *testing.T) {
	scn := DefaultScene("synthwave")

	opts := testOptions(t, 7)
	opts.Speed = 0
	tl, err := Compile(scn, opts)
	require.NoError(t, err)

	assert.Equal(t, int64(0), tl.TotalDuration())
	for _, e := range tl.Events() {
		assert.Equal(t, int64(0), e.Duration)
		assert.Equal(t, int64(0), e.Start)
	}
}

func TestCompile_NegativeSpeedFails(t *testing.T) {
	scn := &Scene{
		ID:    "neg",
		Steps: []Step{{Type: StepPause, Duration: 100}},
	}

	opts := testOptions(t, 1)
	opts.Speed = -1
	assert.NotPanics(t, func() {
		_, err := Compile(scn, opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "speed multiplier must be non-negative")
	})
}

func TestCompile_UnknownBannerFails(t *testing.T) {
	scn := &Scene{
		ID:    "bad",
		Steps: []Step{{Type: StepBanner, Banner: "missing-art"}},
	}

	_, err := Compile(scn, testOptions(t, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 0")
	assert.Contains(t, err.Error(), `"missing-art"`)
}

func TestCompile_UnresolvedTemplateVariableFails(t *testing.T) {
	scn := &Scene{
		ID:    "bad",
		Steps: []Step{{Type: StepLine, Text: "cd {{nowhere}}"}},
	}

	_, err := Compile(scn, testOptions(t, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{{nowhere}}")
}

func TestCompile_RealAndFakeCommandsConverge(t *testing.T) {
	fake := &Scene{ID: "f", Steps: []Step{
		{Type: StepCommand, Text: "cat notes", Mode: "fake", Output: []string{"alpha", "beta"}},
	}}
	real := &Scene{ID: "r", Steps: []Step{
		{Type: StepCommand, Text: "cat notes", Mode: "real", Output: []string{"alpha", "beta"}},
	}}

	ftl, err := Compile(fake, testOptions(t, 1))
	require.NoError(t, err)
	rtl, err := Compile(real, testOptions(t, 1))
	require.NoError(t, err)

	fe, re := ftl.Events(), rtl.Events()
	require.Len(t, fe, 2)
	require.Len(t, re, 2)
	for i := range fe {
		assert.Equal(t, fe[i].Kind, re[i].Kind)
		assert.Equal(t, fe[i].Duration, re[i].Duration)
	}
	// Identical visible text too; only cell styling may differ.
	assert.Equal(t, fe[1].Snapshot.Text(), re[1].Snapshot.Text())
}

func TestCompile_CommandPromptRendered(t *testing.T) {
	scn := &Scene{ID: "p", Steps: []Step{
		{Type: StepCommand, Text: "ls {{workspace}}", Mode: "fake",
			Output: []string{"file.txt"}},
	}}
	opts := testOptions(t, 1)
	opts.Vars = map[string]string{"workspace": "/srv/demo"}

	tl, err := Compile(scn, opts)
	require.NoError(t, err)

	prompt := tl.Events()[0].Snapshot
	require.NotNil(t, prompt)
	assert.Equal(t, "❯ ls /srv/demo", prompt.Lines()[0])
}

func TestCompile_GlitchTransitionCarriesCuts(t *testing.T) {
	th, err := theme.Get("glitch")
	require.NoError(t, err)

	scn := &Scene{ID: "g", Steps: []Step{
		{Type: StepTransition, Transition: "glitch", Duration: 1000},
	}}
	opts := testOptions(t, 5)
	opts.Theme = th

	tl, err := Compile(scn, opts)
	require.NoError(t, err)

	e := tl.Events()[0]
	require.Equal(t, timeline.KindTransition, e.Kind)
	require.NotNil(t, e.Transition)
	assert.Equal(t, "glitch", e.Transition.Kind)
	assert.NotEmpty(t, e.Transition.Cuts)

	// Plain cuts on a non-glitch theme carry no scheduler payload.
	plain := &Scene{ID: "c", Steps: []Step{{Type: StepTransition, Transition: "fade"}}}
	ptl, err := Compile(plain, testOptions(t, 5))
	require.NoError(t, err)
	assert.Empty(t, ptl.Events()[0].Transition.Cuts)
}

func TestCompile_MetaRecordsSeedAndPreset(t *testing.T) {
	scn := &Scene{ID: "m", Steps: []Step{{Type: StepPause, Duration: 100}}}

	tl, err := Compile(scn, testOptions(t, 1234))
	require.NoError(t, err)

	meta := tl.Meta()
	assert.Equal(t, int64(1234), meta.Seed)
	assert.Equal(t, "standard", meta.Preset)
	assert.Equal(t, "m", meta.Scene)
	assert.Equal(t, 30, meta.FPS)
}
