package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameDecisions(t *testing.T) {
	a := New(42)
	b := New(42)

	assert.Equal(t, a.GlitchCuts(5000, 400), b.GlitchCuts(5000, 400))
	assert.Equal(t, a.SliceOffsets(6, 30), b.SliceOffsets(6, 30))
	assert.Equal(t, a.Intn(1000), b.Intn(1000))
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	// A 16-draw sequence colliding across seeds would be astonishing.
	var sa, sb []int
	for i := 0; i < 16; i++ {
		sa = append(sa, a.Intn(1<<30))
		sb = append(sb, b.Intn(1<<30))
	}
	assert.NotEqual(t, sa, sb)
}

func TestGlitchCuts_WithinSpanAndSorted(t *testing.T) {
	cuts := New(7).GlitchCuts(3000, 250)
	require.NotEmpty(t, cuts)
	prev := int64(-1)
	for _, c := range cuts {
		assert.Greater(t, c, prev)
		assert.Less(t, c, int64(3000))
		prev = c
	}
}

func TestGlitchCuts_DegenerateInputs(t *testing.T) {
	s := New(1)
	assert.Nil(t, s.GlitchCuts(0, 100))
	assert.Nil(t, s.GlitchCuts(1000, 0))
}

func TestSliceOffsets_Bounded(t *testing.T) {
	offsets := New(9).SliceOffsets(32, 30)
	require.Len(t, offsets, 32)
	for _, o := range offsets {
		assert.GreaterOrEqual(t, o, -30)
		assert.LessOrEqual(t, o, 30)
	}
}

func TestNoiseSeed_DeterministicPerFrame(t *testing.T) {
	a := New(42)
	b := New(42)

	assert.Equal(t, a.NoiseSeed(10), b.NoiseSeed(10))
	assert.NotEqual(t, a.NoiseSeed(10), a.NoiseSeed(11))
	assert.GreaterOrEqual(t, a.NoiseSeed(3), int64(0))

	// NoiseSeed must not consume rng state: draws still line up after it.
	assert.Equal(t, a.Intn(1000), b.Intn(1000))
}

func TestNewRandom_ReportsReplayableSeed(t *testing.T) {
	s := NewRandom()
	replay := New(s.Seed())

	assert.Equal(t, s.GlitchCuts(2000, 300), replay.GlitchCuts(2000, 300))
}
