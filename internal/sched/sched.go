// Package sched provides the deterministic scheduler consulted during
// compilation for every decision with a stochastic character: glitch-cut
// trigger times, slice displacement offsets, noise seeding. The same seed
// with the same inputs always yields the same decision stream, so a compiled
// timeline is byte-for-byte reproducible. Threading an explicit *Scheduler
// through compilation, rather than reading ambient global randomness, makes
// that guarantee structural.
package sched

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"os"
	"time"
)

// Scheduler is a seeded source of reproducible pseudo-random decisions.
// A Scheduler is not safe for concurrent use; construct one per compilation.
type Scheduler struct {
	seed int64
	rng  *rand.Rand
}

// New returns a scheduler seeded with the given value.
func New(seed int64) *Scheduler {
	return &Scheduler{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NewRandom returns a scheduler seeded from a high-entropy source. The
// generated seed is retrievable via Seed so the caller can report it for
// later replay.
func NewRandom() *Scheduler {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// Fallback: wall clock mixed with PID.
		return New(time.Now().UnixNano() ^ int64(os.Getpid()))
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1) // keep it non-negative
	return New(seed)
}

// Seed returns the seed this scheduler was constructed with.
func (s *Scheduler) Seed() int64 { return s.seed }

// GlitchCuts returns sorted trigger offsets (virtual ms within a span of
// the given duration) at which glitch cuts fire. meanGap controls cut
// density; each gap is drawn uniformly from [meanGap/2, 3*meanGap/2).
func (s *Scheduler) GlitchCuts(duration, meanGap int64) []int64 {
	if duration <= 0 || meanGap <= 0 {
		return nil
	}
	var cuts []int64
	at := s.gap(meanGap)
	for at < duration {
		cuts = append(cuts, at)
		at += s.gap(meanGap)
	}
	return cuts
}

func (s *Scheduler) gap(mean int64) int64 {
	lo := mean / 2
	return lo + s.rng.Int63n(mean)
}

// SliceOffsets returns n horizontal displacement offsets in [-max, max],
// used by the effects pipeline to shift glitch slices.
func (s *Scheduler) SliceOffsets(n, max int) []int {
	if n <= 0 || max <= 0 {
		return nil
	}
	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = s.rng.Intn(2*max+1) - max
	}
	return offsets
}

// NoiseSeed returns a per-frame seed for noise pattern generation, derived
// deterministically from the scheduler seed and the frame number so frames
// can be rendered out of order.
func (s *Scheduler) NoiseSeed(frame int) int64 {
	// splitmix64-style mix; avoids consuming rng state per frame.
	z := uint64(s.seed) + uint64(frame)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64((z ^ (z >> 31)) >> 1)
}

// Intn exposes a bounded draw for callers with one-off decisions.
func (s *Scheduler) Intn(n int) int {
	return s.rng.Intn(n)
}
