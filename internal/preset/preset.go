// Package preset defines the built-in timing presets that control demo
// pacing. A preset is consumed by the scene compiler purely as a resolved
// numeric table; selecting and overriding presets is the caller's concern.
package preset

import (
	"fmt"
	"sort"
)

// Preset is a named timing profile. All durations are virtual milliseconds.
type Preset struct {
	Name string
	FPS  int

	LineHold      int64 // how long a text line stays before the next event
	CommandHold   int64 // hold after a command prompt appears
	CommandOutput int64 // per-line delay for streamed command output
	SpinnerCycle  int64 // per-frame spinner delay
	SpinnerCycles int   // default spinner cycle count
	ProgressStep  int64 // per-step progress bar delay
	BannerHold    int64 // hold after a banner display
	Pause         int64 // default pause duration
	Transition    int64 // default transition duration

	EffectScale float64 // effect intensity scaling, 1.0 = theme default
}

// Built-in presets, carried over from the reference pacing tables:
// short for fast social cuts, standard for balanced flow, cinematic for
// dramatic holds.
var presets = map[string]Preset{
	"short": {
		Name:          "short",
		FPS:           24,
		LineHold:      60,
		CommandHold:   200,
		CommandOutput: 30,
		SpinnerCycle:  50,
		SpinnerCycles: 12,
		ProgressStep:  20,
		BannerHold:    600,
		Pause:         150,
		Transition:    100,
		EffectScale:   0.8,
	},
	"standard": {
		Name:          "standard",
		FPS:           30,
		LineHold:      120,
		CommandHold:   400,
		CommandOutput: 60,
		SpinnerCycle:  80,
		SpinnerCycles: 20,
		ProgressStep:  40,
		BannerHold:    1200,
		Pause:         300,
		Transition:    200,
		EffectScale:   1.0,
	},
	"cinematic": {
		Name:          "cinematic",
		FPS:           30,
		LineHold:      200,
		CommandHold:   700,
		CommandOutput: 100,
		SpinnerCycle:  100,
		SpinnerCycles: 30,
		ProgressStep:  60,
		BannerHold:    2000,
		Pause:         500,
		Transition:    400,
		EffectScale:   1.2,
	},
}

// Get returns the preset with the given name.
func Get(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (available: %v)", name, List())
	}
	return p, nil
}

// List returns the available preset names, sorted.
func List() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
