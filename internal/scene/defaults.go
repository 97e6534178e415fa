package scene

import "strings"

// DefaultScene generates the built-in demo scene for a theme, used when no
// scene file is given. The glitch theme gets its alternate narrative.
func DefaultScene(themeID string) *Scene {
	title := "Neon Shell Demo // cinematic terminal sequence"
	profile := "cinematic"
	shipStyle := "synthwave"
	endpoint := "https://staging.neon-shell.demo"
	spinnerLabel := "Priming spectral cache"
	progressLabel := "Compiling visual pipeline"
	bannerName := "neon"
	if themeID == "glitch" {
		title = "Glitch Grid Demo // high-voltage terminal sequence"
		profile = "glitch"
		shipStyle = "glitchcore"
		endpoint = "https://staging.glitch-grid.demo"
		spinnerLabel = "Resynchronizing packet ghosts"
		progressLabel = "Rebuilding fractured pipeline"
		bannerName = "glitch"
	}

	rule := strings.Repeat("━", 60)

	return &Scene{
		ID:    "default_" + themeID,
		Title: title,
		Theme: themeID,
		Steps: []Step{
			{Type: StepBanner, Banner: bannerName},
			{Type: StepLine, Text: title, Style: "accent"},
			{Type: StepLine, Text: "theme: {{theme}}", Style: "dim"},
			{Type: StepLine, Text: "workspace: {{workspace}}", Style: "dim"},
			{Type: StepLine, Text: rule, Style: "dim"},
			{Type: StepPause, Duration: 200},
			{Type: StepCommand, Text: `ls -1 "{{workspace}}/src"`, Mode: "fake",
				Output: []string{"orchestrator.ts", "render.ts"}},
			{Type: StepCommand, Text: `grep -R "TODO" -n "{{workspace}}/src"`, Mode: "fake",
				Output: []string{
					"src/orchestrator.ts:3:  // TODO: retry policy tuning",
					"src/render.ts:3:  // TODO: dark mode spectrum gradients",
				}},
			{Type: StepSpinner, Label: spinnerLabel, Cycles: 20},
			{Type: StepProgress, Label: progressLabel, Width: 26},
			{Type: StepCommand, Text: `neon scan --project "{{workspace}}" --profile ` + profile,
				Mode: "fake", Style: "success",
				Output: []string{
					"✓ src/orchestrator.ts    deprecated APIs: 0   perf hints: 2",
					"✓ src/render.ts          deprecated APIs: 0   perf hints: 1",
					"✓ config/pipeline.json   schema: valid         target: staging",
					"",
					"Scan summary:",
					"  files analyzed : 3",
					"  warnings       : 0",
					"  opportunities  : 3",
				}},
			{Type: StepTransition, Transition: "glitch"},
			{Type: StepCommand, Text: "neon ship --target staging --style " + shipStyle,
				Mode: "fake", Style: "success",
				Output: []string{
					"[link] handshake with edge gateway.............ok",
					"[push] uploading release bundle................ok",
					"[verify] health checks (latency p95 < 20ms)....ok",
					"[done] deployment id: neon-rc42-a9f",
					"",
					"endpoint: " + endpoint,
					"status:   LIVE",
				}},
			{Type: StepLine, Text: rule, Style: "dim"},
			{Type: StepLine, Text: ">> Demo complete.", Style: "success"},
			{Type: StepPause, Duration: 800},
		},
	}
}
