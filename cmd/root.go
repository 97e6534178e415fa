// Package cmd implements the neonshell Cobra command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version, Commit, and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "neonshell",
	Short: "Compile terminal demo scenes into render timelines",
	Long: `neonshell - terminal demo compiler

Turns authored scene scripts and real asciinema recordings into a single
deterministic timeline of render events that a downstream rasterizer and
video encoder consume frame by frame.

Examples:
  # Compile a scene script
  neonshell render demo.yaml --theme glitch --preset cinematic

  # Preview the event timeline without rendering
  neonshell render demo.yaml --dry-run

  # Reproduce an earlier compilation exactly
  neonshell render demo.yaml --seed 421337

  # Re-theme a real recording
  neonshell cast session.cast --theme synthwave

  # Enumerate built-in presets, themes, and banners
  neonshell list`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits
	rootCmd.SetVersionTemplate(fmt.Sprintf("neonshell version {{.Version}} (commit: %s, built: %s)\n", Commit, Date))
}
