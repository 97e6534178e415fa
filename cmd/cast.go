package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neonshell/neonshell/internal/cast"
	"github.com/neonshell/neonshell/internal/theme"
)

var (
	castThemeFlag   string
	castSpeedFlag   float64
	castMaxIdleFlag int64
	castSampleFlag  int64
	castSizeFlag    string
	castDryRunFlag  bool
	castFormatFlag  string
	castOutFlag     string
)

var castCmd = &cobra.Command{
	Use:   "cast <recording.cast>",
	Short: "Convert an asciinema recording into a render timeline",
	Long: `Convert an asciicast v2 recording into a timeline of grid snapshots.

The recording is replayed through the terminal interpreter with its original
pacing; long idle gaps are capped and dense output bursts can be coalesced
with --sample to bound the event count.

A malformed recording aborts with the offending chunk index. Recordings are
ground truth, so unlike scene output they are never best-effort repaired.

Examples:
  neonshell cast session.cast --theme glitch
  neonshell cast session.cast --speed 2 --max-idle 1000
  neonshell cast session.cast --sample 250 --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runCast,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	castCmd.Flags().StringVar(&castThemeFlag, "theme", "synthwave", "Built-in theme name or path to a theme YAML file")
	castCmd.Flags().Float64Var(&castSpeedFlag, "speed", 1, "Playback speed multiplier (0 collapses all delays)")
	castCmd.Flags().Int64Var(&castMaxIdleFlag, "max-idle", 0, "Cap inter-chunk idle time in ms (0 = default 2000, negative disables)")
	castCmd.Flags().Int64Var(&castSampleFlag, "sample", 0, "Coalesce snapshots to at most one per this many ms (0 = every chunk)")
	castCmd.Flags().StringVar(&castSizeFlag, "size", "", "Override terminal grid size as ROWSxCOLS")
	castCmd.Flags().BoolVar(&castDryRunFlag, "dry-run", false, "Print the event listing instead of the timeline JSON")
	castCmd.Flags().StringVar(&castFormatFlag, "format", "table", "Dry-run format: table, plain, json, jsonl")
	castCmd.Flags().StringVar(&castOutFlag, "out", "", "Output file (stdout if omitted)")
	rootCmd.AddCommand(castCmd)
}

func runCast(_ *cobra.Command, args []string) error {
	th, err := theme.Resolve(castThemeFlag)
	if err != nil {
		return fmt.Errorf("failed to resolve theme: %w", err)
	}

	rec, err := cast.ReadFile(args[0])
	if err != nil {
		return err
	}

	rows, cols, err := parseSize(castSizeFlag)
	if err != nil {
		return err
	}

	tl, err := cast.ToTimeline(rec, cast.Options{
		Speed:          castSpeedFlag,
		MaxIdle:        castMaxIdleFlag,
		SampleInterval: castSampleFlag,
		Rows:           rows,
		Cols:           cols,
		Theme:          th.ID,
	})
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	return writeOutput(tl, castOutFlag, castDryRunFlag, castFormatFlag)
}
