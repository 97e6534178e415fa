package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/neonshell/neonshell/internal/preset"
	"github.com/neonshell/neonshell/internal/report"
	"github.com/neonshell/neonshell/internal/scene"
	"github.com/neonshell/neonshell/internal/theme"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in presets, themes, and banners",
	Long: `List the built-in timing presets, themes, and banner art blocks
available to scene scripts without loading any external files.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	listCmd.Flags().Bool("no-color", false, "Disable styled output")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	styled := !noColor && report.ColorEnabled(os.Stdout)

	heading := func(s string) string {
		if styled {
			return headingStyle.Render(s)
		}
		return s
	}
	name := func(s string) string {
		if styled {
			return nameStyle.Render(s)
		}
		return s
	}
	detail := func(s string) string {
		if styled {
			return detailStyle.Render(s)
		}
		return s
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, heading("Presets"))
	for _, id := range preset.List() {
		p, err := preset.Get(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s  %s\n", name(fmt.Sprintf("%-10s", id)),
			detail(fmt.Sprintf("%d fps, line %dms, banner %dms", p.FPS, p.LineHold, p.BannerHold)))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, heading("Themes"))
	for _, id := range theme.List() {
		th, err := theme.Get(id)
		if err != nil {
			return err
		}
		effects := describeEffects(th)
		fmt.Fprintf(out, "  %s  %s\n", name(fmt.Sprintf("%-10s", id)), detail(effects))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, heading("Banners"))
	fmt.Fprintf(out, "  %s\n", name(strings.Join(scene.BannerNames(), "  ")))

	return nil
}

func describeEffects(th theme.Theme) string {
	var parts []string
	if th.Effects.CRT {
		parts = append(parts, "crt")
	}
	if th.Effects.GlitchCuts {
		parts = append(parts, "glitch-cuts")
	}
	if th.Effects.Scanlines > 0 {
		parts = append(parts, fmt.Sprintf("scanlines %.2f", th.Effects.Scanlines))
	}
	if th.Effects.Noise > 0 {
		parts = append(parts, fmt.Sprintf("noise %.2f", th.Effects.Noise))
	}
	if len(parts) == 0 {
		return "no effects"
	}
	return strings.Join(parts, ", ")
}
