package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	labelStyle = lipgloss.NewStyle().Width(26).Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(0, 1)
)

var physicsCmd = &cobra.Command{
	Use:   "physics",
	Short: "Show the derived physics limits",
	Long: `Print the base physics from the configuration together with every
limit derived from it. These are the thresholds generated patterns are
checked against.`,
	Args: cobra.NoArgs,
	Run:  runPhysics,
}

func runPhysics(cmd *cobra.Command, args []string) {
	m := cfg.Model()
	apex := m.Apex()

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
	}
	px := func(v float64) string { return fmt.Sprintf("%gpx", v) }

	base := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Base"),
		row("Gravity", fmt.Sprintf("%g", m.Gravity)),
		row("Jump power", fmt.Sprintf("%g", m.JumpPower)),
		row("Player speed", fmt.Sprintf("%g px/frame", m.PlayerSpeed)),
		row("Player box", fmt.Sprintf("%gx%gpx", m.PlayerWidth, m.PlayerHeight)),
		row("Landing tolerance", px(m.LandingTolerance)),
	)

	derived := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Derived"),
		row("Max obstacle height", px(m.MaxObstacleHeight)),
		row("Max jump distance", px(m.MaxJumpDistance)),
		row("Min safe gap", px(m.MinSafeGap)),
		row("Max climb height", px(m.MaxClimbHeight)),
		row("Max forward jump height", px(m.MaxForwardJumpHeight)),
		row("Peak height", px(m.PeakHeight())),
		row("Sampled apex", fmt.Sprintf("%.1fpx at x=%gpx", apex.Y, apex.X)),
	)

	fmt.Println(boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, base, "", derived)))
}
