package tui

import "github.com/charmbracelet/lipgloss"

// Palette lifted from the dashboard's dark theme.
var (
	colorText   = lipgloss.Color("#e5e7eb")
	colorMuted  = lipgloss.Color("#94a3b8")
	colorAccent = lipgloss.Color("#38bdf8")
	colorUp     = lipgloss.Color("#22c55e")
	colorDown   = lipgloss.Color("#ef4444")
	colorBorder = lipgloss.Color("#1f2937")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMuted)

	tabStyle       = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	tabActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)

	headerRowStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorMuted)
	rowStyle         = lipgloss.NewStyle().Foreground(colorText)
	selectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	upStyle   = lipgloss.NewStyle().Foreground(colorUp)
	downStyle = lipgloss.NewStyle().Foreground(colorDown)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	statusLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMuted)
	statusStyle      = lipgloss.NewStyle().Foreground(colorAccent)
	mutedStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	helpStyle        = lipgloss.NewStyle().Foreground(colorMuted)
)

// changeStyle picks the up/down color for a signed percentage.
func changeStyle(pct float64) lipgloss.Style {
	if pct >= 0 {
		return upStyle
	}
	return downStyle
}
