package terminal

import "github.com/charmbracelet/lipgloss"

var (
	// UI colors.
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorIcon   = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"} // purple
	colorWarn   = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"} // amber
)

var (
	styleTitle   = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta    = lipgloss.NewStyle().Foreground(colorDim)
	styleIcon    = lipgloss.NewStyle().Foreground(colorIcon)
	styleWarn    = lipgloss.NewStyle().Foreground(colorWarn)
	styleChunkNo = lipgloss.NewStyle().Foreground(colorDim).Bold(true)

	styleStat      = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleStatLabel = lipgloss.NewStyle().Foreground(colorDim)

	styleSeparator = lipgloss.NewStyle().Foreground(colorDim)
)
