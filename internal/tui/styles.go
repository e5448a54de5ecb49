package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	panelBg   = "#0F141A"
	borderCol = lipgloss.Color("#243141")
	selectCol = lipgloss.Color("#FFA500")
	centerCol = lipgloss.Color("#F2C14E")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)

	wireStyle = lipgloss.NewStyle().Foreground(borderCol)
)

// Canvas glyph style indices. Far/behind variants blend the base color
// toward the panel background so depth reads as fading.
const (
	styNodeNear uint8 = iota
	styNodeMid
	styNodeFar
	styCenter
	styLabel
	styLabelDim
	stySelected
)

var canvasStyles = []lipgloss.Style{
	styNodeNear: lipgloss.NewStyle().Foreground(fadeToward("#7C3AED", panelBg, 0)).Bold(true),
	styNodeMid:  lipgloss.NewStyle().Foreground(fadeToward("#7C3AED", panelBg, 0.35)),
	styNodeFar:  lipgloss.NewStyle().Foreground(fadeToward("#7C3AED", panelBg, 0.65)),
	styCenter:   lipgloss.NewStyle().Foreground(centerCol).Bold(true),
	styLabel:    lipgloss.NewStyle().Foreground(baseFg),
	styLabelDim: lipgloss.NewStyle().Foreground(fadeToward("#E6E6E6", panelBg, 0.55)),
	stySelected: lipgloss.NewStyle().Foreground(selectCol).Bold(true),
}

// fadeToward blends fg toward bg in Lab space; t=0 keeps fg.
func fadeToward(fg, bg string, t float64) lipgloss.Color {
	a, err1 := colorful.Hex(fg)
	b, err2 := colorful.Hex(bg)
	if err1 != nil || err2 != nil {
		return lipgloss.Color(fg)
	}
	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}
