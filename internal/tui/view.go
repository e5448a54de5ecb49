package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Layout sizes shared by View and the mouse mapping in Update.
const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	sb := 0
	if m.showSidebar {
		sb = sidebarWidth
	}
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}

	// Header
	header := titleStyle.Render(" ideaglobe ─ idea constellation viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sb).Render(m.l.View())
	}

	// Globe canvas
	canvasW, canvasH := m.canvasSize()
	var body string
	var canvasView string
	if m.promptMode {
		m.ta.SetWidth(min(canvasW, 56))
		prompt := boxStyle.Render(titleStyle.Render("new focus") + "\n" + m.ta.View())
		canvasView = lipgloss.Place(canvasW, canvasH, lipgloss.Center, lipgloss.Center, prompt)
	} else {
		canvasView = lipgloss.NewStyle().Width(canvasW).Height(canvasH).Render(m.renderGlobe(canvasW, canvasH))
	}

	// Inspect panel overlay (center-left, off the globe's focus)
	if _, inspecting := m.ctrl.Selected(); inspecting && !m.promptMode {
		panel := m.renderDetail(contentWidth)
		overlay := lipgloss.Place(canvasW, canvasH, lipgloss.Left, lipgloss.Center, panel)
		canvasView = overlay
	}

	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", canvasView)
	} else {
		body = canvasView
	}

	// Footer: status + help left, view readout right
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	view := m.ctrl.View()
	readout := dimStyle.Render(fmt.Sprintf("  %s  zoom=%.2fx  ry=%.2f  ", m.ctrl.Mode(), view.Zoom, view.RotationY))
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(readout))
	right := lipgloss.Place(spacerW+lipgloss.Width(readout), 1, lipgloss.Right, lipgloss.Center, readout)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"drag rotate",
		"wheel/+/- zoom",
		"click inspect",
		"c set as core",
		"n refocus",
		"Tab files",
		"Enter open",
		"h help",
		"q quit",
	}
	out := "  "
	for i, k := range keys {
		if i > 0 {
			out += "  "
		}
		out += k
	}
	return dimStyle.Render(out)
}
