package tui

import (
	table "github.com/charmbracelet/bubbles/table"
)

// refreshDetail rebuilds the inspect panel table for the currently
// selected idea.
func (m *Model) refreshDetail() {
	sel, ok := m.ctrl.Selected()
	if !ok {
		return
	}
	cols := []table.Column{
		{Title: "field", Width: 11},
		{Title: "value", Width: 40},
	}
	rows := []table.Row{
		{"phrase", sel.Phrase},
		{"category", sel.Category},
		{"description", sel.Description},
		{"id", sel.ID},
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.tbl.SetHeight(len(rows) + 1)
}

// renderDetail draws the inspect panel with the set-as-core hint.
func (m Model) renderDetail(contentWidth int) string {
	sel, ok := m.ctrl.Selected()
	if !ok {
		return ""
	}
	maxW := min(58, contentWidth-4)
	if maxW < 24 {
		maxW = 24
	}
	title := titleStyle.Render(truncate(sel.Phrase, maxW-4))
	hint := dimStyle.Render("c set as core · esc/click away dismiss")
	return boxStyle.MaxWidth(maxW).Render(title + "\n" + m.tbl.View() + "\n" + hint)
}
