package tui

import (
	"ideaglobe/internal/sphere"
)

const (
	// satellites closer than this perspective scale get a label
	labelMinScale = 0.98
	labelMaxLen   = 16
)

// renderGlobe draws one frame onto a w x h cell canvas: wireframe
// first on the braille layer, then nodes and labels in the frame's
// painter order so nearer glyphs overwrite farther ones and the
// center stays on top.
func (m Model) renderGlobe(w, h int) string {
	frame := m.frameFor(w, h)
	cv := newCanvas(w, h)

	for _, wire := range frame.Wires {
		for i := 0; i+1 < len(wire); i++ {
			cv.line(int(wire[i].X), int(wire[i].Y), int(wire[i+1].X), int(wire[i+1].Y))
		}
	}

	sel, _ := m.ctrl.Selected()
	for _, n := range frame.Nodes {
		cx := int(n.ScreenX) / 2
		cy := int(n.ScreenY) / 4
		ch, sty := nodeGlyph(n)
		if n.Idea != nil && sel != nil && n.Idea.ID == sel.ID {
			ch, sty = '◎', stySelected
		}
		cv.setCell(cx, cy, ch, sty)

		switch {
		case n.IsCenter:
			cv.text(cx+2, cy, truncate(n.ID, labelMaxLen), styCenter)
		case n.Idea != nil && !n.Behind && n.Scale >= labelMinScale:
			labelSty := styLabelDim
			if n.Scale >= 1.05 {
				labelSty = styLabel
			}
			cv.text(cx+2, cy, truncate(n.Idea.Phrase, labelMaxLen), labelSty)
		}
	}

	return cv.render(canvasStyles, wireStyle)
}

// nodeGlyph sizes a node by its perspective scale; behind nodes get
// the faded far treatment regardless of scale.
func nodeGlyph(n sphere.RenderNode) (rune, uint8) {
	if n.IsCenter {
		return '◉', styCenter
	}
	if n.Behind {
		return '·', styNodeFar
	}
	switch {
	case n.Scale >= 1.05:
		return '●', styNodeNear
	case n.Scale >= 0.9:
		return '•', styNodeMid
	default:
		return '·', styNodeFar
	}
}
