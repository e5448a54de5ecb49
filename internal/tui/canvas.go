package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// canvas composes two layers over one cell grid: a braille microgrid
// (2x4 dots per cell) for wireframe lines, and a styled glyph overlay
// for nodes and labels. Glyphs always win over dots in the same cell.
type canvas struct {
	w, h  int
	dots  [][]uint8 // per-cell braille mask
	cells [][]cell  // glyph overlay; zero ch means transparent
}

type cell struct {
	ch    rune
	style uint8
}

func newCanvas(w, h int) *canvas {
	dots := make([][]uint8, h)
	cells := make([][]cell, h)
	for i := range dots {
		dots[i] = make([]uint8, w)
		cells[i] = make([]cell, w)
	}
	return &canvas{w: w, h: h, dots: dots, cells: cells}
}

// setDot sets a micro-pixel at microgrid coords (2x4 per cell)
func (c *canvas) setDot(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= c.h || cx < 0 || cx >= c.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.dots[cy][cx] |= bit
}

// line draws on the microgrid using Bresenham
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setDot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// setCell places one styled glyph at cell coords, replacing whatever
// was there. Later callers paint over earlier ones.
func (c *canvas) setCell(cx, cy int, ch rune, style uint8) {
	if cy < 0 || cy >= c.h || cx < 0 || cx >= c.w {
		return
	}
	c.cells[cy][cx] = cell{ch: ch, style: style}
}

// text writes a run of glyphs starting at cell coords, clipped to the
// canvas edge.
func (c *canvas) text(cx, cy int, s string, style uint8) {
	if cy < 0 || cy >= c.h {
		return
	}
	for _, ch := range s {
		if cx >= c.w {
			return
		}
		if cx >= 0 {
			c.cells[cy][cx] = cell{ch: ch, style: style}
		}
		cx++
	}
}

// render flattens both layers into styled terminal lines, grouping
// runs of equal style to keep the escape-sequence volume down.
func (c *canvas) render(styles []lipgloss.Style, wireStyle lipgloss.Style) string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var b strings.Builder
		runStyle := -1
		var run []rune
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runStyle == -2 {
				b.WriteString(wireStyle.Render(string(run)))
			} else if runStyle >= 0 {
				b.WriteString(styles[runStyle].Render(string(run)))
			} else {
				b.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			var ch rune
			sty := -1
			if over := c.cells[y][x]; over.ch != 0 {
				ch = over.ch
				sty = int(over.style)
			} else if mask := c.dots[y][x]; mask != 0 {
				ch = rune(0x2800 + int(mask))
				sty = -2
			} else {
				ch = ' '
			}
			if sty != runStyle {
				flush()
				runStyle = sty
			}
			run = append(run, ch)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
