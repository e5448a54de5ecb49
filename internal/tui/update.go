package tui

import (
	"fmt"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"ideaglobe/internal/sphere"
)

// tickMsg drives the auto-rotation. The generation stamp lets a
// torn-down loop die out: a stale tick neither advances nor
// reschedules, so at most one tick is ever in flight.
type tickMsg struct {
	gen int
}

const tickInterval = time.Second / 30

// wheelNotch is the synthetic deltaY per terminal wheel event; cell
// terminals report no magnitude.
const wheelNotch = 120.0

// pickRadius is the node hit-test distance in microgrid pixels.
const pickRadius = 5.0

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != m.animGen {
			return m, nil
		}
		m.ctrl.Advance(1)
		return m, tickCmd(m.animGen)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.promptMode {
			switch msg.String() {
			case "esc":
				m.promptMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				phrase := strings.TrimSpace(m.ta.Value())
				if phrase == "" {
					m.status = "refocus: empty"
					return m, nil
				}
				m.applyRecenter(phrase)
				m.promptMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.animGen++ // no further ticks
			return m, tea.Quit
		case "+", "=":
			m.ctrl.Wheel(-wheelNotch)
			m.status = fmt.Sprintf("zoom: %.2fx", m.ctrl.View().Zoom)
		case "-", "_":
			m.ctrl.Wheel(wheelNotch)
			m.status = fmt.Sprintf("zoom: %.2fx", m.ctrl.View().Zoom)
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case "n":
			m.promptMode = true
			m.ta.SetValue("")
			m.status = "refocus"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "c":
			if _, ok := m.ctrl.Selected(); ok {
				m.ctrl.SetAsCore()
				if m.recenter.fired {
					m.recenter.fired = false
					m.applyRecenter(m.recenter.phrase)
				}
			}
		case "esc":
			m.ctrl.ClickBackground()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouse normalizes terminal mouse traffic into the engine's
// pointer/wheel/click vocabulary. A press-release pair with no travel
// is a click and resolves against the current frame: a hit becomes a
// node click, a miss a background click. Anything with travel is a
// drag, already applied through pointer moves.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.ctrl.Wheel(-wheelNotch)
	case msg.Button == tea.MouseButtonWheelDown:
		m.ctrl.Wheel(wheelNotch)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		mx, my, ok := m.canvasMicro(msg.X, msg.Y)
		if !ok {
			return
		}
		m.pressed = true
		m.moved = false
		m.pressX, m.pressY = msg.X, msg.Y
		m.ctrl.Pointer(sphere.PointerEvent{Phase: sphere.PhaseDown, X: float64(mx), Y: float64(my)})
	case msg.Action == tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		if msg.X != m.pressX || msg.Y != m.pressY {
			m.moved = true
		}
		mx, my, ok := m.canvasMicro(msg.X, msg.Y)
		if !ok {
			// off the canvas mid-gesture: treat as pointer leave
			m.pressed = false
			m.ctrl.Pointer(sphere.PointerEvent{Phase: sphere.PhaseLeave})
			return
		}
		m.ctrl.Pointer(sphere.PointerEvent{Phase: sphere.PhaseMove, X: float64(mx), Y: float64(my)})
	case msg.Action == tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		m.ctrl.Pointer(sphere.PointerEvent{Phase: sphere.PhaseUp})
		if m.moved {
			return
		}
		mx, my, ok := m.canvasMicro(msg.X, msg.Y)
		if !ok {
			return
		}
		cw, ch := m.canvasSize()
		frame := m.frameFor(cw, ch)
		if node, hit := frame.NodeAt(float64(mx), float64(my), pickRadius); hit {
			m.ctrl.ClickNode(node.Point3D)
			if _, ok := m.ctrl.Selected(); ok {
				m.refreshDetail()
				m.status = "inspect: " + node.ID
			}
		} else {
			m.ctrl.ClickBackground()
		}
	}
}

// canvasSize returns the globe canvas size in cells, mirroring the
// View layout so event coordinates line up with drawn ones.
func (m Model) canvasSize() (int, int) {
	sb := 0
	if m.showSidebar {
		sb = sidebarWidth
	}
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)
	cw := contentWidth - sb - 1
	if cw < 10 {
		cw = 10
	}
	return cw, contentHeight
}

// canvasMicro maps a terminal cell position into canvas microgrid
// coordinates, reporting whether it falls on the canvas at all.
func (m Model) canvasMicro(x, y int) (int, int, bool) {
	sb := 0
	originX := 0
	if m.showSidebar {
		sb = sidebarWidth
		originX = sb + 1
	}
	cw, ch := m.canvasSize()
	cx := x - originX
	cy := y - headerHeight
	if cx < 0 || cx >= cw || cy < 0 || cy >= ch {
		return 0, 0, false
	}
	return cx * 2, cy * 4, true
}
