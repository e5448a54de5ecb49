package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"os"

	"ideaglobe/internal/ideas"
	"ideaglobe/internal/sphere"
)

// recenterCell is the engine-to-host mailbox for set-as-core requests.
// Shared by pointer across Model copies so the callback survives
// bubbletea's value semantics.
type recenterCell struct {
	phrase string
	fired  bool
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// Idea data and engine state
	set      ideas.Set
	ctrl     *sphere.Controller
	recenter *recenterCell
	layouts  sphere.LayoutCache
	wires    sphere.WireframeCache

	// animation generation; a stale tick is a no-op and does not reschedule
	animGen int

	// single-pointer gesture tracking
	pressed bool
	pressX  int
	pressY  int
	moved   bool

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// refocus prompt
	promptMode bool
	ta         textarea.Model

	// inspect panel
	tbl table.Model
}

func New() Model {
	cell := &recenterCell{}
	m := Model{
		showSidebar: false,
		helpVisible: true,
		status:      "ideaglobe ready",
		set:         ideas.Demo(),
		ctrl: sphere.NewController(func(phrase string) {
			cell.phrase = phrase
			cell.fired = true
		}),
		recenter: cell,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Idea files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Type a new focus phrase. Press Enter to refocus; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(3)
	// inspect panel table (rows set per selection)
	m.tbl = table.New(table.WithFocused(false))
	m.tbl.SetHeight(6)
	m.refreshDir()
	return m
}

// NewWithPath preloads an idea file at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return tickCmd(m.animGen) }

// applySet replaces the whole idea set: the layout regenerates from
// scratch and interaction returns to auto-rotation; the camera keeps
// its angles and zoom.
func (m *Model) applySet(set ideas.Set) {
	m.set = set
	m.ctrl.Reset()
}

// applyRecenter fulfills a set-as-core request: the chosen phrase
// becomes the center label over the current idea set.
func (m *Model) applyRecenter(phrase string) {
	if phrase == "" {
		return
	}
	m.set.Center = phrase
	m.ctrl.Reset()
	m.status = "focus: " + phrase
}

// globeRadius fits the sphere to the canvas microgrid.
func globeRadius(w, h int) float64 {
	wMic := w * 2
	hMic := h * 4
	side := wMic
	if hMic < side {
		side = hMic
	}
	r := float64(side) * 0.36 / 2
	if r < 8 {
		r = 8
	}
	return r
}

// frameFor projects the current layout and wireframe for a canvas of
// w x h cells. The viewport is the 2x4 braille microgrid.
func (m *Model) frameFor(w, h int) sphere.Frame {
	radius := globeRadius(w, h)
	pts := m.layouts.Get(m.set.Ideas, m.set.Center, radius)
	wires := m.wires.Get(radius)
	vp := sphere.Viewport{Width: float64(w * 2), Height: float64(h * 4)}
	return sphere.BuildFrame(pts, wires, m.ctrl.View(), vp, radius)
}
