package sphere

import "ideaglobe/internal/ideas"

// Mode is the interaction state. Exactly one is active at a time;
// the selected idea is non-nil if and only if the mode is ModeInspect,
// which the transition methods below enforce.
type Mode int

const (
	ModeAutoRotate Mode = iota
	ModeDrag
	ModeInspect
)

func (m Mode) String() string {
	switch m {
	case ModeAutoRotate:
		return "auto"
	case ModeDrag:
		return "drag"
	case ModeInspect:
		return "inspect"
	}
	return "unknown"
}

// Phase classifies a normalized pointer event.
type Phase int

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
	PhaseLeave
)

// PointerEvent is a host-normalized pointer lifecycle event. The
// engine tracks a single pointer; hosts collapse mouse and touch into
// this shape.
type PointerEvent struct {
	Phase Phase
	X, Y  float64
}

// Controller owns the view state and the interaction state machine.
// It is the only mutator of ViewState. Single-threaded by contract:
// all methods are called from the host's event loop.
type Controller struct {
	view     ViewState
	mode     Mode
	selected *ideas.Idea

	// last pointer position, valid only while dragging
	lastX, lastY float64

	recenter func(phrase string)
}

// NewController starts auto-rotating at zoom 1. recenter is invoked
// exactly once per set-as-core action; nil disables the action.
func NewController(recenter func(phrase string)) *Controller {
	return &Controller{
		view:     ViewState{Zoom: 1},
		mode:     ModeAutoRotate,
		recenter: recenter,
	}
}

// View returns the current camera state.
func (c *Controller) View() ViewState { return c.view }

// Mode returns the active interaction state.
func (c *Controller) Mode() Mode { return c.mode }

// Selected returns the inspected idea while in ModeInspect.
func (c *Controller) Selected() (*ideas.Idea, bool) {
	return c.selected, c.mode == ModeInspect
}

// Pointer feeds one normalized pointer event through the state
// machine. While inspecting, drag gestures are ignored: inspection
// suppresses camera manipulation until dismissed. Events that make no
// sense in the current state (a move with no prior down) are no-ops.
func (c *Controller) Pointer(ev PointerEvent) {
	switch ev.Phase {
	case PhaseDown:
		if c.mode != ModeAutoRotate {
			return
		}
		c.mode = ModeDrag
		c.lastX, c.lastY = ev.X, ev.Y
	case PhaseMove:
		if c.mode != ModeDrag {
			return
		}
		dx := ev.X - c.lastX
		dy := ev.Y - c.lastY
		c.view.RotationX -= dy * DragSensitivity
		c.view.RotationY += dx * DragSensitivity
		c.lastX, c.lastY = ev.X, ev.Y
	case PhaseUp, PhaseLeave:
		if c.mode != ModeDrag {
			return
		}
		c.mode = ModeAutoRotate
	}
}

// Wheel applies a zoom change, clamped to [MinZoom, MaxZoom]. Valid in
// any state; out-of-range requests are clamped, never rejected.
func (c *Controller) Wheel(deltaY float64) {
	z := c.view.Zoom - deltaY*WheelZoomFactor
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	c.view.Zoom = z
}

// ClickNode handles a click resolved to a placed point. A satellite
// click enters inspection and suspends the spin. Clicking the center
// dismisses an active inspection and is otherwise a no-op.
func (c *Controller) ClickNode(p Point3D) {
	if p.IsCenter {
		if c.mode == ModeInspect {
			c.dismiss()
		}
		return
	}
	if p.Idea == nil {
		return
	}
	c.mode = ModeInspect
	c.selected = p.Idea
}

// ClickBackground dismisses an active inspection; otherwise a no-op.
func (c *Controller) ClickBackground() {
	if c.mode == ModeInspect {
		c.dismiss()
	}
}

// SetAsCore fires the recenter callback with the inspected phrase,
// then clears the selection and resumes auto-rotation. The external
// reset that follows (a fresh item list) arrives via Reset.
func (c *Controller) SetAsCore() {
	if c.mode != ModeInspect || c.selected == nil {
		return
	}
	phrase := c.selected.Phrase
	c.dismiss()
	if c.recenter != nil {
		c.recenter(phrase)
	}
}

// Reset is called when a fresh item list arrives: interaction returns
// to auto-rotation and any selection clears, but the camera persists.
func (c *Controller) Reset() {
	c.dismiss()
	c.mode = ModeAutoRotate
}

func (c *Controller) dismiss() {
	c.mode = ModeAutoRotate
	c.selected = nil
}
