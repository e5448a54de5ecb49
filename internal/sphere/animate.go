package sphere

// Advance applies n animation ticks: while auto-rotating, each tick
// adds SpinRate to the Y rotation; in any other state it is a no-op.
// The live tick source belongs to the host; this deterministic form
// lets the spin be driven headlessly.
func (c *Controller) Advance(ticks int) {
	if c.mode != ModeAutoRotate || ticks <= 0 {
		return
	}
	c.view.RotationY += SpinRate * float64(ticks)
}
