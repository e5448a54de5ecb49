package sphere

import "math"

// Project carries one layout point into screen space under the given
// view. Order matters: zoom scale, rotate about Y, rotate about X,
// then perspective divide and screen centering. Pure: the rotations
// are absolute angles from ViewState, never deltas on prior output.
func Project(p Point3D, view ViewState, vp Viewport) Projected {
	x := p.X * view.Zoom
	y := p.Y * view.Zoom
	z := p.Z * view.Zoom

	sinY, cosY := math.Sincos(view.RotationY)
	x, z = x*cosY-z*sinY, z*cosY+x*sinY

	sinX, cosX := math.Sincos(view.RotationX)
	y, z = y*cosX-z*sinX, z*cosX+y*sinX

	scale := FocalLength / (FocalLength + z)
	return Projected{
		Point3D:  p,
		ScreenX:  x*scale + vp.Width/2,
		ScreenY:  y*scale + vp.Height/2,
		Scale:    scale,
		RotatedZ: z,
	}
}

// ProjectVec3 projects bare wireframe geometry to a screen position.
func ProjectVec3(v Vec3, view ViewState, vp Viewport) Vec2 {
	pr := Project(Point3D{X: v.X, Y: v.Y, Z: v.Z}, view, vp)
	return Vec2{X: pr.ScreenX, Y: pr.ScreenY}
}
