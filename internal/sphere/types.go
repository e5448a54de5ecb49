package sphere

import (
	"math"

	"ideaglobe/internal/ideas"
)

// Engine constants. Angles are radians; distances are abstract screen
// units scaled later by the perspective divide.
const (
	// DefaultRadius is the layout sphere radius.
	DefaultRadius = 160.0

	// FocalLength sets perspective strength.
	FocalLength = 400.0

	// DragSensitivity converts pointer travel to rotation.
	DragSensitivity = 0.005

	// WheelZoomFactor converts wheel delta to zoom change.
	WheelZoomFactor = 0.001

	// MinZoom and MaxZoom bound the zoom at all times.
	MinZoom = 0.5
	MaxZoom = 2.5

	// SpinRate is the auto-rotation increment per tick.
	SpinRate = 0.003

	// behindFactor scales the faded-treatment depth threshold, as a
	// fraction of the sphere radius.
	behindFactor = 0.45
)

// GoldenAngle spaces satellites for near-uniform coverage.
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Vec3 is a 3D point in layout space.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a projected screen position.
type Vec2 struct {
	X, Y float64
}

// Polyline3 is an ordered run of 3D points drawn as connected segments.
type Polyline3 []Vec3

// Point3D is one placed node: the center or a satellite referencing an
// idea with a matching ID.
type Point3D struct {
	X, Y, Z  float64
	ID       string
	Idea     *ideas.Idea
	IsCenter bool
}

// ViewState is the camera: absolute rotation angles and a clamped zoom.
// Mutated only by Controller; read by the projector every frame.
type ViewState struct {
	RotationX float64
	RotationY float64
	Zoom      float64
}

// Viewport is the drawing surface size in screen units.
type Viewport struct {
	Width  float64
	Height float64
}

// Projected is a Point3D carried into screen space for one frame.
// Scale doubles as the depth key: larger means nearer the viewer.
type Projected struct {
	Point3D
	ScreenX  float64
	ScreenY  float64
	Scale    float64
	RotatedZ float64
}
