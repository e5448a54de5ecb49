package sphere

import "math"

const (
	meridianCount   = 6
	meridianSamples = 21
	parallelSamples = 31
)

// Wireframe builds the decorative globe cage: 6 meridians sampled pole
// to pole at longitudes 60 degrees apart, and 3 closed parallels (the
// equator and the tropics at y = ±R/2). Item-independent and pure.
func Wireframe(radius float64) []Polyline3 {
	out := make([]Polyline3, 0, meridianCount+3)
	for m := 0; m < meridianCount; m++ {
		lon := float64(m) * math.Pi / 3
		line := make(Polyline3, meridianSamples)
		for s := 0; s < meridianSamples; s++ {
			// polar angle from the top pole down to the bottom pole
			polar := math.Pi * float64(s) / float64(meridianSamples-1)
			r := radius * math.Sin(polar)
			line[s] = Vec3{
				X: r * math.Cos(lon),
				Y: radius * math.Cos(polar),
				Z: r * math.Sin(lon),
			}
		}
		out = append(out, line)
	}
	for _, yNorm := range []float64{0, 0.5, -0.5} {
		y := radius * yNorm
		r := math.Sqrt(math.Max(0, radius*radius-y*y))
		ring := make(Polyline3, parallelSamples)
		for s := 0; s < parallelSamples; s++ {
			theta := 2 * math.Pi * float64(s) / float64(parallelSamples-1)
			ring[s] = Vec3{X: r * math.Cos(theta), Y: y, Z: r * math.Sin(theta)}
		}
		out = append(out, ring)
	}
	return out
}

// WireframeCache memoizes Wireframe per radius.
type WireframeCache struct {
	radius float64
	lines  []Polyline3
}

func (c *WireframeCache) Get(radius float64) []Polyline3 {
	if c.lines == nil || radius != c.radius {
		c.radius = radius
		c.lines = Wireframe(radius)
	}
	return c.lines
}
