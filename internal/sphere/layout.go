package sphere

import (
	"fmt"
	"math"
	"strings"

	"ideaglobe/internal/ideas"
)

// Layout places n ideas on a Fibonacci sphere of the given radius and
// returns n+1 points: the fixed center at the origin first, then one
// satellite per idea in input order. Deterministic and pure; the same
// idea order and count always yield identical geometry.
func Layout(items []ideas.Idea, centerLabel string, radius float64) []Point3D {
	pts := make([]Point3D, 0, len(items)+1)
	pts = append(pts, Point3D{ID: centerLabel, IsCenter: true})
	n := len(items)
	for i := range items {
		var yNorm float64
		if n > 1 {
			yNorm = 1 - (float64(i)/float64(n-1))*2
		} else {
			// single satellite: pole placement avoids the i/(n-1) division
			yNorm = 1
		}
		r := math.Sqrt(math.Max(0, 1-yNorm*yNorm))
		theta := GoldenAngle * float64(i)
		pts = append(pts, Point3D{
			X:    radius * math.Cos(theta) * r,
			Y:    radius * yNorm,
			Z:    radius * math.Sin(theta) * r,
			ID:   items[i].ID,
			Idea: &items[i],
		})
	}
	return pts
}

// LayoutCache memoizes Layout on an explicit key built from the idea
// IDs, the center label, and the radius. Any change to the key
// recomputes the whole layout; there is no incremental update.
type LayoutCache struct {
	key string
	pts []Point3D
}

// Get returns the cached layout for the given inputs, recomputing it
// in full when the inputs differ from the cached key.
func (c *LayoutCache) Get(items []ideas.Idea, centerLabel string, radius float64) []Point3D {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\x00%g", centerLabel, radius)
	for _, it := range items {
		b.WriteByte(0)
		b.WriteString(it.ID)
	}
	key := b.String()
	if c.pts == nil || key != c.key {
		c.key = key
		c.pts = Layout(items, centerLabel, radius)
	}
	return c.pts
}
