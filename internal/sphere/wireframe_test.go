package sphere

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireframeShape(t *testing.T) {
	lines := Wireframe(100)
	require.Len(t, lines, 9)
	for i := 0; i < 6; i++ {
		assert.Len(t, lines[i], 21, "meridian %d", i)
	}
	for i := 6; i < 9; i++ {
		assert.Len(t, lines[i], 31, "parallel %d", i-6)
	}
}

func TestWireframeOnSphere(t *testing.T) {
	lines := Wireframe(100)
	for li, line := range lines {
		for si, v := range line {
			d := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
			assert.InDelta(t, 100, d, 1e-9, "line %d sample %d", li, si)
		}
	}
}

func TestWireframeMeridiansSpanPoles(t *testing.T) {
	lines := Wireframe(100)
	for i := 0; i < 6; i++ {
		m := lines[i]
		assert.InDelta(t, 100, m[0].Y, 1e-9, "meridian %d start pole", i)
		assert.InDelta(t, -100, m[len(m)-1].Y, 1e-9, "meridian %d end pole", i)
	}
}

func TestWireframeParallels(t *testing.T) {
	lines := Wireframe(100)
	wantY := []float64{0, 50, -50}
	for i, y := range wantY {
		ring := lines[6+i]
		for _, v := range ring {
			assert.InDelta(t, y, v.Y, 1e-9)
		}
		first, last := ring[0], ring[len(ring)-1]
		assert.InDelta(t, first.X, last.X, 1e-9, "parallel %d closed", i)
		assert.InDelta(t, first.Z, last.Z, 1e-9, "parallel %d closed", i)
	}
}

func TestWireframeCache(t *testing.T) {
	var c WireframeCache
	a := c.Get(100)
	b := c.Get(100)
	assert.Same(t, &a[0], &b[0], "same radius reuses the cache")
	resized := c.Get(80)
	assert.InDelta(t, 80, resized[0][0].Y, 1e-9, "radius change recomputes")
}
