package sphere

import "sort"

// RenderNode is one draw descriptor handed to the drawing layer.
// Behind marks nodes deep enough on the far side for a faded visual
// treatment; it is a rendering hint, not a geometry change.
type RenderNode struct {
	Projected
	Behind bool
}

// Frame is one render-ready snapshot: nodes in painter order (farthest
// first, center forced last) and projected wireframe polylines.
type Frame struct {
	Nodes []RenderNode
	Wires [][]Vec2
}

// BuildFrame projects the layout and wireframe under one view and
// returns the draw list. The node order is ascending perspective
// scale, except the center node which always draws last so the focal
// item stays visually dominant.
func BuildFrame(points []Point3D, wires []Polyline3, view ViewState, vp Viewport, radius float64) Frame {
	behindZ := -behindFactor * radius * view.Zoom
	nodes := make([]RenderNode, 0, len(points))
	for _, p := range points {
		pr := Project(p, view, vp)
		nodes = append(nodes, RenderNode{
			Projected: pr,
			Behind:    pr.RotatedZ < behindZ,
		})
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].IsCenter != nodes[j].IsCenter {
			return nodes[j].IsCenter
		}
		return nodes[i].Scale < nodes[j].Scale
	})

	projected := make([][]Vec2, len(wires))
	for i, line := range wires {
		out := make([]Vec2, len(line))
		for j, v := range line {
			out[j] = ProjectVec3(v, view, vp)
		}
		projected[i] = out
	}
	return Frame{Nodes: nodes, Wires: projected}
}

// NodeAt returns the topmost node within maxDist of the screen
// position, honoring draw order: later (nearer) nodes win ties.
func (f Frame) NodeAt(x, y, maxDist float64) (RenderNode, bool) {
	for i := len(f.Nodes) - 1; i >= 0; i-- {
		n := f.Nodes[i]
		dx := n.ScreenX - x
		dy := n.ScreenY - y
		if dx*dx+dy*dy <= maxDist*maxDist {
			return n, true
		}
	}
	return RenderNode{}, false
}

// NodeByID resolves an id to its node. With duplicate ids the last
// matching entry wins; callers are expected to supply unique ids.
func (f Frame) NodeByID(id string) (RenderNode, bool) {
	for i := len(f.Nodes) - 1; i >= 0; i-- {
		if f.Nodes[i].ID == id {
			return f.Nodes[i], true
		}
	}
	return RenderNode{}, false
}
