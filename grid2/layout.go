package grid2

import (
	"math"

	"github.com/lixenwraith/tilekit/geom"
)

// Layout recomputes weights, rectangles and the picking scene if the grid is
// dirty, then hints every bound slot with its rectangle
func (g *Grid) Layout() {
	if !g.dirty {
		return
	}
	g.dirty = false

	g.picks.Reset()
	if g.root == NoNode {
		return
	}

	g.weigh(g.root)
	g.place(g.root, g.window.Inset(float64(g.margin)))

	// hidden slots are hinted too, with the zero rect left by hide
	g.Walk(func(id NodeID) bool {
		if n := &g.nodes[id]; n.kind == kindSlot && n.content != nil {
			n.content.SizeHint(n.rect)
		}
		return true
	})

	// slots first so separators are picked on top of them
	g.walkShown(g.root, func(id NodeID) {
		if n := &g.nodes[id]; n.kind == kindSlot && n.shown {
			g.picks.Add(n.rect, id)
		}
	})
	g.walkShown(g.root, func(id NodeID) {
		n := &g.nodes[id]
		if n.kind == kindDivision && g.nodes[n.children[0]].shown && g.nodes[n.children[1]].shown {
			g.picks.Add(n.rect, id)
		}
	})
}

// Pick returns the node under p, separators before slots
func (g *Grid) Pick(p geom.Vec2) (NodeID, bool) {
	g.Layout()
	return g.picks.Pick(p)
}

// weigh is the bottom-up pass; it stores each node's demand and whether the
// subtree takes any space at all
func (g *Grid) weigh(id NodeID) (Weights, bool) {
	n := g.at(id)
	if !n.visible {
		g.hide(id)
		return Weights{}, false
	}

	switch n.kind {
	case kindSlot:
		n.weights = Weights{Variable: n.weight}
		n.shown = true

	case kindDivision:
		c0, c1 := n.children[0], n.children[1]
		if c0 == NoNode || c1 == NoNode {
			panic("grid2: division with a missing child")
		}
		w0, ok0 := g.weigh(c0)
		w1, ok1 := g.weigh(c1)

		n = g.at(id)
		switch {
		case ok0 && ok1:
			w := mergeWeights(w0, w1, n.orient)
			axis := n.orient.Axis()
			w.Fixed = w.Fixed.With(axis, w.Fixed.Get(axis)+float64(g.border))
			n.weights = w
		case ok0:
			n.weights = w0
		case ok1:
			n.weights = w1
		default:
			n.weights = Weights{}
		}
		n.shown = ok0 || ok1

	default:
		panic("grid2: weigh on a free node")
	}
	return n.weights, n.shown
}

// mergeWeights combines two sibling demands: along the split axis they add,
// across it the larger variable demand wins, ties going to the larger fixed
// demand and then to child 0
func mergeWeights(w0, w1 Weights, o Orientation) Weights {
	along := o.Axis()
	across := along.Other()

	var r Weights
	r.Fixed = r.Fixed.With(along, w0.Fixed.Get(along)+w1.Fixed.Get(along))
	r.Variable = r.Variable.With(along, w0.Variable.Get(along)+w1.Variable.Get(along))

	v0, v1 := w0.Variable.Get(across), w1.Variable.Get(across)
	win := w1
	if v0 > v1 || (v0 == v1 && w0.Fixed.Get(across) >= w1.Fixed.Get(across)) {
		win = w0
	}
	r.Fixed = r.Fixed.With(across, win.Fixed.Get(across))
	r.Variable = r.Variable.With(across, win.Variable.Get(across))
	return r
}

// place is the top-down pass distributing avail over id's subtree
func (g *Grid) place(id NodeID, avail geom.Rect) {
	n := g.at(id)
	if !n.shown {
		g.hide(id)
		return
	}

	if n.kind == kindSlot {
		n.rect = avail
		return
	}

	n.area = avail
	c0, c1 := n.children[0], n.children[1]
	s0, s1 := g.nodes[c0].shown, g.nodes[c1].shown
	if !s0 || !s1 {
		n.rect = geom.Rect{}
		if s0 {
			g.place(c0, avail)
			g.hide(c1)
		} else {
			g.place(c1, avail)
			g.hide(c0)
		}
		return
	}

	axis := n.orient.Axis()
	extent := avail.Extent(axis)

	scale := 0.0
	if v := n.weights.Variable.Get(axis); v > 0 {
		scale = max(0, (extent-n.weights.Fixed.Get(axis))/v)
	}

	w0 := g.nodes[c0].weights
	e0 := w0.Fixed.Get(axis) + w0.Variable.Get(axis)*scale
	if g.snap {
		e0 = math.Round(e0)
	}
	e0 = clamp(e0, 0, extent)
	sep := min(float64(g.border), extent-e0)
	e1 := extent - e0 - sep

	n.rect = avail.Slice(axis, e0, sep)
	g.place(c0, avail.Slice(axis, 0, e0))
	g.place(c1, avail.Slice(axis, e0+sep, e1))
}

// hide zeroes the rectangles of a subtree that takes no space
func (g *Grid) hide(id NodeID) {
	n := g.at(id)
	n.rect = geom.Rect{}
	n.shown = false
	if n.kind == kindDivision {
		n.area = geom.Rect{}
		n.weights = Weights{}
		children := n.children
		for _, c := range children {
			if c != NoNode {
				g.hide(c)
			}
		}
		return
	}
	n.weights = Weights{}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

// Picks returns the number of hit-testable rectangles
func (g *Grid) Picks() int {
	g.Layout()
	return g.picks.Len()
}
