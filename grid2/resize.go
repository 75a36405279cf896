package grid2

import (
	"math"

	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/widget"
)

// Action is a named separator operation a press can trigger
type Action uint8

const (
	ActionNone Action = iota
	ActionResize
	ActionFlip
	ActionFlipLocal
	ActionSwap
)

func (a Action) String() string {
	switch a {
	case ActionResize:
		return "resize"
	case ActionFlip:
		return "flip"
	case ActionFlipLocal:
		return "flip_local"
	case ActionSwap:
		return "swap"
	default:
		return "none"
	}
}

// Bindings maps press triggers on a separator to actions
// A zero Trigger leaves the action unbound
type Bindings struct {
	Resize    widget.Trigger
	Flip      widget.Trigger
	FlipLocal widget.Trigger
	Swap      widget.Trigger
}

// DefaultBindings: left drag resizes, right flips, shift+right flips locally,
// ctrl+right swaps neighbours
func DefaultBindings() Bindings {
	return Bindings{
		Resize:    widget.Trigger{Button: widget.MouseBtnLeft},
		Flip:      widget.Trigger{Button: widget.MouseBtnRight},
		FlipLocal: widget.Trigger{Button: widget.MouseBtnRight, Mods: widget.ModShift},
		Swap:      widget.Trigger{Button: widget.MouseBtnRight, Mods: widget.ModCtrl},
	}
}

// Match returns the action bound to a press
func (b Bindings) Match(ev widget.MousePress) Action {
	for _, c := range []struct {
		t widget.Trigger
		a Action
	}{
		{b.Resize, ActionResize},
		{b.Flip, ActionFlip},
		{b.FlipLocal, ActionFlipLocal},
		{b.Swap, ActionSwap},
	} {
		if c.t.Button != widget.MouseBtnNone && c.t.Matches(ev) {
			return c.a
		}
	}
	return ActionNone
}

// resizeGesture is the RESIZING state; a nil gesture is IDLE
type resizeGesture struct {
	div            NodeID
	axis           geom.Axis
	weightPerPixel float64
	last           geom.Vec2
	host           widget.Host
}

// Resizing reports whether a drag is in progress and on which Division
func (g *Grid) Resizing() (NodeID, bool) {
	if g.gesture == nil {
		return NoNode, false
	}
	return g.gesture.div, true
}

// BeginResize starts a drag of div's separator from pos. The host lock is
// taken when h is not nil.
func (g *Grid) BeginResize(h widget.Host, div NodeID, pos geom.Vec2) {
	g.Layout()
	n := g.division(div)
	axis := n.orient.Axis()

	wpp := 0.0
	if d := n.area.Extent(axis) - n.weights.Fixed.Get(axis); d > 0 {
		wpp = n.weights.Variable.Get(axis) / d
	}

	g.CancelGesture()
	g.gesture = &resizeGesture{div: div, axis: axis, weightPerPixel: wpp, last: pos, host: h}
	if h != nil {
		h.Lock(g)
	}
	g.logger.Printf("grid2: resize start division %d wpp %g", div, wpp)
	g.notify(NoticeResizeStart, div)
}

// DragTo moves the active drag to pos and returns the weight delta applied
// to the slots on child 0's side
func (g *Grid) DragTo(pos geom.Vec2) float64 {
	gs := g.gesture
	if gs == nil {
		return 0
	}
	delta := pos.Get(gs.axis) - gs.last.Get(gs.axis)
	gs.last = pos
	if delta == 0 {
		return 0
	}
	return g.ApplyResize(gs.div, delta*gs.weightPerPixel)
}

// EndResize finishes the drag and releases the host lock
func (g *Grid) EndResize() {
	gs := g.gesture
	if gs == nil {
		return
	}
	g.gesture = nil
	if gs.host != nil && gs.host.Locked() == widget.Widget(g) {
		gs.host.Unlock()
	}
	g.logger.Printf("grid2: resize end division %d", gs.div)
	g.notify(NoticeResizeEnd, gs.div)
}

// CancelGesture ends a drag whose release will never arrive
func (g *Grid) CancelGesture() {
	g.EndResize()
}

// ApplyResize moves dw of variable weight across div's separator: slots
// adjacent to it on child 0's side gain dw, those on child 1's side lose
// it. The delta is clamped so no slot drops below epsilon; the applied delta
// is returned.
func (g *Grid) ApplyResize(div NodeID, dw float64) float64 {
	n := g.division(div)
	axis := n.orient.Axis()
	side0 := g.adjacentSlots(n.children[0], n.orient, 0, nil)
	side1 := g.adjacentSlots(n.children[1], n.orient, 1, nil)
	if len(side0) == 0 || len(side1) == 0 || dw == 0 || math.IsNaN(dw) {
		return 0
	}

	shrinking := side1
	if dw < 0 {
		shrinking = side0
	}
	room := math.Inf(1)
	for _, id := range shrinking {
		room = min(room, g.nodes[id].weight.Get(axis)-g.epsilon)
	}
	if room <= 0 {
		return 0
	}
	if math.Abs(dw) > room {
		dw = math.Copysign(room, dw)
	}

	for _, id := range side0 {
		s := &g.nodes[id]
		s.weight = s.weight.With(axis, max(s.weight.Get(axis)+dw, g.epsilon))
	}
	for _, id := range side1 {
		s := &g.nodes[id]
		s.weight = s.weight.With(axis, max(s.weight.Get(axis)-dw, g.epsilon))
	}

	g.dirty = true
	g.Layout()
	return dw
}

// adjacentSlots collects the shown slots of id's subtree that touch the
// separator of a Division with orientation o; side is the subtree's
// position relative to that separator
func (g *Grid) adjacentSlots(id NodeID, o Orientation, side int, out []NodeID) []NodeID {
	n := g.at(id)
	if !n.visible {
		return out
	}
	if n.kind == kindSlot {
		return append(out, id)
	}

	if n.orient != o {
		out = g.adjacentSlots(n.children[0], o, side, out)
		return g.adjacentSlots(n.children[1], o, side, out)
	}

	inner, outer := n.children[1-side], n.children[side]
	if g.takesSpace(inner) {
		return g.adjacentSlots(inner, o, side, out)
	}
	return g.adjacentSlots(outer, o, side, out)
}

// takesSpace reports whether id's subtree has any visible slot
func (g *Grid) takesSpace(id NodeID) bool {
	found := false
	g.walkShown(id, func(c NodeID) {
		if g.nodes[c].kind == kindSlot {
			found = true
		}
	})
	return found
}

// OnMousePress starts a gesture when a bound trigger hits a separator.
// Presses during a drag are swallowed.
func (g *Grid) OnMousePress(h widget.Host, ev widget.MousePress) bool {
	if g.gesture != nil {
		return true
	}
	id, ok := g.Pick(ev.Pos)
	if !ok || g.nodes[id].kind != kindDivision {
		return false
	}

	action := g.bindings.Match(ev)
	switch action {
	case ActionResize:
		g.BeginResize(h, id, ev.Pos)
	case ActionFlip, ActionFlipLocal, ActionSwap:
		g.Apply(action, id)
	default:
		return false
	}
	return true
}

// OnMouseMove drives an active drag
func (g *Grid) OnMouseMove(h widget.Host, ev widget.MouseMove) bool {
	if g.gesture == nil {
		return false
	}
	g.DragTo(ev.Pos)
	return true
}

// OnMouseRelease ends an active drag
func (g *Grid) OnMouseRelease(h widget.Host, ev widget.MouseRelease) bool {
	if g.gesture == nil {
		return false
	}
	if ev.Pos != g.gesture.last {
		g.DragTo(ev.Pos)
	}
	if g.gesture.host == nil {
		g.gesture.host = h
	}
	g.EndResize()
	return true
}

// Apply runs a secondary separator action on div
func (g *Grid) Apply(a Action, div NodeID) {
	switch a {
	case ActionFlip:
		g.Flip(div)
	case ActionFlipLocal:
		g.FlipLocal(div)
	case ActionSwap:
		g.SwapNeighbors(div)
	}
}
