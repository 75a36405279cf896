package grid2

import (
	"io"
	"log"

	"github.com/lixenwraith/tilekit/canvas"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/scene"
	"github.com/lixenwraith/tilekit/widget"
)

// DefaultEpsilon is the smallest variable weight a drag may leave on a slot
const DefaultEpsilon = 0.01

// Options configures a Grid; the zero value is usable
type Options struct {
	Border int
	Margin int

	// Epsilon bounds slot weights from below during resize, DefaultEpsilon if 0
	Epsilon float64
	// Snap rounds split positions to whole cells
	Snap bool

	// Bindings maps press triggers to gestures, DefaultBindings if zero
	Bindings Bindings
	Theme    *canvas.Theme
	Observer Observer
	Logger   *log.Logger
}

// Grid is a widget tiling its window with a binary split tree.
// Use New; a zero Grid is only valid as a Parse or UnmarshalText target.
type Grid struct {
	arena
	root NodeID

	border int
	margin int

	epsilon  float64
	snap     bool
	bindings Bindings
	theme    *canvas.Theme
	observer Observer
	logger   *log.Logger

	window geom.Rect
	dirty  bool
	picks  scene.Scene[NodeID]

	gesture *resizeGesture
}

var _ widget.Widget = (*Grid)(nil)

// New creates an empty grid
func New(opts Options) *Grid {
	g := &Grid{
		root:     NoNode,
		border:   max(opts.Border, 0),
		margin:   max(opts.Margin, 0),
		epsilon:  opts.Epsilon,
		snap:     opts.Snap,
		bindings: opts.Bindings,
		theme:    opts.Theme,
		observer: opts.Observer,
		logger:   opts.Logger,
		dirty:    true,
	}
	g.defaults()
	return g
}

// defaults fills unset options; a zero Grid becomes an empty grid
func (g *Grid) defaults() {
	if len(g.nodes) == 0 {
		g.root = NoNode
	}
	if g.epsilon <= 0 {
		g.epsilon = DefaultEpsilon
	}
	if g.bindings == (Bindings{}) {
		g.bindings = DefaultBindings()
	}
	if g.theme == nil {
		g.theme = &canvas.DefaultTheme
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard, "", 0)
	}
}

// Root returns the root node, NoNode when empty
func (g *Grid) Root() NodeID { return g.root }

// Empty reports whether the grid has no nodes
func (g *Grid) Empty() bool { return g.root == NoNode }

// Len returns the number of live nodes
func (g *Grid) Len() int { return g.live }

func (g *Grid) Border() int { return g.border }
func (g *Grid) Margin() int { return g.margin }

// SetBorder changes the separator thickness
func (g *Grid) SetBorder(n int) {
	g.border = max(n, 0)
	g.dirty = true
}

// SetMargin changes the inset around the whole tree
func (g *Grid) SetMargin(n int) {
	g.margin = max(n, 0)
	g.dirty = true
}

// SetBindings replaces the press trigger bindings
func (g *Grid) SetBindings(b Bindings) { g.bindings = b }

func (g *Grid) Bindings() Bindings { return g.bindings }

// SetObserver replaces the notice callback, nil disables it
func (g *Grid) SetObserver(o Observer) { g.observer = o }

// Window returns the rectangle last assigned through SizeHint
func (g *Grid) Window() geom.Rect { return g.window }

// Dirty reports whether cached rectangles are stale
func (g *Grid) Dirty() bool { return g.dirty }

// Valid reports whether id refers to a live node
func (g *Grid) Valid(id NodeID) bool { return g.valid(id) }

func (g *Grid) IsSlot(id NodeID) bool { return g.at(id).kind == kindSlot }

func (g *Grid) IsDivision(id NodeID) bool { return g.at(id).kind == kindDivision }

// Insert adds a slot holding content. On an empty grid the slot becomes the
// root and at must be NoNode. Otherwise at (root if NoNode) is split along
// o and the new slot becomes child 1 of the new Division.
func (g *Grid) Insert(content widget.Widget, tag int, at NodeID, o Orientation) NodeID {
	var id NodeID
	if g.root == NoNode {
		if at != NoNode {
			panic("grid2: insert into empty grid with a target node")
		}
		id = g.newSlot(content, tag)
		g.root = id
	} else {
		if at == NoNode {
			at = g.root
		}
		g.at(at)
		div := g.split(at, o)
		id = g.newSlot(content, tag)
		g.set(div, 1, id)
	}

	g.dirty = true
	g.logger.Printf("grid2: insert slot %d tag %d", id, tag)
	g.notify(NoticeInsert, id)
	return id
}

// Remove deletes the subtree at id. Removing the root empties the grid;
// otherwise the parent Division is collapsed into the sibling so that no
// Division is left with a single child.
func (g *Grid) Remove(id NodeID) {
	g.RemoveAndSimplify(id)
}

// RemoveAndSimplify deletes the subtree at id and promotes its sibling into
// the place of their parent Division
func (g *Grid) RemoveAndSimplify(id NodeID) {
	n := g.at(id)
	g.CancelGesture()

	if id == g.root {
		g.root = NoNode
		g.destroy(id)
	} else {
		parent := n.parent
		if parent == NoNode {
			panic("grid2: remove of a detached node")
		}
		sib := g.Other(parent, id)
		gp, gi := g.detach(parent)
		g.release(parent, int(g.at(sib).index))
		g.destroy(parent)
		g.attach(sib, gp, gi)
	}

	g.dirty = true
	g.logger.Printf("grid2: remove node %d", id)
	g.notify(NoticeRemove, id)
}

// Clear removes every node
func (g *Grid) Clear() {
	if g.root != NoNode {
		g.Remove(g.root)
	}
}

// Parent returns the Division owning id, NoNode for the root
func (g *Grid) Parent(id NodeID) NodeID { return g.at(id).parent }

// Index returns id's position in its parent, -1 for the root
func (g *Grid) Index(id NodeID) int { return int(g.at(id).index) }

// Child returns child i of a Division
func (g *Grid) Child(div NodeID, i int) NodeID { return g.division(div).children[i] }

// Orientation returns a Division's split orientation
func (g *Grid) Orientation(div NodeID) Orientation { return g.division(div).orient }

// Rect returns the last computed rectangle: a slot's area or a Division's
// separator strip
func (g *Grid) Rect(id NodeID) geom.Rect { return g.at(id).rect }

// Area returns the whole rectangle given to a node's subtree
func (g *Grid) Area(id NodeID) geom.Rect {
	n := g.at(id)
	if n.kind == kindDivision {
		return n.area
	}
	return n.rect
}

// Weights returns the aggregated demand from the last layout pass
func (g *Grid) Weights(id NodeID) Weights { return g.at(id).weights }

// Weight returns a slot's user-assigned variable weight
func (g *Grid) Weight(slot NodeID) geom.Vec2 { return g.slot(slot).weight }

// SetWeight assigns a slot's variable weight; negative components are zeroed
func (g *Grid) SetWeight(slot NodeID, w geom.Vec2) {
	g.slot(slot).weight = geom.V2(max(w.X, 0), max(w.Y, 0))
	g.dirty = true
}

// Visible reports the node's own visibility flag
func (g *Grid) Visible(id NodeID) bool { return g.at(id).visible }

// SetVisible hides or shows a subtree; hidden subtrees take no space
func (g *Grid) SetVisible(id NodeID, v bool) {
	n := g.at(id)
	if n.visible != v {
		n.visible = v
		g.dirty = true
	}
}

// Tag returns a slot's user tag
func (g *Grid) Tag(slot NodeID) int { return g.slot(slot).tag }

// Content returns a slot's widget, nil if unbound
func (g *Grid) Content(slot NodeID) widget.Widget { return g.slot(slot).content }

// SetContent binds w to a slot
func (g *Grid) SetContent(slot NodeID, w widget.Widget) {
	g.slot(slot).content = w
	g.dirty = true
}

// SlotsByTag returns slots carrying tag in pre-order
func (g *Grid) SlotsByTag(tag int) []NodeID {
	var ids []NodeID
	g.Walk(func(id NodeID) bool {
		if n := &g.nodes[id]; n.kind == kindSlot && n.tag == tag {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// Bind attaches w to every slot tagged tag and returns how many matched
func (g *Grid) Bind(tag int, w widget.Widget) int {
	ids := g.SlotsByTag(tag)
	for _, id := range ids {
		g.nodes[id].content = w
	}
	if len(ids) > 0 {
		g.dirty = true
	}
	return len(ids)
}

// Contains reports whether p is inside the grid's window
func (g *Grid) Contains(p geom.Vec2) bool {
	return g.window.Contains(p)
}

// SizeHint assigns the grid's window
func (g *Grid) SizeHint(r geom.Rect) {
	if r != g.window {
		g.window = r
		g.dirty = true
	}
	g.Layout()
}

// Children returns the bound content of shown slots in pre-order
func (g *Grid) Children() []widget.Widget {
	var out []widget.Widget
	g.walkShown(g.root, func(id NodeID) {
		if n := &g.nodes[id]; n.kind == kindSlot && n.content != nil {
			out = append(out, n.content)
		}
	})
	return out
}

// SlotAt returns the shown slot whose area contains p
func (g *Grid) SlotAt(p geom.Vec2) (NodeID, bool) {
	g.Layout()
	found := NoNode
	g.walkShown(g.root, func(id NodeID) {
		if n := &g.nodes[id]; n.kind == kindSlot && n.rect.Contains(p) {
			found = id
		}
	})
	return found, found != NoNode
}

// Render lays out if needed, draws separators and then the slot contents
func (g *Grid) Render(c *canvas.Canvas) {
	g.Layout()

	var active NodeID = NoNode
	if g.gesture != nil {
		active = g.gesture.div
	}
	g.walkShown(g.root, func(id NodeID) {
		n := &g.nodes[id]
		if n.kind != kindDivision || n.rect.Empty() {
			return
		}
		style := g.theme.Separator
		if id == active {
			style = g.theme.Active
		}
		r := c.RegionOf(n.rect)
		if n.orient == Horizontal {
			for x := 0; x < r.W; x++ {
				r.VLine(x, canvas.LineSingle, style)
			}
			return
		}
		for y := 0; y < r.H; y++ {
			r.HLine(y, canvas.LineSingle, style)
		}
	})

	for _, w := range g.Children() {
		w.Render(c)
	}
}

// walkShown visits id's subtree in pre-order, skipping hidden subtrees
func (g *Grid) walkShown(id NodeID, fn func(NodeID)) {
	if id == NoNode {
		return
	}
	n := g.at(id)
	if !n.visible {
		return
	}
	fn(id)
	if n.kind == kindDivision {
		children := n.children
		g.walkShown(children[0], fn)
		g.walkShown(children[1], fn)
	}
}

func (g *Grid) notify(kind NoticeKind, id NodeID) {
	if g.observer != nil {
		g.observer(Notice{Kind: kind, Node: id})
	}
}
