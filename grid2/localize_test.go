package grid2

import (
	"testing"

	"github.com/lixenwraith/tilekit/geom"
)

// chain builds h(h(A,B), h(C,D)) and returns the root and slots
func chain(t *testing.T) (g *Grid, root, a, b, c, d NodeID) {
	t.Helper()
	g = New(Options{})
	a = g.Insert(nil, 1, NoNode, Horizontal)
	b = g.Insert(nil, 2, a, Horizontal)
	c = g.Insert(nil, 3, g.Root(), Horizontal)
	d = g.Insert(nil, 4, c, Horizontal)
	root = g.Root()
	checkInvariants(t, g)
	return
}

func sameIDs(a, b []NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLocalizeDivision(t *testing.T) {
	g, root, a, b, c, d := chain(t)
	g.SizeHint(geom.R(0, 0, 200, 100))
	before := map[NodeID]geom.Rect{}
	for _, s := range g.Slots() {
		before[s] = g.Rect(s)
	}
	if g.IsLocal(root) {
		t.Fatal("Expected chained root not to be local")
	}

	g.LocalizeDivision(root)
	checkInvariants(t, g)

	if g.Child(root, 0) != b || g.Child(root, 1) != c {
		t.Errorf("Expected division between B and C, got (%d,%d)", g.Child(root, 0), g.Child(root, 1))
	}
	if !g.IsLocal(root) {
		t.Error("Expected division to be local")
	}
	if got, want := g.Slots(), []NodeID{a, b, c, d}; !sameIDs(got, want) {
		t.Errorf("Expected leaf order %v, got %v", want, got)
	}
	if g.Len() != 7 {
		t.Errorf("Expected 7 live nodes, got %d", g.Len())
	}

	g.Layout()
	for s, r := range before {
		if got := g.Rect(s); !nearRect(got, r) {
			t.Errorf("Slot %d: expected rect %v kept, got %v", s, r, got)
		}
	}
}

func TestLocalizeOneSidedChain(t *testing.T) {
	g := New(Options{})
	a := g.Insert(nil, 1, NoNode, Vertical)
	b := g.Insert(nil, 2, a, Vertical)
	c := g.Insert(nil, 3, b, Vertical)
	d := g.Insert(nil, 4, c, Vertical)
	root := g.Root()

	g.LocalizeDivision(root)
	checkInvariants(t, g)

	if g.Child(root, 0) != a || g.Child(root, 1) != b {
		t.Errorf("Expected root division between A and B, got (%d,%d)", g.Child(root, 0), g.Child(root, 1))
	}
	if g.Parent(root) == NoNode {
		t.Error("Expected chain re-parented above the division")
	}
	if got, want := g.Slots(), []NodeID{a, b, c, d}; !sameIDs(got, want) {
		t.Errorf("Expected leaf order %v, got %v", want, got)
	}
}

func TestLocalizeKeepsCrossOrientationSubtrees(t *testing.T) {
	g := New(Options{})
	a := g.Insert(nil, 1, NoNode, Horizontal)
	b := g.Insert(nil, 2, a, Vertical)
	inner := g.Root()
	c := g.Insert(nil, 3, inner, Horizontal)
	root := g.Root()

	// h(v(A,B), C) has no same-orientation chain
	g.LocalizeDivision(root)
	if g.Root() != root || g.Child(root, 0) != inner || g.Child(root, 1) != c {
		t.Error("Expected local division untouched")
	}
	if g.Child(inner, 0) != a || g.Child(inner, 1) != b {
		t.Error("Expected cross subtree untouched")
	}
}

func TestLocalizeNested(t *testing.T) {
	g, mid, a, b, c, d := chain(t)
	e := g.Insert(nil, 5, mid, Horizontal)
	top := g.Root()

	// h(h(h(A,B),h(C,D)),E), localize the B|C seam below the root
	g.LocalizeDivision(mid)
	checkInvariants(t, g)

	if g.Child(mid, 0) != b || g.Child(mid, 1) != c {
		t.Errorf("Expected B|C division, got (%d,%d)", g.Child(mid, 0), g.Child(mid, 1))
	}
	if g.Root() != top || g.Child(top, 1) != e {
		t.Error("Expected the enclosing division untouched")
	}
	if got, want := g.Slots(), []NodeID{a, b, c, d, e}; !sameIDs(got, want) {
		t.Errorf("Expected leaf order %v, got %v", want, got)
	}
}

func TestFlipLocal(t *testing.T) {
	g, root, _, b, c, _ := chain(t)
	g.FlipLocal(root)
	g.SizeHint(geom.R(0, 0, 300, 100))
	checkInvariants(t, g)

	if g.Orientation(root) != Vertical {
		t.Error("Expected flipped division")
	}
	g.Walk(func(id NodeID) bool {
		if id != root && g.IsDivision(id) && g.Orientation(id) != Horizontal {
			t.Errorf("Division %d: expected horizontal", id)
		}
		return true
	})

	rb, rc := g.Rect(b), g.Rect(c)
	if !(rb.Y < rc.Y) || rb.X != rc.X || rb.W != rc.W {
		t.Errorf("Expected B stacked above C, got %v and %v", rb, rc)
	}
}

func TestFlipWholeChain(t *testing.T) {
	g, root, a, _, _, d := chain(t)
	g.Flip(root)

	if g.Orientation(root) != Vertical {
		t.Error("Expected flipped root")
	}
	if g.Child(g.Child(root, 0), 0) != a || g.Child(g.Child(root, 1), 1) != d {
		t.Error("Expected children untouched by flip")
	}
}

func TestSwapNeighbors(t *testing.T) {
	g, d1, d2, a, b, c := threeSlots(t, Options{})
	g.SwapNeighbors(d1)
	checkInvariants(t, g)

	if got, want := g.Slots(), []NodeID{b, a, c}; !sameIDs(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}
	if g.Parent(a) != d2 || g.Index(a) != 0 || g.Parent(b) != d1 || g.Index(b) != 0 {
		t.Error("Expected A and B to trade places")
	}
	if g.Tag(a) != 1 || g.Tag(b) != 2 {
		t.Error("Expected tags to travel with slots")
	}
}

func TestSwapNeighborsCross(t *testing.T) {
	g := New(Options{})
	a := g.Insert(nil, 1, NoNode, Horizontal)
	b := g.Insert(nil, 2, a, Horizontal)
	root := g.Root()
	c := g.Insert(nil, 3, a, Vertical)

	// h(v(A,C), B): nearest on the left of the seam across a vertical split is A
	g.SwapNeighbors(root)
	checkInvariants(t, g)

	if got, want := g.Slots(), []NodeID{b, c, a}; !sameIDs(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}
}
