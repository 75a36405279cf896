package grid2

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/widget"
)

func twoSlotApp(t *testing.T, opts Options) (*widget.App, *Grid, NodeID, NodeID) {
	t.Helper()
	g := New(opts)
	a := g.Insert(&stub{}, 1, NoNode, Horizontal)
	b := g.Insert(&stub{}, 2, a, Horizontal)
	app := widget.NewApp(g)
	app.ProcessEvent(widget.WindowResize{Size: geom.V2(201, 100)})
	return app, g, a, b
}

func TestResizeGesture(t *testing.T) {
	app, g, a, b := twoSlotApp(t, Options{Border: 1, Snap: true})
	if got := g.Rect(g.Root()); got != geom.R(100, 0, 1, 100) {
		t.Fatalf("Expected separator at x=100, got %v", got)
	}

	app.ProcessEvent(widget.MousePress{Pos: geom.V2(100, 50), Button: widget.MouseBtnLeft})
	if app.Locked() != widget.Widget(g) {
		t.Fatal("Expected grid to hold the lock")
	}
	if div, ok := g.Resizing(); !ok || div != g.Root() {
		t.Fatalf("Expected resizing root, got %d %v", div, ok)
	}

	app.ProcessEvent(widget.MouseMove{Pos: geom.V2(110, 50), Prev: geom.V2(100, 50)})
	if w := g.Weight(a).X; !near(w, 1.1) {
		t.Errorf("Expected A weight 1.1, got %g", w)
	}
	if w := g.Weight(b).X; !near(w, 0.9) {
		t.Errorf("Expected B weight 0.9, got %g", w)
	}
	if got := g.Rect(a); got != geom.R(0, 0, 110, 100) {
		t.Errorf("Expected A (0,0,110,100), got %v", got)
	}
	if got := g.Rect(g.Root()); got != geom.R(110, 0, 1, 100) {
		t.Errorf("Expected separator to follow the pointer, got %v", got)
	}
	if g.Weight(a).Y != 1 || g.Weight(b).Y != 1 {
		t.Error("Expected cross-axis weights untouched")
	}

	app.ProcessEvent(widget.MouseRelease{Pos: geom.V2(110, 50), Button: widget.MouseBtnLeft})
	if app.Locked() != nil {
		t.Error("Expected lock released")
	}
	if _, ok := g.Resizing(); ok {
		t.Error("Expected idle after release")
	}

	// idle moves are not consumed and change nothing
	app.ProcessEvent(widget.MouseMove{Pos: geom.V2(150, 50), Prev: geom.V2(110, 50)})
	if w := g.Weight(a).X; !near(w, 1.1) {
		t.Errorf("Expected weight unchanged after release, got %g", w)
	}
}

func TestResizeEventsOutsideWhileLocked(t *testing.T) {
	app, g, a, _ := twoSlotApp(t, Options{Border: 1, Snap: true})

	app.ProcessEvent(widget.MousePress{Pos: geom.V2(100, 10), Button: widget.MouseBtnLeft})
	app.ProcessEvent(widget.MouseMove{Pos: geom.V2(-50, 400), Prev: geom.V2(100, 10)})
	app.ProcessEvent(widget.MouseRelease{Pos: geom.V2(-50, 400), Button: widget.MouseBtnLeft})

	if w := g.Weight(a).X; !near(w, DefaultEpsilon) {
		t.Errorf("Expected A clamped to epsilon, got %g", w)
	}
	if r := g.Rect(a); r.W < 0 {
		t.Errorf("Expected non-negative width, got %v", r)
	}
	if app.Locked() != nil {
		t.Error("Expected lock released")
	}
}

func TestPressOnSlotFallsThroughToContent(t *testing.T) {
	app, g, a, _ := twoSlotApp(t, Options{Border: 1})
	content := g.Content(a).(*stub)

	app.ProcessEvent(widget.MousePress{Pos: geom.V2(20, 20), Button: widget.MouseBtnLeft})
	if content.presses != 1 {
		t.Errorf("Expected press delivered to slot content, got %d", content.presses)
	}
	if _, ok := g.Resizing(); ok {
		t.Error("Expected no gesture from a slot press")
	}
}

func TestUnboundTriggerIgnored(t *testing.T) {
	app, g, _, _ := twoSlotApp(t, Options{Border: 1})
	root := g.Root()

	app.ProcessEvent(widget.MousePress{Pos: geom.V2(100, 50), Button: widget.MouseBtnMiddle})
	if _, ok := g.Resizing(); ok || g.Orientation(root) != Horizontal || app.Locked() != nil {
		t.Error("Expected middle press to do nothing")
	}
}

func TestSecondaryBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   widget.MousePress
		want string
	}{
		{"flip", widget.MousePress{Button: widget.MouseBtnRight}, "g 0 1 v s 1 1 1 s 1 1 2"},
		{"swap", widget.MousePress{Button: widget.MouseBtnRight, Mods: widget.ModCtrl}, "g 0 1 h s 1 1 2 s 1 1 1"},
		{"flip local", widget.MousePress{Button: widget.MouseBtnRight, Mods: widget.ModShift}, "g 0 1 v s 1 1 1 s 1 1 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, g, _, _ := twoSlotApp(t, Options{Border: 1})
			ev := tt.ev
			ev.Pos = geom.V2(100, 50)
			app.ProcessEvent(ev)

			if got := g.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if app.Locked() != nil {
				t.Error("Expected no lock for secondary actions")
			}
		})
	}
}

func TestCustomBindings(t *testing.T) {
	b := Bindings{Resize: widget.Trigger{Button: widget.MouseBtnLeft, Mods: widget.ModAlt}}
	app, g, _, _ := twoSlotApp(t, Options{Border: 1, Bindings: b})

	app.ProcessEvent(widget.MousePress{Pos: geom.V2(100, 50), Button: widget.MouseBtnLeft})
	if _, ok := g.Resizing(); ok {
		t.Error("Expected plain left press not to resize")
	}
	app.ProcessEvent(widget.MousePress{Pos: geom.V2(100, 50), Button: widget.MouseBtnLeft, Mods: widget.ModAlt})
	if _, ok := g.Resizing(); !ok {
		t.Error("Expected alt+left to resize")
	}
	app.ProcessEvent(widget.MousePress{Pos: geom.V2(100, 50), Button: widget.MouseBtnRight})
	if g.Orientation(g.Root()) != Horizontal {
		t.Error("Expected unbound flip to be ignored")
	}
}

func TestCancelGestureUnlocks(t *testing.T) {
	app, g, _, _ := twoSlotApp(t, Options{Border: 1})
	app.ProcessEvent(widget.MousePress{Pos: geom.V2(100, 50), Button: widget.MouseBtnLeft})

	g.CancelGesture()
	if _, ok := g.Resizing(); ok || app.Locked() != nil {
		t.Error("Expected gesture cancelled and lock released")
	}
}

func TestRemoveCancelsGesture(t *testing.T) {
	app, g, a, _ := twoSlotApp(t, Options{Border: 1})
	app.ProcessEvent(widget.MousePress{Pos: geom.V2(100, 50), Button: widget.MouseBtnLeft})

	g.Remove(a)
	if _, ok := g.Resizing(); ok || app.Locked() != nil {
		t.Error("Expected removal to end the gesture")
	}
}

func TestPressDuringDragIgnored(t *testing.T) {
	app, g, a, b := twoSlotApp(t, Options{Border: 1, Snap: true})
	app.ProcessEvent(widget.MousePress{Pos: geom.V2(100, 50), Button: widget.MouseBtnLeft})
	app.ProcessEvent(widget.MousePress{Pos: geom.V2(100, 50), Button: widget.MouseBtnRight})

	if o := g.Orientation(g.Root()); o != Horizontal {
		t.Errorf("Expected orientation h during drag, got %s", o)
	}
	if _, ok := g.Resizing(); !ok {
		t.Fatal("Expected drag to continue")
	}

	app.ProcessEvent(widget.MouseMove{Pos: geom.V2(130, 50), Prev: geom.V2(100, 50)})
	if g.Weight(a).Y != 1 || g.Weight(b).Y != 1 {
		t.Errorf("Expected Y weights untouched, got %v %v", g.Weight(a), g.Weight(b))
	}
	if w := g.Weight(a).X; !near(w, 1.3) {
		t.Errorf("Expected A weight 1.3, got %g", w)
	}
}

func TestStructuralEditsCancelGesture(t *testing.T) {
	tests := []struct {
		name string
		edit func(g *Grid)
	}{
		{"flip", func(g *Grid) { g.Flip(g.Root()) }},
		{"flip_local", func(g *Grid) { g.FlipLocal(g.Root()) }},
		{"swap", func(g *Grid) { g.SwapNeighbors(g.Root()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, g, _, _ := twoSlotApp(t, Options{Border: 1})
			app.ProcessEvent(widget.MousePress{Pos: geom.V2(100, 50), Button: widget.MouseBtnLeft})

			tt.edit(g)
			if _, ok := g.Resizing(); ok || app.Locked() != nil {
				t.Error("Expected the edit to end the drag")
			}
		})
	}
}

func TestResizeAffectsOnlyAdjacentSlots(t *testing.T) {
	g, d1, d2, a, b, c := threeSlots(t, Options{})
	g.SizeHint(geom.R(0, 0, 300, 100))

	got := g.ApplyResize(d1, 0.5)
	if !near(got, 0.5) {
		t.Errorf("Expected full delta applied, got %g", got)
	}
	if !near(g.Weight(a).X, 1.5) || !near(g.Weight(b).X, 0.5) || g.Weight(c).X != 1 {
		t.Errorf("Expected A 1.5 B 0.5 C 1, got %g %g %g", g.Weight(a).X, g.Weight(b).X, g.Weight(c).X)
	}

	g.ApplyResize(d2, -0.25)
	if !near(g.Weight(b).X, 0.25) || !near(g.Weight(c).X, 1.25) || !near(g.Weight(a).X, 1.5) {
		t.Errorf("Expected A 1.5 B 0.25 C 1.25, got %g %g %g", g.Weight(a).X, g.Weight(b).X, g.Weight(c).X)
	}
}

func TestResizeCrossOrientationTouchesBothBranches(t *testing.T) {
	g := New(Options{})
	a := g.Insert(nil, 1, NoNode, Horizontal)
	b := g.Insert(nil, 2, a, Horizontal)
	root := g.Root()
	c := g.Insert(nil, 3, b, Vertical)
	g.SizeHint(geom.R(0, 0, 100, 100))

	g.ApplyResize(root, -0.5)
	if !near(g.Weight(a).X, 0.5) || !near(g.Weight(b).X, 1.5) || !near(g.Weight(c).X, 1.5) {
		t.Errorf("Expected A 0.5 B 1.5 C 1.5, got %g %g %g", g.Weight(a).X, g.Weight(b).X, g.Weight(c).X)
	}
}

func TestResizeSkipsHiddenInnerBranch(t *testing.T) {
	g, d1, _, a, b, c := threeSlots(t, Options{})
	g.SetVisible(b, false)
	g.SizeHint(geom.R(0, 0, 300, 100))

	g.ApplyResize(d1, 0.5)
	if g.Weight(b).X != 1 || !near(g.Weight(c).X, 0.5) || !near(g.Weight(a).X, 1.5) {
		t.Errorf("Expected hidden B untouched and C shrunk, got %g %g %g", g.Weight(a).X, g.Weight(b).X, g.Weight(c).X)
	}
}

func TestResizeClamp(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := randomGrid(t, seed, 10)
		g.SizeHint(geom.R(0, 0, 120, 40))
		r := rand.New(rand.NewSource(seed))

		var divs []NodeID
		g.Walk(func(id NodeID) bool {
			if g.IsDivision(id) {
				divs = append(divs, id)
			}
			return true
		})
		if len(divs) == 0 {
			continue
		}

		for step := 0; step < 200; step++ {
			d := divs[r.Intn(len(divs))]
			g.ApplyResize(d, (r.Float64()-0.5)*20)

			for _, s := range g.Slots() {
				w := g.Weight(s)
				if w.X < DefaultEpsilon-1e-12 || w.Y < DefaultEpsilon-1e-12 {
					t.Fatalf("Seed %d step %d: slot %d weight %v below epsilon", seed, step, s, w)
				}
			}
			g.Walk(func(id NodeID) bool {
				if rc := g.Rect(id); rc.W < 0 || rc.H < 0 {
					t.Errorf("Seed %d step %d: node %d negative rect %v", seed, step, id, rc)
				}
				return true
			})
		}
	}
}

func TestResizeAtEpsilonAppliesNothing(t *testing.T) {
	g, d1, _, a, b, _ := threeSlots(t, Options{})
	g.SetWeight(b, geom.V2(DefaultEpsilon, 1))
	g.SizeHint(geom.R(0, 0, 300, 100))

	if got := g.ApplyResize(d1, 1); got != 0 {
		t.Errorf("Expected zero applied delta, got %g", got)
	}
	if g.Weight(a).X != 1 {
		t.Errorf("Expected A unchanged, got %g", g.Weight(a).X)
	}
}
