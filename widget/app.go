package widget

import (
	"github.com/lixenwraith/tilekit/canvas"
	"github.com/lixenwraith/tilekit/geom"
)

// App owns the main widget and routes input events through the tree
// App is not safe for concurrent use; drive it from the render loop
type App struct {
	main   Widget
	locked Widget
	last   geom.Vec2
}

// NewApp creates an app around main
func NewApp(main Widget) *App {
	return &App{main: main}
}

// Lock implements Host
func (a *App) Lock(w Widget) {
	a.locked = w
}

// Unlock implements Host
func (a *App) Unlock() {
	a.locked = nil
}

// Locked implements Host
func (a *App) Locked() Widget {
	return a.locked
}

// Pointer returns the last pointer position seen
func (a *App) Pointer() geom.Vec2 {
	return a.last
}

// ProcessEvent dispatches one event; window resizes go to the main widget
func (a *App) ProcessEvent(ev Event) {
	if a.main == nil {
		return
	}

	var p geom.Vec2
	switch e := ev.(type) {
	case WindowResize:
		a.main.SizeHint(geom.Rect{W: e.Size.X, H: e.Size.Y})
		return
	case MousePress:
		p = e.Pos
	case MouseMove:
		p = e.Pos
	case MouseRelease:
		p = e.Pos
	default:
		return
	}
	a.last = p

	var active Widget
	if a.locked != nil {
		active = a.locked
	} else if a.main.Contains(p) {
		active = a.main
	}

	for active != nil {
		if send(a, active, ev) {
			return
		}
		// locked widgets see events exclusively
		if a.locked != nil && a.locked == active {
			return
		}
		active = topmostChildAt(active, p)
	}
}

// Render draws the main widget
func (a *App) Render(c *canvas.Canvas) {
	if a.main != nil {
		a.main.Render(c)
	}
}

func send(h Host, w Widget, ev Event) bool {
	switch e := ev.(type) {
	case MousePress:
		return w.OnMousePress(h, e)
	case MouseMove:
		return w.OnMouseMove(h, e)
	case MouseRelease:
		return w.OnMouseRelease(h, e)
	}
	return false
}

func topmostChildAt(w Widget, p geom.Vec2) Widget {
	children := w.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if children[i].Contains(p) {
			return children[i]
		}
	}
	return nil
}
