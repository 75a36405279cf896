package widget

import (
	"github.com/lixenwraith/tilekit/canvas"
	"github.com/lixenwraith/tilekit/geom"
)

// Host is the part of the application a widget may use while handling input
type Host interface {
	// Lock routes all following mouse events to w until Unlock
	Lock(w Widget)
	Unlock()
	Locked() Widget
}

// Widget is a node of the retained widget tree
// Mouse handlers return true when they consume the event; an unconsumed
// event descends to the topmost child containing the pointer
type Widget interface {
	Contains(p geom.Vec2) bool

	// SizeHint assigns the rectangle the widget occupies
	SizeHint(r geom.Rect)

	// Render draws the widget, called once per frame
	Render(c *canvas.Canvas)

	OnMousePress(h Host, ev MousePress) bool
	OnMouseMove(h Host, ev MouseMove) bool
	OnMouseRelease(h Host, ev MouseRelease) bool

	// Children in render order, bottom to top
	Children() []Widget
}

// Base is an embeddable no-op widget that remembers its rectangle
type Base struct {
	Rect geom.Rect
}

func (b *Base) Contains(p geom.Vec2) bool { return b.Rect.Contains(p) }

func (b *Base) SizeHint(r geom.Rect) { b.Rect = r }

func (b *Base) Render(*canvas.Canvas) {}

func (b *Base) OnMousePress(Host, MousePress) bool { return false }

func (b *Base) OnMouseMove(Host, MouseMove) bool { return false }

func (b *Base) OnMouseRelease(Host, MouseRelease) bool { return false }

func (b *Base) Children() []Widget { return nil }
