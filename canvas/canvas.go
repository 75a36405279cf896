package canvas

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilekit/geom"
)

// Canvas draws into a tcell screen
type Canvas struct {
	screen tcell.Screen
}

// New wraps screen; the caller owns Init/Fini
func New(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen}
}

// Screen returns the underlying screen
func (c *Canvas) Screen() tcell.Screen {
	return c.screen
}

// Size returns screen dimensions in cells
func (c *Canvas) Size() (int, int) {
	return c.screen.Size()
}

// Bounds returns the whole screen as a layout rectangle
func (c *Canvas) Bounds() geom.Rect {
	w, h := c.screen.Size()
	return geom.R(0, 0, float64(w), float64(h))
}

// Root returns a region covering the whole screen
func (c *Canvas) Root() Region {
	w, h := c.screen.Size()
	return Region{screen: c.screen, X: 0, Y: 0, W: w, H: h}
}

// RegionOf converts a layout rectangle into a cell region by rounding its
// edges, adjacent rectangles therefore never overlap or leave gaps
func (c *Canvas) RegionOf(r geom.Rect) Region {
	rr := r.Round()
	return c.Root().Sub(int(rr.X), int(rr.Y), int(rr.W), int(rr.H))
}

// Clear fills the screen with style
func (c *Canvas) Clear(style tcell.Style) {
	c.screen.SetStyle(style)
	c.screen.Clear()
}

// Show flushes pending cells to the terminal
func (c *Canvas) Show() {
	c.screen.Show()
}
