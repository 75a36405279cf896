package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle, origin at top-left
type Rect struct {
	X, Y float64
	W, H float64
}

// R is shorthand for Rect{x, y, w, h}
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Size returns (W, H)
func (r Rect) Size() Vec2 {
	return Vec2{r.W, r.H}
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p is inside the half-open rectangle
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Inset shrinks the rectangle by n on every side, clamping at zero size
func (r Rect) Inset(n float64) Rect {
	w := r.W - 2*n
	h := r.H - 2*n
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + n, Y: r.Y + n, W: w, H: h}
}

// Origin returns the coordinate of the near edge along axis
func (r Rect) Origin(a Axis) float64 {
	if a == AxisX {
		return r.X
	}
	return r.Y
}

// Extent returns the size along axis
func (r Rect) Extent(a Axis) float64 {
	if a == AxisX {
		return r.W
	}
	return r.H
}

// Slice returns the sub-rectangle [offset, offset+length) along axis,
// keeping the full extent of the other axis
func (r Rect) Slice(a Axis, offset, length float64) Rect {
	if a == AxisX {
		return Rect{X: r.X + offset, Y: r.Y, W: length, H: r.H}
	}
	return Rect{X: r.X, Y: r.Y + offset, W: r.W, H: length}
}

// Round snaps the edges to whole units, the size follows from the snapped edges
func (r Rect) Round() Rect {
	x0, y0 := math.Round(r.X), math.Round(r.Y)
	x1, y1 := math.Round(r.X+r.W), math.Round(r.Y+r.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g)", r.X, r.Y, r.W, r.H)
}
