package geom

// Axis selects a component of a Vec2
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Other returns the perpendicular axis
func (a Axis) Other() Axis {
	return 1 - a
}

// String returns "x" or "y"
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Vec2 is a float64 2D vector
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Get returns the component along axis
func (v Vec2) Get(a Axis) float64 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// With returns a copy with the component along axis replaced
func (v Vec2) With(a Axis, val float64) Vec2 {
	if a == AxisX {
		v.X = val
	} else {
		v.Y = val
	}
	return v
}
