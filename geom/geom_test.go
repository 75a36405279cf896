package geom

import "testing"

func TestRectContainsHalfOpen(t *testing.T) {
	r := R(10, 5, 4, 2)

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"TopLeft", V2(10, 5), true},
		{"Inside", V2(12.5, 6), true},
		{"RightEdge", V2(14, 5), false},
		{"BottomEdge", V2(10, 7), false},
		{"Left", V2(9.99, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Expected Contains(%v)=%v, got %v", tt.p, tt.want, got)
			}
		})
	}
}

func TestRectInsetClamps(t *testing.T) {
	r := R(0, 0, 3, 10).Inset(2)
	if r.W != 0 {
		t.Errorf("Expected width clamped to 0, got %g", r.W)
	}
	if r.H != 6 {
		t.Errorf("Expected height 6, got %g", r.H)
	}
	if r.X != 2 || r.Y != 2 {
		t.Errorf("Expected origin (2,2), got (%g,%g)", r.X, r.Y)
	}
}

func TestRectSliceAndExtent(t *testing.T) {
	r := R(1, 2, 30, 20)

	s := r.Slice(AxisX, 10, 5)
	if s != R(11, 2, 5, 20) {
		t.Errorf("Expected x slice (11,2,5,20), got %v", s)
	}
	s = r.Slice(AxisY, 4, 6)
	if s != R(1, 6, 30, 6) {
		t.Errorf("Expected y slice (1,6,30,6), got %v", s)
	}
	if r.Extent(AxisY) != 20 || r.Origin(AxisX) != 1 {
		t.Errorf("Unexpected extent/origin: %g %g", r.Extent(AxisY), r.Origin(AxisX))
	}
}

func TestRectRound(t *testing.T) {
	got := R(0.4, 0.6, 10.2, 3.3).Round()
	want := R(0, 1, 11, 3)
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestVecAxis(t *testing.T) {
	v := V2(3, 4)
	if v.Get(AxisX) != 3 || v.Get(AxisY) != 4 {
		t.Errorf("Unexpected components %v", v)
	}
	if w := v.With(AxisY, 9); w != V2(3, 9) {
		t.Errorf("Expected (3,9), got %v", w)
	}
	if AxisX.Other() != AxisY || AxisY.Other() != AxisX {
		t.Error("Expected Other to swap axes")
	}
}
