package scene

import (
	"testing"

	"github.com/lixenwraith/tilekit/geom"
)

func TestPickTopmost(t *testing.T) {
	var s Scene[string]
	s.Add(geom.R(0, 0, 10, 10), "back")
	s.Add(geom.R(4, 0, 2, 10), "strip")

	tests := []struct {
		name   string
		p      geom.Vec2
		want   string
		wantOk bool
	}{
		{"under strip", geom.V2(5, 5), "strip", true},
		{"back only", geom.V2(1, 1), "back", true},
		{"strip far edge exclusive", geom.V2(6, 5), "back", true},
		{"outside", geom.V2(10, 5), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Pick(tt.p)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("Expected (%q, %v), got (%q, %v)", tt.want, tt.wantOk, got, ok)
			}
		})
	}
}

func TestReset(t *testing.T) {
	var s Scene[int]
	s.Add(geom.R(0, 0, 1, 1), 7)
	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Expected empty scene, got %d entries", s.Len())
	}
	if _, ok := s.Pick(geom.V2(0, 0)); ok {
		t.Error("Expected no hit after reset")
	}
}
