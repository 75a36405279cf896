// Package scene is an invisible picking scene: tagged rectangles queried
// by point, topmost first
package scene

import "github.com/lixenwraith/tilekit/geom"

// entry is one hit-testable rectangle
type entry[T any] struct {
	rect geom.Rect
	tag  T
}

// Scene holds entries in insertion order; later entries are on top
type Scene[T any] struct {
	entries []entry[T]
}

// Add appends a rectangle above every existing one
func (s *Scene[T]) Add(r geom.Rect, tag T) {
	s.entries = append(s.entries, entry[T]{rect: r, tag: tag})
}

// Reset drops all entries, keeping capacity
func (s *Scene[T]) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Len returns number of entries
func (s *Scene[T]) Len() int {
	return len(s.entries)
}

// Pick returns the tag of the topmost rectangle containing p
func (s *Scene[T]) Pick(p geom.Vec2) (T, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].rect.Contains(p) {
			return s.entries[i].tag, true
		}
	}
	var zero T
	return zero, false
}
