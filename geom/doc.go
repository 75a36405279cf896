// Package geom provides the float-valued 2D vector and rectangle types used by
// layout, picking and drawing.
//
// Coordinates are screen space: X grows right, Y grows down. Rect is
// half-open, a point on the right or bottom edge is outside.
package geom
