// Package grid2 implements a tiling container backed by a binary split tree.
//
// Leaves (Slots) hold externally owned widgets; internal nodes (Divisions)
// split their rectangle between exactly two children, left/right for
// Horizontal and top/bottom for Vertical, with a separator strip of the
// configured border width between them.
//
// Layout runs in two passes. Weights are aggregated bottom-up: along a
// Division's split axis the children's demands add up, across it the
// larger demand wins. Rectangles are then distributed top-down from the
// window, each child getting its fixed demand plus its share of the
// remaining space.
//
// Separators are hit-tested through a picking scene. Dragging one with the
// resize trigger moves weight between the slots adjacent to it; other
// triggers flip the Division, localize it and flip, or swap its nearest
// neighbours.
//
// The tree round-trips through a compact text format:
//
//	Grid := "g" margin border Node | "e" margin border
//	Node := ("h"|"v") Node Node | "s" xweight yweight usernumber
//
// A Grid is driven from a single goroutine and is not safe for concurrent use.
package grid2
