package grid2

import (
	"fmt"

	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/widget"
)

// NodeID is a stable handle to a node in the grid's arena
// IDs of removed nodes are recycled by later inserts
type NodeID int32

// NoNode is the null handle
const NoNode NodeID = -1

// Orientation of a Division's split
type Orientation uint8

const (
	// Horizontal places child 0 left of child 1
	Horizontal Orientation = iota
	// Vertical places child 0 above child 1
	Vertical
)

// Axis returns the axis along which the split divides space
func (o Orientation) Axis() geom.Axis {
	if o == Horizontal {
		return geom.AxisX
	}
	return geom.AxisY
}

// Other returns the opposite orientation
func (o Orientation) Other() Orientation {
	return 1 - o
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "h"
	}
	return "v"
}

// Weights is the demand of a subtree: Fixed cells plus a proportional share
type Weights struct {
	Fixed    geom.Vec2
	Variable geom.Vec2
}

type nodeKind uint8

const (
	kindFree nodeKind = iota
	kindSlot
	kindDivision
)

// node is the arena element; slot and division payloads share the struct
type node struct {
	kind    nodeKind
	parent  NodeID
	index   int8
	visible bool

	// Slot: own area; Division: separator strip
	rect geom.Rect
	// result of the last weight pass, zero when not shown
	weights Weights
	shown   bool

	// slot payload
	content widget.Widget
	tag     int
	weight  geom.Vec2

	// division payload
	orient   Orientation
	children [2]NodeID
	area     geom.Rect
}

// arena owns all nodes; a free list recycles released entries
type arena struct {
	nodes []node
	free  []NodeID
	live  int
}

func (a *arena) alloc(n node) NodeID {
	n.parent = NoNode
	n.index = -1
	n.visible = true
	a.live++
	if k := len(a.free); k > 0 {
		id := a.free[k-1]
		a.free = a.free[:k-1]
		a.nodes[id] = n
		return id
	}
	a.nodes = append(a.nodes, n)
	return NodeID(len(a.nodes) - 1)
}

func (a *arena) newSlot(content widget.Widget, tag int) NodeID {
	return a.alloc(node{kind: kindSlot, content: content, tag: tag, weight: geom.V2(1, 1)})
}

func (a *arena) newDivision(o Orientation) NodeID {
	return a.alloc(node{kind: kindDivision, orient: o, children: [2]NodeID{NoNode, NoNode}})
}

func (a *arena) drop(id NodeID) {
	a.nodes[id] = node{kind: kindFree}
	a.free = append(a.free, id)
	a.live--
}

// at returns the node, panicking on stale or out-of-range handles
func (a *arena) at(id NodeID) *node {
	if id < 0 || int(id) >= len(a.nodes) || a.nodes[id].kind == kindFree {
		panic(fmt.Sprintf("grid2: invalid node %d", id))
	}
	return &a.nodes[id]
}

func (a *arena) slot(id NodeID) *node {
	n := a.at(id)
	if n.kind != kindSlot {
		panic(fmt.Sprintf("grid2: node %d is not a slot", id))
	}
	return n
}

func (a *arena) division(id NodeID) *node {
	n := a.at(id)
	if n.kind != kindDivision {
		panic(fmt.Sprintf("grid2: node %d is not a division", id))
	}
	return n
}

func (a *arena) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(a.nodes) && a.nodes[id].kind != kindFree
}
