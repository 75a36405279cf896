package grid2

// NodeIterator walks a grid in pre-order: a Division, then child 0's
// subtree, then child 1's. The grid must not be mutated while iterating.
type NodeIterator struct {
	g     *Grid
	stack []NodeID
}

// Iterator returns a pre-order iterator starting at the root
func (g *Grid) Iterator() *NodeIterator {
	return g.IteratorAt(g.root)
}

// IteratorAt returns a pre-order iterator over id's subtree
func (g *Grid) IteratorAt(id NodeID) *NodeIterator {
	it := &NodeIterator{g: g}
	if id != NoNode {
		it.stack = append(it.stack, id)
	}
	return it
}

// Next returns the next node, or NoNode when done
func (it *NodeIterator) Next() NodeID {
	k := len(it.stack)
	if k == 0 {
		return NoNode
	}
	id := it.stack[k-1]
	it.stack = it.stack[:k-1]
	if n := it.g.at(id); n.kind == kindDivision {
		it.stack = append(it.stack, n.children[1], n.children[0])
	}
	return id
}

// Walk calls fn for each node in pre-order; returning false from fn skips
// that node's children
func (g *Grid) Walk(fn func(NodeID) bool) {
	g.walk(g.root, fn)
}

func (g *Grid) walk(id NodeID, fn func(NodeID) bool) {
	if id == NoNode || !fn(id) {
		return
	}
	if n := g.at(id); n.kind == kindDivision {
		children := n.children
		g.walk(children[0], fn)
		g.walk(children[1], fn)
	}
}

// Slots returns all slots in leaf order
func (g *Grid) Slots() []NodeID {
	var ids []NodeID
	for it := g.Iterator(); ; {
		id := it.Next()
		if id == NoNode {
			return ids
		}
		if g.nodes[id].kind == kindSlot {
			ids = append(ids, id)
		}
	}
}
