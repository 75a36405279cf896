package grid2

// LocalizeDivision re-associates the chain of same-orientation Divisions
// around div so that div's children become exactly the two subtrees adjacent
// across its separator. Leaf order, weights and div's NodeID are preserved;
// the other chain Divisions are reused above div.
func (g *Grid) LocalizeDivision(div NodeID) {
	o := g.division(div).orient

	var pool []NodeID
	left := g.flattenChain(g.Child(div, 0), o, nil, &pool)
	right := g.flattenChain(g.Child(div, 1), o, nil, &pool)
	if len(pool) == 0 {
		return
	}

	g.CancelGesture()

	parent, index := g.detach(div)
	for _, id := range append(append([]NodeID(nil), left...), right...) {
		if p := g.nodes[id].parent; p != NoNode {
			g.release(p, int(g.nodes[id].index))
		}
	}
	g.nodes[div].children = [2]NodeID{NoNode, NoNode}
	for _, id := range pool {
		g.nodes[id].children = [2]NodeID{NoNode, NoNode}
		g.nodes[id].parent = NoNode
		g.nodes[id].index = -1
	}

	g.set(div, 0, left[len(left)-1])
	g.set(div, 1, right[0])
	cur := div

	for _, r := range right[1:] {
		p := pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		g.set(p, 0, cur)
		g.set(p, 1, r)
		cur = p
	}
	for i := len(left) - 2; i >= 0; i-- {
		p := pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		g.set(p, 0, left[i])
		g.set(p, 1, cur)
		cur = p
	}

	g.attach(cur, parent, index)
	g.dirty = true
	g.logger.Printf("grid2: localize division %d", div)
	g.notify(NoticeLocalize, div)
}

// flattenChain lists, in order, the maximal subtrees under id that are not
// Divisions of orientation o; the Divisions walked through go to pool
func (g *Grid) flattenChain(id NodeID, o Orientation, out []NodeID, pool *[]NodeID) []NodeID {
	n := g.at(id)
	if n.kind == kindDivision && n.orient == o {
		*pool = append(*pool, id)
		children := n.children
		out = g.flattenChain(children[0], o, out, pool)
		return g.flattenChain(children[1], o, out, pool)
	}
	return append(out, id)
}

// IsLocal reports whether neither child of div continues its chain
func (g *Grid) IsLocal(div NodeID) bool {
	d := g.division(div)
	for _, c := range d.children {
		if n := g.at(c); n.kind == kindDivision && n.orient == d.orient {
			return false
		}
	}
	return true
}

// Flip toggles div's orientation; an active drag is cancelled
func (g *Grid) Flip(div NodeID) {
	d := g.division(div)
	g.CancelGesture()
	d.orient = d.orient.Other()
	g.dirty = true
	g.logger.Printf("grid2: flip division %d to %s", div, d.orient)
	g.notify(NoticeFlip, div)
}

// FlipLocal localizes div and then flips it, so only the two regions
// adjacent to its separator change arrangement
func (g *Grid) FlipLocal(div NodeID) {
	g.LocalizeDivision(div)
	g.Flip(div)
}

// SwapNeighbors exchanges the slot nearest to div's separator on each side.
// Where a side is split across div's orientation, its first (left or top)
// slot is the one swapped.
// Slots keep their NodeIDs, content, tags and weights; only their places
// in the tree change.
func (g *Grid) SwapNeighbors(div NodeID) {
	d := g.division(div)
	g.CancelGesture()
	a := g.nearestSlot(d.children[0], d.orient, 0)
	b := g.nearestSlot(d.children[1], d.orient, 1)

	pa, ia := g.nodes[a].parent, int(g.nodes[a].index)
	pb, ib := g.nodes[b].parent, int(g.nodes[b].index)
	g.release(pa, ia)
	g.release(pb, ib)
	g.set(pa, ia, b)
	g.set(pb, ib, a)

	g.dirty = true
	g.logger.Printf("grid2: swap slots %d and %d", a, b)
	g.notify(NoticeSwap, div)
}

// nearestSlot descends toward the separator of an o Division: the inner
// child along same-orientation Divisions. Across a perpendicular Division
// both children touch the separator equally, so child 0 (left or top) is
// taken as the convention.
func (g *Grid) nearestSlot(id NodeID, o Orientation, side int) NodeID {
	for {
		n := g.at(id)
		if n.kind == kindSlot {
			return id
		}
		if n.orient == o {
			id = n.children[1-side]
		} else {
			id = n.children[0]
		}
	}
}
