package grid2

import "fmt"

// split wraps id as child 0 of a new Division that takes id's former place
func (g *Grid) split(id NodeID, o Orientation) NodeID {
	n := g.at(id)
	parent, index := n.parent, int(n.index)
	wasRoot := g.root == id

	if parent != NoNode {
		g.release(parent, index)
	} else if wasRoot {
		g.root = NoNode
	}

	div := g.newDivision(o)
	g.set(div, 0, id)

	if parent != NoNode {
		g.set(parent, index, div)
	} else if wasRoot {
		g.root = div
	}
	return div
}

// set installs id as child index of div, destroying the previous occupant
func (g *Grid) set(div NodeID, index int, id NodeID) {
	d := g.division(div)
	if old := d.children[index]; old != NoNode {
		d.children[index] = NoNode
		g.destroy(old)
	}
	if id == NoNode {
		return
	}
	c := g.at(id)
	if c.parent != NoNode || g.root == id {
		panic(fmt.Sprintf("grid2: node %d is already attached", id))
	}
	g.nodes[div].children[index] = id
	c.parent = div
	c.index = int8(index)
}

// release detaches child index of div without destroying it
func (g *Grid) release(div NodeID, index int) NodeID {
	d := g.division(div)
	id := d.children[index]
	d.children[index] = NoNode
	if id != NoNode {
		c := g.at(id)
		c.parent = NoNode
		c.index = -1
	}
	return id
}

// destroy frees id and its whole subtree
func (g *Grid) destroy(id NodeID) {
	n := g.at(id)
	if n.kind == kindDivision {
		children := n.children
		for _, c := range children {
			if c != NoNode {
				g.destroy(c)
			}
		}
	}
	g.drop(id)
}

// detach removes id from wherever it is attached and returns its old place
func (g *Grid) detach(id NodeID) (parent NodeID, index int) {
	n := g.at(id)
	parent, index = n.parent, int(n.index)
	if parent != NoNode {
		g.release(parent, index)
	} else if g.root == id {
		g.root = NoNode
	}
	return parent, index
}

// attach installs a detached id at a place returned by detach
func (g *Grid) attach(id NodeID, parent NodeID, index int) {
	if parent != NoNode {
		g.set(parent, index, id)
		return
	}
	if g.root != NoNode {
		panic("grid2: root is occupied")
	}
	g.root = id
}

// Other returns the sibling of child within div; panics if child is not
// one of div's children
func (g *Grid) Other(div, child NodeID) NodeID {
	d := g.division(div)
	switch child {
	case d.children[0]:
		return d.children[1]
	case d.children[1]:
		return d.children[0]
	}
	panic(fmt.Sprintf("grid2: node %d is not a child of %d", child, div))
}
