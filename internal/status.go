package internal

// The sweep status: the boundary edges currently crossing the sweep line,
// ordered left to right by where they cross it.
//
// Keys are never stored. Every comparison recomputes the x intersection at the
// tree's current sweep height, which is fine because edges in the status never
// cross each other, so their relative order cannot change while they are in
// the tree even though their keys do.
//
// The tree is a plain unbalanced binary search tree. A pathological vertex
// order degrades it to a list. That's acceptable at the polygon sizes this is
// meant for.

type StatusTree struct {
	root   *statusNode
	mesh   *Mesh
	sweepY float64
	size   int
}

type statusNode struct {
	edge                HalfEdgeID
	left, right, parent *statusNode
}

func NewStatusTree(mesh *Mesh) *StatusTree {
	return &StatusTree{mesh: mesh}
}

func (t *StatusTree) SetSweepLineY(y float64) {
	t.sweepY = y
}

func (t *StatusTree) SweepLineY() float64 {
	return t.sweepY
}

func (t *StatusTree) Len() int {
	return t.size
}

// Where the edge crosses the sweep line. Horizontal edges report their origin.
func (t *StatusTree) XIntersection(e HalfEdgeID) float64 {
	start, end := t.mesh.Segment(e)
	if start.Y == end.Y {
		return start.X
	}
	slope := (end.X - start.X) / (end.Y - start.Y)
	return start.X + slope*(t.sweepY-start.Y)
}

func (t *StatusTree) compare(a, b HalfEdgeID) int {
	xa := t.XIntersection(a)
	xb := t.XIntersection(b)
	switch {
	case xa < xb:
		return -1
	case xa > xb:
		return 1
	}
	return 0
}

func (t *StatusTree) Insert(e HalfEdgeID) {
	t.size++
	node := &statusNode{edge: e}
	if t.root == nil {
		t.root = node
		return
	}
	cur := t.root
	for {
		if t.compare(e, cur.edge) < 0 {
			if cur.left == nil {
				cur.left = node
				break
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = node
				break
			}
			cur = cur.right
		}
	}
	node.parent = cur
}

// Remove the edge. Returns false if it wasn't in the tree.
func (t *StatusTree) Delete(e HalfEdgeID) bool {
	node := t.search(t.root, e)
	if node == nil {
		return false
	}
	t.deleteNode(node)
	t.size--
	return true
}

func (t *StatusTree) Contains(e HalfEdgeID) bool {
	return t.search(t.root, e) != nil
}

func (t *StatusTree) search(node *statusNode, e HalfEdgeID) *statusNode {
	for node != nil {
		if node.edge == e {
			return node
		}
		switch t.compare(e, node.edge) {
		case -1:
			node = node.left
		case 1:
			node = node.right
		default:
			// Equal keys happen when edges meet at the sweep line. Insertion sends
			// ties right, but look both ways in case rounding disagreed.
			if found := t.search(node.right, e); found != nil {
				return found
			}
			node = node.left
		}
	}
	return nil
}

func (t *StatusTree) deleteNode(node *statusNode) {
	if node.left != nil && node.right != nil {
		// Two children: take the in-order successor's edge, then remove the
		// successor, which has no left child.
		successor := node.right
		for successor.left != nil {
			successor = successor.left
		}
		node.edge = successor.edge
		t.deleteNode(successor)
		return
	}
	child := node.left
	if child == nil {
		child = node.right
	}
	t.replace(node, child)
}

func (t *StatusTree) replace(node, child *statusNode) {
	if node.parent == nil {
		t.root = child
	} else if node == node.parent.left {
		node.parent.left = child
	} else {
		node.parent.right = child
	}
	if child != nil {
		child.parent = node.parent
	}
}

// The edge immediately left of v at the current sweep height, or NoHalfEdge if
// nothing is left of it.
func (t *StatusTree) FindLeftNeighbor(v VertexID) HalfEdgeID {
	x := t.mesh.Point(v).X
	candidate := NoHalfEdge
	node := t.root
	for node != nil {
		if t.XIntersection(node.edge) < x {
			candidate = node.edge
			node = node.right
		} else {
			node = node.left
		}
	}
	return candidate
}

// Edges left to right.
func (t *StatusTree) InOrder() []HalfEdgeID {
	edges := make([]HalfEdgeID, 0, t.size)
	var walk func(node *statusNode)
	walk = func(node *statusNode) {
		if node == nil {
			return
		}
		walk(node.left)
		edges = append(edges, node.edge)
		walk(node.right)
	}
	walk(t.root)
	return edges
}
