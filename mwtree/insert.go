package mwtree

// Adds v to the tree, if an equal value is not already present.
//
// Returns a cursor positioned at v (either the new element, or the existing equal one) and true if the tree grew. Inserting a new value invalidates any previously obtained cursors.
func (t *Tree[T]) Insert(v T) (*Cursor[T], bool) {
	id := rootID
	for {
		n := &t.nodes[id]
		idx, found := n.lowerBound(v, t.less)
		if found {
			insertsTotal.WithLabelValues("duplicate").Inc()
			return t.cursorAt(id, idx), false
		}
		// nodes only get children once full, so a node with room is always the right place
		if len(n.elems) < t.maxNodeElems {
			n.insertAt(idx, v)
			insertsTotal.WithLabelValues("inserted").Inc()
			return t.cursorAt(id, idx), true
		}

		// full node: descend into the lower child of the first greater element, or the upper child of the last element when v is greater than all of them
		next := n.child(idx)
		if next == noNode {
			next = t.allocNode(id)
			// allocNode may have moved the arena
			t.nodes[id].setChild(idx, next)
		}
		id = next
	}
}

// Returns a cursor positioned at the value equal to v, or End() if there is none.
func (t *Tree[T]) Find(v T) *Cursor[T] {
	id, idx, ok := t.search(v)
	if !ok {
		findsTotal.WithLabelValues("miss").Inc()
		return t.End()
	}
	findsTotal.WithLabelValues("hit").Inc()
	return t.cursorAt(id, idx)
}

func (t *Tree[T]) Contains(v T) bool {
	_, _, ok := t.search(v)
	return ok
}

// Same descent as Insert, without any mutation.
func (t *Tree[T]) search(v T) (nodeID, int, bool) {
	id := rootID
	for id != noNode {
		n := &t.nodes[id]
		idx, found := n.lowerBound(v, t.less)
		if found {
			return id, idx, true
		}
		id = n.child(idx)
	}
	return noNode, 0, false
}
