package mwtree

import (
	"slices"
)

// Bidirectional position in the ascending sequence of values in a Tree.
//
// Cursors are invalidated by any Insert which adds a value. Assigning a *Cursor shares it; use Clone for an independent copy.
type Cursor[T any] struct {
	tree *Tree[T]
	// path from the root down to the current element. for every frame except the last, slot is the child index which was descended through (see node.child); for the last frame it is the element index.
	//
	// "end" is a single root frame with slot == len(root.elems); "rend" is a single root frame with slot == -1
	path []frame
}

type frame struct {
	node nodeID
	slot int
}

// Positioned at the minimum value, or End() for an empty tree.
func (t *Tree[T]) Begin() *Cursor[T] {
	c := &Cursor[T]{tree: t}
	c.first()
	return c
}

// One past the maximum value.
func (t *Tree[T]) End() *Cursor[T] {
	c := &Cursor[T]{tree: t}
	c.toEnd()
	return c
}

// Positioned at the maximum value, or End() for an empty tree.
func (t *Tree[T]) Last() *Cursor[T] {
	if t.Empty() {
		return t.End()
	}
	return &Cursor[T]{
		tree: t,
		path: t.descendLast(nil, rootID),
	}
}

// Builds a cursor for an element slot in any node, by climbing parent references to recover the path from the root.
func (t *Tree[T]) cursorAt(id nodeID, slot int) *Cursor[T] {
	path := []frame{{node: id, slot: slot}}
	for child := id; t.nodes[child].parent != noNode; {
		parent := t.nodes[child].parent
		// every value in a child falls in the same gap of the parent, so the first one locates the child index
		c, _ := t.nodes[parent].lowerBound(t.nodes[child].elems[0].value, t.less)
		path = append(path, frame{node: parent, slot: c})
		child = parent
	}
	slices.Reverse(path)
	return &Cursor[T]{tree: t, path: path}
}

// Appends frames from node id down to its minimum value.
func (t *Tree[T]) descendFirst(path []frame, id nodeID) []frame {
	for {
		path = append(path, frame{node: id, slot: 0})
		child := t.nodes[id].elems[0].lower
		if child == noNode {
			return path
		}
		id = child
	}
}

// Appends frames from node id down to its maximum value.
func (t *Tree[T]) descendLast(path []frame, id nodeID) []frame {
	for {
		n := &t.nodes[id]
		last := len(n.elems) - 1
		child := n.elems[last].upper
		if child == noNode {
			return append(path, frame{node: id, slot: last})
		}
		path = append(path, frame{node: id, slot: last + 1})
		id = child
	}
}

func (c *Cursor[T]) first() {
	if c.tree.Empty() {
		c.toEnd()
		return
	}
	c.path = c.tree.descendFirst(c.path[:0], rootID)
}

func (c *Cursor[T]) toEnd() {
	c.path = append(c.path[:0], frame{node: rootID, slot: len(c.tree.root().elems)})
}

func (c *Cursor[T]) toREnd() {
	c.path = append(c.path[:0], frame{node: rootID, slot: -1})
}

func (c *Cursor[T]) top() *frame {
	return &c.path[len(c.path)-1]
}

func (c *Cursor[T]) IsEnd() bool {
	return len(c.path) == 1 && c.path[0].slot == len(c.tree.root().elems)
}

func (c *Cursor[T]) IsREnd() bool {
	return len(c.path) == 1 && c.path[0].slot < 0
}

// True if the cursor is positioned at a value (not End or REnd).
func (c *Cursor[T]) Valid() bool {
	return c != nil && c.tree != nil && len(c.path) > 0 && !c.IsEnd() && !c.IsREnd()
}

// Returns the current value. Calling Value at End or REnd panics.
func (c *Cursor[T]) Value() T {
	f := c.top()
	return c.tree.nodes[f.node].elems[f.slot].value
}

// Reports whether both cursors refer to the same position of the same tree.
func (c *Cursor[T]) Equal(other *Cursor[T]) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.tree != other.tree || len(c.path) != len(other.path) {
		return false
	}
	// the node and slot of the final frame determine the rest of the path
	return *c.top() == *other.top()
}

func (c *Cursor[T]) Clone() *Cursor[T] {
	return &Cursor[T]{
		tree: c.tree,
		path: slices.Clone(c.path),
	}
}

// Advances to the next greater value, or to End after the maximum. At End this is a no-op; from REnd it moves to the minimum.
func (c *Cursor[T]) Next() {
	if c.IsEnd() {
		return
	}
	if c.IsREnd() {
		c.first()
		return
	}
	t := c.tree
	f := c.top()
	n := &t.nodes[f.node]

	if next := f.slot + 1; next < len(n.elems) {
		// values between this element and the next live in the next element's lower child
		f.slot = next
		if child := n.elems[next].lower; child != noNode {
			c.path = t.descendFirst(c.path, child)
		}
		return
	}

	// elements of this node are exhausted; continue into the upper child, if any
	if child := n.elems[len(n.elems)-1].upper; child != noNode {
		f.slot = len(n.elems)
		c.path = t.descendFirst(c.path, child)
		return
	}

	// otherwise climb until an ancestor has an element after the child we came out of
	for len(c.path) > 1 {
		c.path = c.path[:len(c.path)-1]
		f = c.top()
		if f.slot < len(t.nodes[f.node].elems) {
			// came out of the lower child of this element
			return
		}
	}
	c.toEnd()
}

// Retreats to the next smaller value, or to REnd before the minimum. At REnd this is a no-op; from End it moves to the maximum.
func (c *Cursor[T]) Prev() {
	if c.IsREnd() {
		return
	}
	t := c.tree
	if c.IsEnd() {
		if t.Empty() {
			c.toREnd()
			return
		}
		c.path = t.descendLast(c.path[:0], rootID)
		return
	}
	f := c.top()
	n := &t.nodes[f.node]

	// the lower child holds everything between the previous element and this one. the slot already names that child
	if child := n.elems[f.slot].lower; child != noNode {
		c.path = t.descendLast(c.path, child)
		return
	}
	if f.slot > 0 {
		f.slot--
		return
	}

	for len(c.path) > 1 {
		c.path = c.path[:len(c.path)-1]
		f = c.top()
		// coming out of child index k, the previous value is element k-1 (for the upper child, the last element)
		if f.slot > 0 {
			f.slot--
			return
		}
	}
	c.toREnd()
}
