package mwtree

import (
	"slices"
	"sort"
)

// Index of a node in the tree's arena.
type nodeID int

const (
	// marks an absent child link, or the parent of the root
	noNode nodeID = -1
	// the root is always the first node in the arena
	rootID nodeID = 0
)

// A node holds a sorted list of elements. Child links hang off individual elements: see package docs for which ranges of values they hold.
type node[T any] struct {
	// back-reference for structural lookups (cursor reconstruction, verification). never an ownership link
	parent nodeID
	elems  []element[T]
}

type element[T any] struct {
	value T
	lower nodeID
	upper nodeID
}

func newElement[T any](v T) element[T] {
	return element[T]{
		value: v,
		lower: noNode,
		upper: noNode,
	}
}

func newArena[T any]() []node[T] {
	return []node[T]{{parent: noNode}}
}

// Finds the index of the first element which is not less than v (a "lower bound"), and whether that element is equal to v.
//
// If v is greater than every element, the returned index is len(n.elems).
func (n *node[T]) lowerBound(v T, less LessFunc[T]) (int, bool) {
	idx := sort.Search(len(n.elems), func(i int) bool {
		return !less(n.elems[i].value, v)
	})
	if idx < len(n.elems) && !less(v, n.elems[idx].value) {
		return idx, true
	}
	return idx, false
}

// Returns the child link for child index c. Indexes below the element count refer to the lower child of that element; the index equal to the element count refers to the upper child of the last element.
func (n *node[T]) child(c int) nodeID {
	if len(n.elems) == 0 {
		return noNode
	}
	if c < len(n.elems) {
		return n.elems[c].lower
	}
	return n.elems[len(n.elems)-1].upper
}

func (n *node[T]) setChild(c int, id nodeID) {
	if c < len(n.elems) {
		n.elems[c].lower = id
		return
	}
	n.elems[len(n.elems)-1].upper = id
}

func (n *node[T]) hasChildren() bool {
	for _, e := range n.elems {
		if e.lower != noNode || e.upper != noNode {
			return true
		}
	}
	return false
}

func (n *node[T]) insertAt(idx int, v T) {
	n.elems = slices.Insert(n.elems, idx, newElement(v))
}

// creates an independent copy of the arena. links are indices, so they remain valid in the copy without remapping
func cloneArena[T any](src []node[T]) []node[T] {
	out := make([]node[T], len(src))
	for i, n := range src {
		out[i] = node[T]{
			parent: n.parent,
			elems:  slices.Clone(n.elems),
		}
	}
	return out
}
