package mwtree

import (
	"fmt"
)

// a node to check, along with the exclusive value range its elements must fall in (nil bounds are open)
type verifyTask[T any] struct {
	id     nodeID
	parent nodeID
	lo, hi *T
}

// Checks the structural invariants of the entire tree: node capacity and ordering, value uniqueness, child value ranges, parent references, and that every node in the arena is reachable exactly once. Errors wrap ErrInvalidTree.
func (t *Tree[T]) Verify() error {
	if len(t.nodes) == 0 {
		return fmt.Errorf("%w: missing root node", ErrInvalidTree)
	}
	seen := make([]bool, len(t.nodes))
	stack := []verifyTask[T]{{id: rootID, parent: noNode}}
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if task.id < 0 || int(task.id) >= len(t.nodes) {
			return fmt.Errorf("%w: child link out of range: %d", ErrInvalidTree, task.id)
		}
		if seen[task.id] {
			return fmt.Errorf("%w: node %d linked more than once", ErrInvalidTree, task.id)
		}
		seen[task.id] = true

		n := &t.nodes[task.id]
		if n.parent != task.parent {
			return fmt.Errorf("%w: node %d has parent %d, expected %d", ErrInvalidTree, task.id, n.parent, task.parent)
		}
		if task.id != rootID && task.id <= task.parent {
			return fmt.Errorf("%w: node %d allocated before its parent %d", ErrInvalidTree, task.id, task.parent)
		}
		if len(n.elems) > t.maxNodeElems {
			return fmt.Errorf("%w: node %d holds %d elements (max %d)", ErrInvalidTree, task.id, len(n.elems), t.maxNodeElems)
		}
		if len(n.elems) == 0 {
			if task.id != rootID {
				return fmt.Errorf("%w: empty non-root node %d", ErrInvalidTree, task.id)
			}
			continue
		}
		if len(n.elems) < t.maxNodeElems && n.hasChildren() {
			return fmt.Errorf("%w: node %d has children but is not full", ErrInvalidTree, task.id)
		}

		lo := task.lo
		for i := range n.elems {
			e := &n.elems[i]
			if lo != nil && !t.less(*lo, e.value) {
				return fmt.Errorf("%w: node %d: out of order or duplicate value %s", ErrInvalidTree, task.id, t.format(e.value))
			}
			if task.hi != nil && !t.less(e.value, *task.hi) {
				return fmt.Errorf("%w: node %d: value %s outside of subtree range", ErrInvalidTree, task.id, t.format(e.value))
			}
			if e.lower != noNode {
				stack = append(stack, verifyTask[T]{id: e.lower, parent: task.id, lo: lo, hi: &e.value})
			}
			if e.upper != noNode {
				if i != len(n.elems)-1 {
					return fmt.Errorf("%w: node %d: upper child on element %d which is not last", ErrInvalidTree, task.id, i)
				}
				stack = append(stack, verifyTask[T]{id: e.upper, parent: task.id, lo: &e.value, hi: task.hi})
			}
			lo = &e.value
		}
	}
	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: node %d is not reachable from the root", ErrInvalidTree, i)
		}
	}
	return nil
}
