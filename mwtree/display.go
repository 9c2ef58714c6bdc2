package mwtree

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/xlab/treeprint"
)

// Yields values in breadth-first (level) order: the root's values ascending, then each child node in the order its link appears (per element: lower, then upper), and so on down the tree.
//
// This groups values by tree level; it is not the sorted order (see All).
func (t *Tree[T]) LevelOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		queue := []nodeID{rootID}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			for _, e := range t.nodes[id].elems {
				if !yield(e.value) {
					return
				}
				if e.lower != noNode {
					queue = append(queue, e.lower)
				}
				if e.upper != noNode {
					queue = append(queue, e.upper)
				}
			}
		}
	}
}

// Writes the LevelOrder sequence to w, each value rendered with the tree's FormatFunc and separated by a single space. No trailing separator or newline is written.
func (t *Tree[T]) WriteLevelOrder(w io.Writer) error {
	sep := ""
	for v := range t.LevelOrder() {
		if _, err := io.WriteString(w, sep+t.format(v)); err != nil {
			return err
		}
		sep = " "
	}
	return nil
}

func (t *Tree[T]) String() string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = t.WriteLevelOrder(&sb)
	return sb.String()
}

// Renders the node structure of the tree, mostly for debugging: each node is a branch, with its values in order and child nodes nested where their values fall.
func (t *Tree[T]) DebugTree() treeprint.Tree {
	tree := treeprint.NewWithRoot(fmt.Sprintf("tree root (max %d per node)", t.maxNodeElems))
	t.debugNode(tree, rootID)
	return tree
}

func (t *Tree[T]) debugNode(branch treeprint.Tree, id nodeID) {
	for _, e := range t.nodes[id].elems {
		if e.lower != noNode {
			t.debugNode(branch.AddBranch(fmt.Sprintf("node %d", e.lower)), e.lower)
		}
		branch.AddNode(t.format(e.value))
		if e.upper != noNode {
			t.debugNode(branch.AddBranch(fmt.Sprintf("node %d", e.upper)), e.upper)
		}
	}
}
