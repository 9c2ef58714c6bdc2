package mwtree

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
)

var ErrInvalidCapacity = errors.New("max node elems must be at least 1")

var ErrNilLess = errors.New("ordering function is required")

var ErrInvalidTree = errors.New("invalid tree structure")

// An ordered set of unique values, stored in a multiway search tree.
//
// The zero value is not usable; create trees with New or NewOrdered.
type Tree[T any] struct {
	less         LessFunc[T]
	format       FormatFunc[T]
	logger       *slog.Logger
	maxNodeElems int

	// arena of all nodes. nodes[rootID] is the root, and is the only node which may be empty
	nodes []node[T]
}

// Creates an empty tree ordered by less. If opts is nil, DefaultOptions are used.
func New[T any](less LessFunc[T], opts *Options[T]) (*Tree[T], error) {
	if less == nil {
		return nil, ErrNilLess
	}
	if opts == nil {
		opts = DefaultOptions[T]()
	}
	if opts.MaxNodeElems < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, opts.MaxNodeElems)
	}
	format := opts.Format
	if format == nil {
		format = defaultFormat[T]
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Tree[T]{
		less:         less,
		format:       format,
		logger:       logger.With("system", "mwtree"),
		maxNodeElems: opts.MaxNodeElems,
		nodes:        newArena[T](),
	}, nil
}

// Creates an empty tree of builtin ordered values (ints, floats, strings).
func NewOrdered[T cmp.Ordered](maxNodeElems int) (*Tree[T], error) {
	return New(OrderedLess[T], &Options[T]{MaxNodeElems: maxNodeElems})
}

func (t *Tree[T]) MaxNodeElems() int {
	return t.maxNodeElems
}

func (t *Tree[T]) Empty() bool {
	return len(t.root().elems) == 0
}

// Counts all values in the tree. Not cached: walks every node.
func (t *Tree[T]) Len() int {
	total := 0
	for i := range t.nodes {
		total += len(t.nodes[i].elems)
	}
	return total
}

// Number of nodes in the tree, including the root.
func (t *Tree[T]) NodeCount() int {
	return len(t.nodes)
}

// Number of node levels on the longest root-to-leaf path. An empty tree has depth zero.
func (t *Tree[T]) Depth() int {
	if t.Empty() {
		return 0
	}
	// children are always allocated after their parent, so parents are visited first
	depths := make([]int, len(t.nodes))
	deepest := 0
	for i := range t.nodes {
		d := 1
		if p := t.nodes[i].parent; p != noNode {
			d = depths[p] + 1
		}
		depths[i] = d
		if d > deepest {
			deepest = d
		}
	}
	return deepest
}

// Drops every value, leaving an empty tree with the same capacity and ordering.
func (t *Tree[T]) Clear() {
	t.nodes = newArena[T]()
	structuralOps.WithLabelValues("clear").Inc()
}

func (t *Tree[T]) root() *node[T] {
	return &t.nodes[rootID]
}

// Appends a new, empty node to the arena. Any pointers into t.nodes are invalidated.
func (t *Tree[T]) allocNode(parent nodeID) nodeID {
	t.nodes = append(t.nodes, node[T]{parent: parent})
	id := nodeID(len(t.nodes) - 1)
	nodesAllocated.Inc()
	t.logger.Debug("allocated node", "node", id, "parent", parent)
	return id
}
