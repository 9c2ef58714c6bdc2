package mwtree

// Returns a deep copy of the tree: same capacity, ordering and values, sharing no nodes with t. Values themselves are copied by assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	out := *t
	out.nodes = cloneArena(t.nodes)
	structuralOps.WithLabelValues("copy").Inc()
	return &out
}

// Replaces the contents (and capacity and ordering) of t with a deep copy of src. Copying a tree onto itself is a no-op.
func (t *Tree[T]) CopyFrom(src *Tree[T]) {
	if t == src {
		return
	}
	*t = *src
	t.nodes = cloneArena(src.nodes)
	structuralOps.WithLabelValues("copy").Inc()
}

// Hands the contents of t over to a new tree in constant time. t is left empty, with the same capacity and ordering, and remains usable.
func (t *Tree[T]) Move() *Tree[T] {
	out := *t
	t.nodes = newArena[T]()
	structuralOps.WithLabelValues("move").Inc()
	return &out
}

// Replaces the contents (and capacity and ordering) of t with those of src, in constant time. src is left empty and usable. Moving a tree onto itself is a no-op.
func (t *Tree[T]) MoveFrom(src *Tree[T]) {
	if t == src {
		return
	}
	*t = *src
	src.nodes = newArena[T]()
	structuralOps.WithLabelValues("move").Inc()
}
