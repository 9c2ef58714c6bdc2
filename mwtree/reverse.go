package mwtree

import (
	"iter"
)

// Walks values in descending order. Next moves towards the minimum, and the sequence ends at the underlying cursor's REnd position.
type ReverseCursor[T any] struct {
	base *Cursor[T]
}

// Positioned at the maximum value (REnd() for an empty tree).
func (t *Tree[T]) RBegin() *ReverseCursor[T] {
	c := t.Last()
	if c.IsEnd() {
		c.toREnd()
	}
	return &ReverseCursor[T]{base: c}
}

// One before the minimum value.
func (t *Tree[T]) REnd() *ReverseCursor[T] {
	c := &Cursor[T]{tree: t}
	c.toREnd()
	return &ReverseCursor[T]{base: c}
}

func (r *ReverseCursor[T]) Next() {
	r.base.Prev()
}

func (r *ReverseCursor[T]) Prev() {
	r.base.Next()
}

func (r *ReverseCursor[T]) Value() T {
	return r.base.Value()
}

func (r *ReverseCursor[T]) Valid() bool {
	return r.base.Valid()
}

// True once the cursor has moved past the minimum value.
func (r *ReverseCursor[T]) IsEnd() bool {
	return r.base.IsREnd()
}

func (r *ReverseCursor[T]) Equal(other *ReverseCursor[T]) bool {
	return r.base.Equal(other.base)
}

// Returns an independent forward cursor at the same position.
func (r *ReverseCursor[T]) Base() *Cursor[T] {
	return r.base.Clone()
}

func (r *ReverseCursor[T]) Clone() *ReverseCursor[T] {
	return &ReverseCursor[T]{base: r.base.Clone()}
}

// Yields every value in ascending order. The tree must not be modified during iteration.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := t.Begin(); !c.IsEnd(); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Yields every value in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := t.RBegin(); !r.IsEnd(); r.Next() {
			if !yield(r.Value()) {
				return
			}
		}
	}
}
