package mwtree

import (
	"cmp"
	"fmt"
	"log/slog"
)

// Number of elements each node may hold when no capacity is configured.
const DefaultMaxNodeElems = 40

// Reports whether a sorts strictly before b. Must be a strict weak ordering; two values are considered equal when neither is less than the other.
type LessFunc[T any] func(a, b T) bool

// Renders a single value for display (eg, WriteLevelOrder).
type FormatFunc[T any] func(v T) string

type Options[T any] struct {
	// maximum number of elements stored directly in any one node. must be at least 1
	MaxNodeElems int
	// optional; defaults to fmt.Sprint
	Format FormatFunc[T]
	// optional; defaults to slog.Default()
	Logger *slog.Logger
}

func DefaultOptions[T any]() *Options[T] {
	return &Options[T]{
		MaxNodeElems: DefaultMaxNodeElems,
	}
}

// Ordering for any of the builtin ordered types.
func OrderedLess[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

func defaultFormat[T any](v T) string {
	return fmt.Sprint(v)
}
