package mwtree

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct {
	after int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("sink closed")
	}
	w.after--
	return len(p), nil
}

func TestLevelOrder(t *testing.T) {
	assert := assert.New(t)

	var tests = []struct {
		capacity int
		vals     []int
		expected string
	}{
		{capacity: 3, vals: nil, expected: ""},
		{capacity: 3, vals: []int{7}, expected: "7"},
		{capacity: 40, vals: []int{30, 10, 20}, expected: "10 20 30"},
		{capacity: 2, vals: []int{5, 1, 9, 3, 7}, expected: "1 5 3 7 9"},
		// root {2 4}; lower of 2 {1}; lower of 4 {3}; upper of 4 {5 6}
		{capacity: 2, vals: []int{4, 2, 6, 5, 3, 1}, expected: "2 4 1 3 5 6"},
		{capacity: 1, vals: []int{1, 2, 3, 4}, expected: "1 2 3 4"},
	}

	for _, tc := range tests {
		tree := buildTree(t, tc.capacity, tc.vals...)
		var sb strings.Builder
		assert.NoError(tree.WriteLevelOrder(&sb))
		assert.Equal(tc.expected, sb.String())
		assert.Equal(tc.expected, tree.String())
		assert.Equal(len(tc.vals), len(slices.Collect(tree.LevelOrder())))
	}
}

func TestLevelOrderFormat(t *testing.T) {
	assert := assert.New(t)

	tree, err := New(OrderedLess[int], &Options[int]{
		MaxNodeElems: 2,
		Format:       func(v int) string { return fmt.Sprintf("<%d>", v) },
	})
	require.NoError(t, err)
	for _, v := range []int{5, 1, 9} {
		tree.Insert(v)
	}
	assert.Equal("<1> <5> <9>", tree.String())
}

func TestLevelOrderWriteError(t *testing.T) {
	assert := assert.New(t)

	tree := buildTree(t, 2, 5, 1, 9, 3, 7)
	err := tree.WriteLevelOrder(&failingWriter{after: 2})
	assert.EqualError(err, "sink closed")
}

func TestDebugTree(t *testing.T) {
	assert := assert.New(t)

	tree := buildTree(t, 2, 5, 1, 9, 3, 7)
	out := tree.DebugTree().String()
	assert.Contains(out, "tree root (max 2 per node)")
	for _, v := range []string{"1", "3", "5", "7", "9"} {
		assert.Contains(out, v)
	}
	// node 1 (upper of 5) and node 2 (lower of 5)
	assert.Contains(out, "node 1")
	assert.Contains(out, "node 2")
	assert.Less(strings.Index(out, "node 2"), strings.Index(out, "node 1"))
}
