package valueio

import (
	"github.com/bluesky-social/mwtree/mwtree"
)

// Inserts values into a new tree, in order. Returns the tree and the number of values which were already present (and so were skipped).
//
// If opts does not set a Format, values render with Value.String.
func Build(values []Value, less mwtree.LessFunc[Value], opts *mwtree.Options[Value]) (*mwtree.Tree[Value], int, error) {
	if opts == nil {
		opts = mwtree.DefaultOptions[Value]()
	}
	if opts.Format == nil {
		withFormat := *opts
		withFormat.Format = Value.String
		opts = &withFormat
	}
	tree, err := mwtree.New(less, opts)
	if err != nil {
		return nil, 0, err
	}
	dups := 0
	for _, v := range values {
		if _, inserted := tree.Insert(v); !inserted {
			dups++
		}
	}
	return tree, dups, nil
}
