package valueio

import (
	"errors"
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bluesky-social/mwtree/mwtree"
)

var ErrCollateKind = errors.New("collation only applies to string values")

// Returns the ordering for values of the given kind. If collateTag is set (a BCP-47 language tag, eg "de" or "sv"), strings are ordered by the locale's collation rules instead of byte-wise.
//
// Strings which the collation considers identical are treated as equal, so only the first one inserted is kept.
func Ordering(kind Kind, collateTag string) (mwtree.LessFunc[Value], error) {
	if _, ok := kindNames[kind]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if collateTag == "" {
		return Less, nil
	}
	if kind != KindString {
		return nil, fmt.Errorf("%w (type is %s)", ErrCollateKind, kind)
	}
	tag, err := language.Parse(collateTag)
	if err != nil {
		return nil, fmt.Errorf("invalid collation language %q: %w", collateTag, err)
	}
	col := collate.New(tag)
	return func(a, b Value) bool {
		return col.CompareString(a.Str, b.Str) < 0
	}, nil
}
