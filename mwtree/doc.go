/*
Implementation of an ordered, multiway, in-memory search tree, with a bidirectional cursor over its values.

## Terminology

tree: the overall container. owns every node, and holds the per-node capacity ("max node elems"), which is fixed when the tree is created

node: holds up to "max node elems" elements, always sorted and unique. every node except the root has a parent node, and is never empty

element: a single stored value, plus two optional child links. the "lower" child of an element holds values between the previous element (if any) and this element. the "upper" child is only ever set on the last element of a node, and holds values greater than every element in the node. a node with m elements thus partitions the value space into m+1 subtrees

cursor: a position in the ascending sequence of all values in the tree. "end" is one past the maximum, "rend" is one before the minimum

## Tricky Bits

Values are only ever added to a node which has spare capacity. Once a node is full it never changes again, and new values descend into (lazily created) child nodes. There is no rebalancing, and no deletion, so some insertion orders (eg, ascending values) produce long chains of nodes.

Nodes are stored in an arena (slice) owned by the tree, and refer to each other (children and parent) by index. Copying a tree copies the arena; moving a tree hands over the arena in constant time.

Cursors hold the full path from the root down to the current element. Inserting a new value can shift element slots within a node, so any insert invalidates outstanding cursors.

The tree is not safe for concurrent use.
*/
package mwtree
