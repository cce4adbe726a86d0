package bintree

import "golang.org/x/exp/constraints"

// Location tags where a searched value sits relative to the node of a
// FindResult.
type Location uint8

const (
	// NotFound: no node holds the value. The result node is nil.
	NotFound Location = iota
	// AtSelf: the result node holds the value.
	AtSelf
	// AtLeftChild: the result node is the parent, the value is its left child.
	AtLeftChild
	// AtRightChild: the result node is the parent, the value is its right child.
	AtRightChild
)

func (loc Location) String() string {
	switch loc {
	case AtSelf:
		return "AtSelf"
	case AtLeftChild:
		return "AtLeftChild"
	case AtRightChild:
		return "AtRightChild"
	}
	return "NotFound"
}

// FindResult is the outcome of Tree.Find.
//
// Node points into the tree and is valid only until the next structural
// mutation of the tree. For locations AtLeftChild and AtRightChild, Node is
// the parent of the node holding the value.
type FindResult[T constraints.Ordered] struct {
	Node     *Node[T]
	Location Location
}

// Found is a predicate: has the value been located?
func (r FindResult[T]) Found() bool {
	return r.Location != NotFound
}

// Target returns the node holding the searched value, resolving the parent
// indirection of AtLeftChild and AtRightChild. Returns nil if not found.
func (r FindResult[T]) Target() *Node[T] {
	switch r.Location {
	case AtSelf:
		return r.Node
	case AtLeftChild:
		return r.Node.left
	case AtRightChild:
		return r.Node.right
	}
	return nil
}
