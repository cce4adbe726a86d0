package bintree

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Node is a node of a binary search tree. A node owns its two children; it
// does not carry a link to its parent.
type Node[T constraints.Ordered] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

func newNode[T constraints.Ordered](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the value stored in node n.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// IsLeaf is a predicate: does n have no children?
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("Node(%v)", n.value)
}

// side tells which link of its parent a node hangs from. The tree root has
// no parent.
type side uint8

const (
	asRoot side = iota
	asLeft
	asRight
)

// insert places value into the subtree rooted at n. It returns false if the
// value is already present, in which case nothing changes.
func (n *Node[T]) insert(value T) bool {
	switch c := cmp.Compare(value, n.value); {
	case c == 0:
		return false
	case c < 0:
		if n.left == nil {
			n.left = newNode(value)
			return true
		}
		return n.left.insert(value)
	default:
		if n.right == nil {
			n.right = newNode(value)
			return true
		}
		return n.right.insert(value)
	}
}

// find locates value in the subtree rooted at n. A match at n itself is
// reported as AtSelf. A match in a direct child is reported with n as the
// result node, tagged with the side of the child. Deeper results are passed
// through unchanged.
func (n *Node[T]) find(value T) FindResult[T] {
	c := cmp.Compare(value, n.value)
	if c == 0 {
		return FindResult[T]{Node: n, Location: AtSelf}
	}
	child, loc := n.right, AtRightChild
	if c < 0 {
		child, loc = n.left, AtLeftChild
	}
	if child == nil {
		return FindResult[T]{Location: NotFound}
	}
	r := child.find(value)
	if r.Location == AtSelf {
		return FindResult[T]{Node: n, Location: loc}
	}
	return r
}

// delete removes value from the subtree rooted at n, where n hangs from its
// parent's link s. It returns the (possibly new) root of the subtree, which
// the caller has to re-attach, and the change in node count (-1 or 0).
//
// The gap left by a removed node is filled depending on s:
//
//	left child:   the right child takes its place; the left subtree is hung
//	              below the minimum of the right subtree
//	right child:  the left child takes its place; the right subtree is hung
//	              below the maximum of the left subtree
//	root:         as for a left child, unless there is no right child
//
// A missing replacement side falls back to the other child.
func (n *Node[T]) delete(value T, s side) (*Node[T], int) {
	c := cmp.Compare(value, n.value)
	switch {
	case c < 0 && n.left != nil:
		var delta int
		n.left, delta = n.left.delete(value, asLeft)
		return n, delta
	case c > 0 && n.right != nil:
		var delta int
		n.right, delta = n.right.delete(value, asRight)
		return n, delta
	case c != 0:
		return n, 0
	}
	var replacement *Node[T]
	switch s {
	case asLeft:
		if n.right != nil {
			n.right.minNode().left = n.left
			replacement = n.right
		} else {
			replacement = n.left
		}
	case asRight:
		if n.left != nil {
			n.left.maxNode().right = n.right
			replacement = n.left
		} else {
			replacement = n.right
		}
	default:
		if n.right != nil {
			n.right.minNode().left = n.left
			replacement = n.right
		} else if n.left != nil {
			n.left.maxNode().right = n.right
			replacement = n.left
		}
	}
	n.left, n.right = nil, nil // n is dropped
	return replacement, -1
}

// minNode returns the node with the smallest value in the subtree rooted at n.
func (n *Node[T]) minNode() *Node[T] {
	if n.left != nil {
		return n.left.minNode()
	}
	return n
}

// maxNode returns the node with the largest value in the subtree rooted at n.
func (n *Node[T]) maxNode() *Node[T] {
	if n.right != nil {
		return n.right.maxNode()
	}
	return n
}

func (n *Node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}
