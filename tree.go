package bintree

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree holding distinct values of type T.
//
// A tree created by
//
//	Tree[T]{}
//
// is a valid object and behaves like the empty tree.
//
// The tree does not balance itself. Clients may call Rebalance at their
// discretion to bring the tree to minimal height.
type Tree[T constraints.Ordered] struct {
	root    *Node[T]
	count   int
	version uint64 // incremented on every structural mutation
	calls   int    // rebuild invocations of the last Rebalance
}

// New creates an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Root returns the root node of t, or nil for an empty tree.
// The node is valid until the next structural mutation.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. The empty tree has height 0.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.height()
}

// Insert adds value to the tree. It returns false if the value has already
// been present, leaving the tree unchanged. t must not be nil; the zero Tree
// is ready to use.
func (t *Tree[T]) Insert(value T) bool {
	if t.root == nil {
		t.root = newNode(value)
		t.count = 1
		t.version++
		return true
	}
	if !t.root.insert(value) {
		return false
	}
	t.count++
	t.version++
	return true
}

// Delete removes value from the tree. Deleting a value not present in the
// tree is a no-op. Delete reports whether a node has been removed.
func (t *Tree[T]) Delete(value T) bool {
	if t == nil || t.root == nil {
		return false
	}
	root, delta := t.root.delete(value, asRoot)
	t.root = root
	t.count += delta
	if delta == 0 {
		return false
	}
	t.version++
	assert(t.count >= 0, "tree count dropped below zero")
	assert((t.count == 0) == (t.root == nil), "tree count inconsistent with root")
	return true
}

// Find locates value in the tree. See type Location for the interpretation
// of the result node.
func (t *Tree[T]) Find(value T) FindResult[T] {
	if t == nil || t.root == nil {
		return FindResult[T]{Location: NotFound}
	}
	return t.root.find(value)
}

// Contains returns true if value is present in the tree.
func (t *Tree[T]) Contains(value T) bool {
	return t.Find(value).Location != NotFound
}

// Min returns the smallest value of the tree. If the tree is empty, ok is false.
func (t *Tree[T]) Min() (value T, ok bool) {
	if t.IsEmpty() {
		return value, false
	}
	return t.root.minNode().value, true
}

// Max returns the largest value of the tree. If the tree is empty, ok is false.
func (t *Tree[T]) Max() (value T, ok bool) {
	if t.IsEmpty() {
		return value, false
	}
	return t.root.maxNode().value, true
}

// Values returns an iterator over all values in ascending order.
// Every range loop over the iterator starts a new traversal.
//
// Mutating the tree structurally while ranging over Values panics with
// ErrCursorInvalidated.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		c := t.NewCursor()
		for v, ok := c.Next(); ok; v, ok = c.Next() {
			if !yield(v) {
				return
			}
		}
		if err := c.Err(); err != nil {
			panic(err)
		}
	}
}

// DepthFirstReverse returns an iterator over all values in descending order,
// each paired with the depth of its node (the root has depth 0).
func (t *Tree[T]) DepthFirstReverse() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		if t.IsEmpty() {
			return
		}
		reverseDepth(t.root, 0, yield)
	}
}

func reverseDepth[T constraints.Ordered](n *Node[T], depth int, yield func(T, int) bool) bool {
	if n.right != nil && !reverseDepth(n.right, depth+1, yield) {
		return false
	}
	if !yield(n.value, depth) {
		return false
	}
	if n.left != nil {
		return reverseDepth(n.left, depth+1, yield)
	}
	return true
}

// Print outputs the tree sideways: larger values on top, one tab of
// indentation per level of depth. An empty tree prints as "empty".
func (t *Tree[T]) Print(w io.Writer) error {
	if t.IsEmpty() {
		_, err := io.WriteString(w, "empty\n")
		return err
	}
	var err error
	for v, depth := range t.DepthFirstReverse() {
		if _, err = fmt.Fprintf(w, "%s%v\n", strings.Repeat("\t", depth), v); err != nil {
			break
		}
	}
	return err
}

func (t *Tree[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for v := range t.Values() {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
