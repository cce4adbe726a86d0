package bintree

import (
	"cmp"
	"fmt"
	"math/bits"
)

// Check validates structural tree invariants:
//
//   - every value in a node's left subtree is smaller than the node's value,
//     every value in its right subtree is greater
//   - the number of reachable nodes equals Len()
//   - the tree is empty exactly if its root is nil
//
// Check walks the whole tree and should be used in tests and for debugging.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolated)
	}
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree must have count=0, has %d", ErrInvariantViolated, t.count)
		}
		return nil
	}
	n, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if n != t.count {
		return fmt.Errorf("%w: count mismatch (%d reachable != %d)", ErrInvariantViolated, n, t.count)
	}
	return nil
}

// checkNode verifies that all values of the subtree at n lie strictly
// between lo and hi (where nil means unbounded) and returns the number of
// nodes in the subtree.
func (t *Tree[T]) checkNode(n *Node[T], lo, hi *T) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && cmp.Compare(n.value, *lo) <= 0 {
		return 0, fmt.Errorf("%w: node %v not greater than %v", ErrInvariantViolated, n.value, *lo)
	}
	if hi != nil && cmp.Compare(n.value, *hi) >= 0 {
		return 0, fmt.Errorf("%w: node %v not less than %v", ErrInvariantViolated, n.value, *hi)
	}
	l, err := t.checkNode(n.left, lo, &n.value)
	if err != nil {
		return 0, err
	}
	r, err := t.checkNode(n.right, &n.value, hi)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}

// MinimalHeight returns the height of a tree of n nodes with minimal height,
// i.e. ⌈log2(n+1)⌉.
func MinimalHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}
