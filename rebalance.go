package bintree

import "golang.org/x/exp/constraints"

// Rebalance rebuilds the tree to minimal height. Values are not copied and
// no nodes are allocated: the existing nodes are collected in order and
// re-linked. Rebalancing an empty tree is a no-op.
//
// Rebalance invalidates all outstanding cursors of t.
func (t *Tree[T]) Rebalance() {
	if t.IsEmpty() {
		return
	}
	nodes := make([]*Node[T], 0, t.count)
	c := newNodeCursor(t.root)
	for n, ok := c.next(); ok; n, ok = c.next() {
		nodes = append(nodes, n)
	}
	assert(len(nodes) == t.count, "rebalance collected unexpected number of nodes")
	tracer().Debugf("bintree: rebalance over %d nodes", len(nodes))
	t.calls = 0
	t.root = rebuild(nodes, 0, len(nodes)-1, &t.calls)
	t.version++
	tracer().Debugf("bintree: rebuild calls = %d, height = %d", t.calls, t.root.height())
}

// RebalanceCalls returns the number of rebuild steps the most recent call to
// Rebalance took. For a tree of n nodes this is 2n+1.
func (t *Tree[T]) RebalanceCalls() int {
	if t == nil {
		return 0
	}
	return t.calls
}

// rebuild links nodes[start..end] (inclusive) to a tree of minimal height
// and returns its root, or nil for an empty range. The middle node of the
// range becomes the root, where even-length ranges choose the lower of the
// two middle positions.
//
// nodes must be sorted by value. If calls is non-nil, it counts invocations.
func rebuild[T constraints.Ordered](nodes []*Node[T], start, end int, calls *int) *Node[T] {
	if calls != nil {
		*calls++
	}
	if start > end {
		return nil
	}
	mid := (start + end) / 2
	node := nodes[mid]
	node.left = rebuild(nodes, start, mid-1, calls)
	node.right = rebuild(nodes, mid+1, end, calls)
	return node
}
