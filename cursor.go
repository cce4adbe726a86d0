package bintree

import "golang.org/x/exp/constraints"

// nodeCursor produces the nodes of a subtree in order, one at a time.
//
// A nodeCursor first drains a nested cursor over the left subtree, then
// produces its own node, then drains a nested cursor over the right subtree.
// At most one nested cursor is open per level, so a traversal holds no more
// cursors than the depth of the current node.
type nodeCursor[T constraints.Ordered] struct {
	node          *Node[T]
	descendedLeft bool           // left subtree done, own node produced
	done          bool           // right subtree done as well
	sub           *nodeCursor[T] // open cursor over a child, or nil
}

func newNodeCursor[T constraints.Ordered](node *Node[T]) *nodeCursor[T] {
	return &nodeCursor[T]{node: node, done: node == nil}
}

// next returns the next node of the traversal or false if the subtree is
// exhausted.
func (c *nodeCursor[T]) next() (*Node[T], bool) {
	if c.done {
		return nil, false
	}
	if !c.descendedLeft {
		if c.node.left == nil {
			c.descendedLeft = true
			return c.node, true
		}
		if c.sub == nil {
			c.sub = newNodeCursor(c.node.left)
		}
		if n, ok := c.sub.next(); ok {
			return n, true
		}
		c.sub = nil
		c.descendedLeft = true
		return c.node, true
	}
	if c.sub == nil {
		if c.node.right == nil {
			c.done = true
			return nil, false
		}
		c.sub = newNodeCursor(c.node.right)
	}
	n, ok := c.sub.next()
	if !ok {
		c.sub = nil
		c.done = true
	}
	return n, ok
}

// Cursor is a resumable in-order traversal over the values of a tree.
//
// A cursor is bound to the state of its tree at creation time. Any structural
// mutation of the tree (inserting a new value, deleting a value, rebalancing)
// invalidates the cursor: Next will return false from then on and Err will
// report ErrCursorInvalidated. A fresh cursor restarts the traversal.
//
// Cursors are not safe for concurrent use.
type Cursor[T constraints.Ordered] struct {
	tree    *Tree[T]
	version uint64
	nodes   *nodeCursor[T]
	err     error
}

// NewCursor creates a cursor positioned before the smallest value of t.
func (t *Tree[T]) NewCursor() *Cursor[T] {
	if t == nil {
		return &Cursor[T]{}
	}
	return &Cursor[T]{
		tree:    t,
		version: t.version,
		nodes:   newNodeCursor(t.root),
	}
}

// Next returns the next value in ascending order. If the traversal is
// exhausted or the cursor has been invalidated, ok is false.
func (c *Cursor[T]) Next() (value T, ok bool) {
	n, ok := c.nextNode()
	if !ok {
		return value, false
	}
	return n.value, true
}

func (c *Cursor[T]) nextNode() (*Node[T], bool) {
	if c == nil || c.nodes == nil || c.err != nil {
		return nil, false
	}
	if c.tree.version != c.version {
		tracer().Errorf("bintree: cursor used after tree mutation")
		c.err = ErrCursorInvalidated
		c.nodes = nil
		return nil, false
	}
	return c.nodes.next()
}

// Err returns ErrCursorInvalidated if the cursor's tree has been modified
// during traversal, nil otherwise.
func (c *Cursor[T]) Err() error {
	if c == nil {
		return nil
	}
	return c.err
}
