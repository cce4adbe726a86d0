/*
Package bintree implements an ordered, node-linked binary search tree.

Bintree

A Tree stores distinct values of an ordered type. Every node owns its two
children and no node knows its parent: structural changes are performed by
handing replacement subtrees back up the call chain, never by mutating a
parent through a back reference.

	Operation     |   Tree
	--------------+------------------
	Insert        |   O(depth)
	Delete        |   O(depth)
	Find          |   O(depth)
	Len           |   O(1)
	Iterate       |   O(n)
	Rebalance     |   O(n)

Rebalancing is never triggered implicitly. Clients call Tree.Rebalance, which
drains the tree into its in-order sequence of nodes and rebuilds a tree of
minimal height from it, re-linking the existing nodes without copying values.

Find reports where a value sits relative to the node it returns:

	AtSelf         the returned node holds the value (only for the tree root)
	AtLeftChild    the returned node is the parent, the value is its left child
	AtRightChild   the returned node is the parent, the value is its right child
	NotFound       no node holds the value

Iteration is done with a Cursor, a resumable in-order traversal. Cursors are
invalidated by any structural mutation of their tree.

Trees are not safe for concurrent use. Clients sharing a tree between
goroutines have to guard all access with a single lock.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for generic code, where a type parameter T shadows the function.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the bintree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrCursorInvalidated signals that a tree has been structurally modified
// while a cursor was traversing it.
const ErrCursorInvalidated = TreeError("cursor invalidated by structural tree mutation")

// ErrInvariantViolated is flagged by Check whenever the tree's ordering or
// counting invariants do not hold.
const ErrInvariantViolated = TreeError("tree invariant violated")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
