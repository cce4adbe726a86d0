package bintree

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
	"golang.org/x/net/html"
)

type nodeids[T constraints.Ordered] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T constraints.Ordered]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children of inner nodes are drawn as
// empty circles.
//
func Tree2Dot[T constraints.Ordered](tree *Tree[T], w io.Writer) error {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	c := newNodeCursor(tree.root)
	for node, ok := c.next(); ok; node, ok = c.next() {
		ID := ids.alloc(node)
		label := html.EscapeString(fmt.Sprint(node.value))
		nodelist += fmt.Sprintf("\"%d\" [label=<%s> %s];\n", ID, label, nodeDotStyles(node.IsLeaf()))
		if node.IsLeaf() {
			continue
		}
		for _, child := range []*Node[T]{node.left, node.right} {
			if child == nil {
				nilid := ids.max
				ids.max++
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	_, err := io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",fillcolor=\"#a3d7e4\""
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
