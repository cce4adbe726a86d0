package bintree

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	tree := New[string]()
	for _, s := range []string{"b", "a<", "c"} {
		tree.Insert(s)
	}
	tree.Insert("d")
	var sb strings.Builder
	if err := Tree2Dot(tree, &sb); err != nil {
		t.Fatal(err)
	}
	dot := sb.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("output is not a DOT digraph")
	}
	if !strings.Contains(dot, "a&lt;") {
		t.Errorf("expected label of node a< to be escaped")
	}
	// b -> a<, b -> c, c -> (empty), c -> d
	if cnt := strings.Count(dot, "->"); cnt != 4 {
		t.Errorf("expected 4 edges, got %d", cnt)
	}
}

func TestTree2DotEmpty(t *testing.T) {
	var sb strings.Builder
	if err := Tree2Dot(New[int](), &sb); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(sb.String(), "->") {
		t.Errorf("expected no edges for empty tree")
	}
}

func TestTree2DotNodeIdsAreUnique(t *testing.T) {
	tree := New[int]()
	for _, v := range rand.Perm(10050) {
		tree.Insert(v)
	}
	var sb strings.Builder
	if err := Tree2Dot(tree, &sb); err != nil {
		t.Fatal(err)
	}
	decl := regexp.MustCompile(`(?m)^"(\d+)" \[`)
	seen := make(map[string]bool)
	for _, m := range decl.FindAllStringSubmatch(sb.String(), -1) {
		if seen[m[1]] {
			t.Fatalf("node id %s declared twice", m[1])
		}
		seen[m[1]] = true
	}
	if len(seen) < tree.Len() {
		t.Errorf("expected at least %d node declarations, got %d", tree.Len(), len(seen))
	}
}
