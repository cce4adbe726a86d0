package console

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/uax11"
)

func TestPrintTree(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	color.NoColor = true
	tree := bintree.New[int]()
	for _, v := range []int{2, 1, 3} {
		tree.Insert(v)
	}
	p := NewPrinter(&Config{Indent: 2}, nil)
	var sb strings.Builder
	if err := Print(p, tree, &sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "  3\n2\n  1\n" {
		t.Fatalf("unexpected output: %q", sb.String())
	}
}

func TestPrintEmpty(t *testing.T) {
	p := NewPrinter(&Config{}, nil)
	var sb strings.Builder
	if err := Print(p, bintree.New[string](), &sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "empty\n" {
		t.Fatalf("unexpected output: %q", sb.String())
	}
}

func TestPrintTruncatesLabels(t *testing.T) {
	color.NoColor = true
	tree := bintree.New[string]()
	tree.Insert("a rather long label")
	p := NewPrinter(&Config{Indent: 4, LineWidth: 8, Context: uax11.LatinContext}, nil)
	var sb strings.Builder
	if err := Print(p, tree, &sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "a rathe…\n" {
		t.Fatalf("unexpected output: %q", sb.String())
	}
}

func TestWidth(t *testing.T) {
	NewPrinter(&Config{}, nil) // sets up grapheme classes
	if w := Width("hello", uax11.LatinContext); w != 5 {
		t.Errorf("expected width 5, got %d", w)
	}
}
