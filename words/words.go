/*
Package words fills binary search trees with the distinct words of a text.

Words are maximal runs of non-space characters. Input may be plain text or
an HTML fragment, in which case only the textual content of the fragment is
considered.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package words

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// FromText reads plain text from input and returns a tree holding each
// distinct word of the text once.
func FromText(input io.Reader) (*bintree.Tree[string], error) {
	if input == nil {
		return nil, bintree.ErrIllegalArguments
	}
	tree := bintree.New[string]()
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	scanner.Split(bufio.ScanWords)
	total := 0
	for scanner.Scan() {
		tree.Insert(scanner.Text())
		total++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("words: %d words, %d distinct", total, tree.Len())
	return tree, nil
}

// FromHTML parses an HTML fragment from input and returns a tree holding each
// distinct word of its text nodes once. Markup is not interpreted: text
// hidden by styling is included.
func FromHTML(input io.Reader) (*bintree.Tree[string], error) {
	if input == nil {
		return nil, bintree.ErrIllegalArguments
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	tree := bintree.New[string]()
	for _, n := range nodes {
		collectText(n, tree)
	}
	tracer().Debugf("words: %d distinct words in HTML fragment", tree.Len())
	return tree, nil
}

func collectText(n *html.Node, tree *bintree.Tree[string]) {
	if n.Type == html.TextNode {
		for _, w := range Split(n.Data) {
			tree.Insert(w)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, tree)
	}
}

// Split returns the words of s in order of appearance.
func Split(s string) []string {
	words := make([]string, 0, 8)
	b := []byte(s)
	for pos := 0; pos < len(b); {
		r, width := utf8.DecodeRune(b[pos:])
		if unicode.IsSpace(r) {
			pos += width
			continue
		}
		start := pos
		pos += width
		for pos < len(b) {
			r, width = utf8.DecodeRune(b[pos:])
			if unicode.IsSpace(r) {
				break
			}
			pos += width
		}
		words = append(words, string(b[start:pos]))
	}
	return words
}
