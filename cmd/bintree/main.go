// Command bintree demonstrates and profiles the bintree module and its
// companion packages.
//
// Usage:
//
//	bintree [-mode tree|dot|paths|hashtable|sort|words|profile] [-n count] [-trace level] [file]
//
// Mode words reads a text file (or an HTML file, if the name ends in .html)
// and prints the tree of its distinct words.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/bintree/console"
	"github.com/npillmayer/bintree/hashtable"
	"github.com/npillmayer/bintree/paths"
	"github.com/npillmayer/bintree/profile"
	"github.com/npillmayer/bintree/sorting"
	"github.com/npillmayer/bintree/words"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

type options struct {
	mode  string
	n     int
	trace string
	file  string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(opts.trace))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	var err error
	switch opts.mode {
	case "tree":
		err = demoTree(opts.n, os.Stdout)
	case "dot":
		err = bintree.Tree2Dot(randomTree(opts.n), os.Stdout)
	case "paths":
		err = demoPaths(os.Stdout)
	case "hashtable":
		err = demoHashTable(opts.n, os.Stdout)
	case "sort":
		err = demoSorting(opts.n, os.Stdout)
	case "words":
		err = demoWords(opts.file, os.Stdout)
	case "profile":
		err = demoProfile(ctx, opts.n, os.Stdout)
	default:
		err = fmt.Errorf("unknown mode %q", opts.mode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.mode, "mode", "tree", "demo to run: tree, dot, paths, hashtable, sort, words, profile")
	flag.IntVar(&opts.n, "n", 15, "number of elements to work with")
	flag.StringVar(&opts.trace, "trace", "info", "trace level: debug, info, error")
	flag.Parse()
	opts.file = flag.Arg(0)
	return opts
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

func randomTree(n int) *bintree.Tree[int] {
	tree := bintree.New[int]()
	for _, v := range rand.Perm(n) {
		tree.Insert(v)
	}
	return tree
}

func demoTree(n int, w io.Writer) error {
	tree := randomTree(n)
	printer := console.NewPrinter(nil, nil)
	for range 2 {
		fmt.Fprintf(w, "tree of %d values, height %d:\n", tree.Len(), tree.Height())
		if err := console.Print(printer, tree, w); err != nil {
			return err
		}
		tree.Rebalance()
		fmt.Fprintf(w, "rebalanced with %d rebuild calls\n", tree.RebalanceCalls())
	}
	fmt.Fprintf(w, "after rebalance, height %d:\n", tree.Height())
	if err := console.Print(printer, tree, w); err != nil {
		return err
	}
	return tree.Check()
}

func demoPaths(w io.Writer) error {
	var e paths.Enumerator
	target := 16
	sets := e.TargetSets(target, []int{2, 4, 6, 10})
	fmt.Fprintf(w, "target sets (%d calls => %d) = %v\n", e.Calls, len(sets), sets)
	if err := describePaths(w, target, sets); err != nil {
		return err
	}
	e.Reset()
	steps := 10
	stepPaths := e.StepPaths(steps, []int{1, 3, 6})
	fmt.Fprintf(w, "step paths (%d calls => %d)\n", e.Calls, len(stepPaths))
	return describePaths(w, steps, stepPaths)
}

func describePaths(w io.Writer, target int, all [][]int) error {
	for _, path := range all {
		current := 0
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d", current)
		for _, hop := range path {
			current += hop
			fmt.Fprintf(&sb, " + %d => %d", hop, current)
		}
		if current != target {
			return fmt.Errorf("path did not reach destination: %s", sb.String())
		}
		fmt.Fprintf(w, "path success: %s\n", sb.String())
	}
	return nil
}

func demoHashTable(n int, w io.Writer) error {
	table, err := hashtable.New[string, int](hashtable.Config{})
	if err != nil {
		return err
	}
	for i := range n {
		table.Set(fmt.Sprintf("%d", i), i)
	}
	fmt.Fprintf(w, "hashtable: %d entries in %d buckets\n", table.Len(), table.Buckets())
	for k, v := range table.All() {
		if got, ok := table.Get(k); !ok || got != v {
			return errors.New("hashtable not working")
		}
	}
	return nil
}

func demoSorting(n int, w io.Writer) error {
	elements := rand.Perm(n)
	elements2 := append([]int(nil), elements...)
	fmt.Fprintf(w, "unsorted list = %v\n", elements)
	sorting.BubbleSort(elements)
	fmt.Fprintf(w, "  bubble sort = %v\n", elements)
	sorting.MergeSort(elements2)
	fmt.Fprintf(w, "   merge sort = %v\n", elements2)
	for i := range n {
		if elements[i] != i || elements2[i] != i {
			return errors.New("sort unsuccessful")
		}
	}
	return nil
}

func demoWords(name string, w io.Writer) error {
	if name == "" {
		return errors.New("mode words requires a file name")
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	var tree *bintree.Tree[string]
	if strings.HasSuffix(strings.ToLower(name), ".html") {
		tree, err = words.FromHTML(f)
	} else {
		tree, err = words.FromText(f)
	}
	if err != nil {
		return err
	}
	tree.Rebalance()
	return console.Print(console.NewPrinter(nil, nil), tree, w)
}

func demoProfile(ctx context.Context, n int, w io.Writer) error {
	p, err := profile.New(profile.Config{})
	if err != nil {
		return err
	}
	results, err := p.Subscribe(ctx, 8)
	if err != nil {
		return err
	}
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for msg := range results {
			fmt.Fprintf(w, " - %s\n", msg)
		}
	}()
	var list []int
	var tree *bintree.Tree[int]
	_, err = p.Run(ctx,
		profile.Suite{
			Name:  "bubble sort",
			Setup: func() { list = rand.Perm(n) },
			Run:   func() { sorting.BubbleSort(list) },
		},
		profile.Suite{
			Name:  "merge sort",
			Setup: func() { list = rand.Perm(n) },
			Run:   func() { sorting.MergeSort(list) },
		},
		profile.Suite{
			Name: "hashtable fill",
			Run: func() {
				table, _ := hashtable.New[int, int](hashtable.Config{})
				for i := range n {
					table.Set(i, i)
				}
			},
		},
		profile.Suite{
			Name:  "tree rebalance",
			Setup: func() { tree = randomTree(n) },
			Run:   func() { tree.Rebalance() },
		},
	)
	<-printed
	return err
}
