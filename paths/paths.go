/*
Package paths enumerates the ways of reaching a target distance with a
given set of step widths.

Two flavours are offered: StepPaths lists ordered sequences of steps, where
every step width may be used any number of times; TargetSets lists the
distinct sets of step widths, each used at most once. Both are memoized per
call, and an Enumerator counts the recursive calls it took.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package paths

import (
	"fmt"
	"slices"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Enumerator enumerates paths and counts the recursive calls needed.
// The zero value is ready to use.
type Enumerator struct {
	Calls int // number of recursive steps since the last Reset
}

// Reset sets the call counter to zero.
func (e *Enumerator) Reset() {
	e.Calls = 0
}

// StepPaths returns every ordered sequence of hops summing up to steps.
// A hop width may occur any number of times in a sequence. For steps ≤ 0 the
// result is a single empty sequence.
//
// Sequences are produced in lexicographic order. Duplicate hop widths and
// widths ≤ 0 are ignored.
func (e *Enumerator) StepPaths(steps int, hops []int) [][]int {
	hops = normalize(hops)
	cache := make(map[int][][]int)
	result := e.stepPaths(steps, hops, cache)
	tracer().Debugf("paths: %d step paths to %d after %d calls", len(result), steps, e.Calls)
	return result
}

func (e *Enumerator) stepPaths(steps int, hops []int, cache map[int][][]int) [][]int {
	e.Calls++
	if steps <= 0 {
		return [][]int{{}}
	}
	if result, ok := cache[steps]; ok {
		return result
	}
	var result [][]int
	for _, hop := range hops {
		if steps-hop < 0 {
			continue
		}
		for _, previous := range e.stepPaths(steps-hop, hops, cache) {
			path := make([]int, 0, len(previous)+1)
			path = append(path, hop)
			result = append(result, append(path, previous...))
		}
	}
	cache[steps] = result
	return result
}

// TargetSets returns every set of distinct choices summing up to target.
// Each set is sorted ascending, and the sets are sorted lexicographically.
// For target 0 the result is a single empty set, for a negative target the
// result is empty. Duplicate choices and choices ≤ 0 are ignored.
func (e *Enumerator) TargetSets(target int, choices []int) [][]int {
	if target < 0 {
		return nil
	}
	choices = normalize(choices)
	cache := make(map[string][][]int)
	result := e.targetSets(target, choices, cache)
	tracer().Debugf("paths: %d target sets for %d after %d calls", len(result), target, e.Calls)
	return result
}

func (e *Enumerator) targetSets(target int, choices []int, cache map[string][][]int) [][]int {
	e.Calls++
	if target == 0 {
		return [][]int{{}}
	}
	key := fmt.Sprintf("%d:%v", target, choices)
	if result, ok := cache[key]; ok {
		return result
	}
	seen := make(map[string]bool)
	var result [][]int
	for i, choice := range choices {
		if target-choice < 0 {
			continue
		}
		rest := make([]int, 0, len(choices)-1)
		rest = append(rest, choices[:i]...)
		rest = append(rest, choices[i+1:]...)
		for _, previous := range e.targetSets(target-choice, rest, cache) {
			set := make([]int, 0, len(previous)+1)
			set = append(set, previous...)
			set = append(set, choice)
			slices.Sort(set)
			if k := fmt.Sprint(set); !seen[k] {
				seen[k] = true
				result = append(result, set)
			}
		}
	}
	slices.SortFunc(result, func(a, b []int) int {
		return slices.Compare(a, b)
	})
	cache[key] = result
	return result
}

// normalize returns a sorted copy of widths without duplicates and without
// entries ≤ 0.
func normalize(widths []int) []int {
	out := make([]int, 0, len(widths))
	for _, w := range widths {
		if w > 0 {
			out = append(out, w)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
