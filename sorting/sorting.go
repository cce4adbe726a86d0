/*
Package sorting provides two textbook in-place sorting routines.

BubbleSort is quadratic and intended for tiny inputs and as a baseline for
profiling; MergeSort runs in O(n log n) with O(n) auxiliary space.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sorting

import "golang.org/x/exp/constraints"

// BubbleSort sorts s in ascending order. It stops as soon as a pass over the
// unsorted prefix performs no swap.
func BubbleSort[T constraints.Ordered](s []T) {
	for outer := 0; outer < len(s)-1; outer++ {
		swapped := false
		// the last outer elements are in place already
		for inner := 0; inner < len(s)-outer-1; inner++ {
			if s[inner] > s[inner+1] {
				s[inner], s[inner+1] = s[inner+1], s[inner]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}

// MergeSort sorts s in ascending order. The sort is stable.
func MergeSort[T constraints.Ordered](s []T) {
	if len(s) < 2 {
		return
	}
	buf := make([]T, len(s))
	mergeSort(s, buf)
}

// mergeSort sorts s, using buf (of the same length) as scratch space.
func mergeSort[T constraints.Ordered](s, buf []T) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid])
	mergeSort(s[mid:], buf[mid:])
	copy(buf, s)
	left, right := buf[:mid], buf[mid:]
	i, l, r := 0, 0, 0
	for l < len(left) && r < len(right) {
		if right[r] < left[l] {
			s[i] = right[r]
			r++
		} else {
			s[i] = left[l]
			l++
		}
		i++
	}
	i += copy(s[i:], left[l:])
	copy(s[i:], right[r:])
}
