// Package algo implements textbook sorting and searching algorithms and a
// harness that times them against their standard-library equivalents.
//
// Nothing here is meant to outperform the standard library: the point of the
// package is the measured comparison. All routines are generic over a
// three-way comparison function, in the manner of slices.SortFunc.
package algo

import "slices"

// BubbleSort returns a new slice with the elements of s sorted ascending
// under cmp. The input is never mutated.
//
// Repeated adjacent-pair passes, stopping at the first pass with no swap.
// O(n²) time, O(1) extra space beyond the output copy. Stable.
func BubbleSort[E any](s []E, cmp func(a, b E) int) []E {
	out := slices.Clone(s)
	for n := len(out); n > 1; n-- {
		swapped := false
		for j := 0; j < n-1; j++ {
			if cmp(out[j], out[j+1]) > 0 {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return out
}

// MergeSort returns a new slice with the elements of s sorted ascending under
// cmp. The input is never mutated.
//
// Recursive halving with a linear-time interleave of the sorted halves.
// O(n log n) time, O(n) extra space. Stable: on equal keys the left half
// wins, preserving input order.
func MergeSort[E any](s []E, cmp func(a, b E) int) []E {
	if len(s) <= 1 {
		return slices.Clone(s)
	}
	mid := len(s) / 2
	left := MergeSort(s[:mid], cmp)
	right := MergeSort(s[mid:], cmp)
	return merge(left, right, cmp)
}

// merge interleaves two sorted slices with a two-pointer scan.
func merge[E any](left, right []E, cmp func(a, b E) int) []E {
	out := make([]E, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}
