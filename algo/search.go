package algo

// LinearSearch scans s sequentially and returns the index of the first
// element equal to target under cmp, and whether one was found. It works on
// unsorted input. O(n).
func LinearSearch[E any](s []E, target E, cmp func(a, b E) int) (int, bool) {
	for i, e := range s {
		if cmp(e, target) == 0 {
			return i, true
		}
	}
	return 0, false
}

// BinarySearch returns the index of an element equal to target under cmp, and
// whether one was found. O(log n).
//
// s must be sorted ascending under cmp. The result on unsorted input is
// undefined: the halving walk follows whatever order it meets, and the
// function neither detects nor repairs the violation.
func BinarySearch[E any](s []E, target E, cmp func(a, b E) int) (int, bool) {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1) // avoid overflow on huge slices
		switch c := cmp(s[mid], target); {
		case c == 0:
			return mid, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}
