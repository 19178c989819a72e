package hsort

// siftDown implements the heap property on x[first+lo : first+hi].
// first is an offset into the slice where the root of the heap lies.
func siftDown[E any](x []E, lo, hi, first int, less func(a, b E) bool) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && less(x[first+child], x[first+child+1]) {
			child++
		}
		if !less(x[first+root], x[first+child]) {
			return
		}
		x[first+root], x[first+child] = x[first+child], x[first+root]
		root = child
	}
}

// heapSort sorts x[a:b] in place in O(n log n) worst case with no
// auxiliary memory. The introsort driver falls back to it when a
// frame's partition budget runs out.
func heapSort[E any](x []E, a, b int, less func(a, b E) bool) {
	first := a
	lo := 0
	hi := b - a

	// Build heap with greatest element at top.
	for i := (hi - 1) / 2; i >= 0; i-- {
		siftDown(x, i, hi, first, less)
	}

	// Pop elements, largest first, into end of x.
	for i := hi - 1; i >= 0; i-- {
		x[first], x[first+i] = x[first+i], x[first]
		siftDown(x, lo, i, first, less)
	}
}
