package hsort

import "math/bits"

// frame is a pending sub-range and the partition budget left for it.
type frame struct {
	lo, hi int
	budget int
}

// log2ceil matches the continuous ceil(log2 n) for n >= 2.
func log2ceil(n int) int { return bits.Len(uint(n - 1)) }

// testHookStackPush observes the work stack depth after each push.
// Nil outside of tests.
var testHookStackPush func(depth int)

// introsort sorts x under less using an explicit work stack in place of
// recursion. Every partition costs one unit of the frame's budget; when
// a frame runs out the rest of its range is finished by heapsort, which
// caps the worst case at O(n log n) no matter how the pivots fall. After
// each split the smaller outer sub-range is pushed and the larger one is
// continued in place. Every pushed frame carries less budget than the
// frame below it, so the stack never holds more than limit+1 frames. The
// pivot-equivalent middle region is already placed and is skipped.
func introsort[E any](x []E, less func(a, b E) bool, limit int) {
	stack := make([]frame, 0, 64)
	stack = append(stack, frame{lo: 0, hi: len(x), budget: limit})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		lo, hi, budget := f.lo, f.hi, f.budget

		for hi-lo > insertionThreshold {
			if budget == 0 {
				heapSort(x, lo, hi, less)
				break
			}
			budget--

			lt, gtEnd := partition3(x, lo, hi, less)

			if lt-lo < hi-gtEnd {
				if lt-lo > 1 {
					stack = append(stack, frame{lo: lo, hi: lt, budget: budget})
					if testHookStackPush != nil {
						testHookStackPush(len(stack))
					}
				}
				lo = gtEnd
			} else {
				if hi-gtEnd > 1 {
					stack = append(stack, frame{lo: gtEnd, hi: hi, budget: budget})
					if testHookStackPush != nil {
						testHookStackPush(len(stack))
					}
				}
				hi = lt
			}
		}

		if hi-lo > 1 {
			insertionSort(x, lo, hi, less)
		}
	}
}
