package sorttest

import (
	"github.com/zeebo/errs/v2"
	"github.com/zeebo/mwc"
	"github.com/zeebo/xxh3"
)

// Uniform returns n values drawn from the full int64 range.
func Uniform(rng *mwc.T, n int) []int64 {
	v := make([]int64, n)
	for i := range v {
		v[i] = int64(rng.Uint64())
	}
	return v
}

// FewUnique returns n values drawn uniformly from [0, k).
func FewUnique(rng *mwc.T, n, k int) []int64 {
	v := make([]int64, n)
	for i := range v {
		v[i] = int64(rng.Uint64n(uint64(k)))
	}
	return v
}

// Sorted returns 0, 1, ..., n-1.
func Sorted(n int) []int64 {
	v := make([]int64, n)
	for i := range v {
		v[i] = int64(i)
	}
	return v
}

// Reversed returns n-1, n-2, ..., 0.
func Reversed(n int) []int64 {
	v := make([]int64, n)
	for i := range v {
		v[i] = int64(n - 1 - i)
	}
	return v
}

// NearlySorted returns a sorted slice disturbed by swaps random
// transpositions.
func NearlySorted(rng *mwc.T, n, swaps int) []int64 {
	v := Sorted(n)
	for range swaps {
		i := rng.Uint64n(uint64(n))
		j := rng.Uint64n(uint64(n))
		v[i], v[j] = v[j], v[i]
	}
	return v
}

// Sawtooth returns n values cycling through 0, 1, ..., period-1.
func Sawtooth(n, period int) []int64 {
	v := make([]int64, n)
	for i := range v {
		v[i] = int64(i % period)
	}
	return v
}

// OrganPipe returns n values ascending to the middle and descending back
// down.
func OrganPipe(n int) []int64 {
	v := make([]int64, n)
	for i := range v {
		if i < n/2 {
			v[i] = int64(i)
		} else {
			v[i] = int64(n - 1 - i)
		}
	}
	return v
}

// Fingerprint returns an order-independent fingerprint of x: the sum of
// the hashes of every element's digest. Two slices fingerprint equal
// exactly when they plausibly hold the same multiset, no matter how they
// are permuted.
func Fingerprint[S ~[]E, E any](x S, digest func(E) uint64) uint64 {
	var sum uint64
	for i := range x {
		d := digest(x[i])
		sum += xxh3.Hash([]byte{
			byte(d >> 0x38), byte(d >> 0x30),
			byte(d >> 0x28), byte(d >> 0x20),
			byte(d >> 0x18), byte(d >> 0x10),
			byte(d >> 0x08), byte(d >> 0x00),
		})
	}
	return sum
}

// CheckSorted returns an error naming the first adjacent pair of x out
// of order under less.
func CheckSorted[S ~[]E, E any](x S, less func(a, b E) bool) error {
	for i := 0; i+1 < len(x); i++ {
		if less(x[i+1], x[i]) {
			return errs.Errorf("out of order at %d: %v then %v", i, x[i], x[i+1])
		}
	}
	return nil
}

// CheckFingerprint returns an error when a sort changed the element
// multiset.
func CheckFingerprint(before, after uint64) error {
	if before != after {
		return errs.Errorf("element multiset changed: %016x became %016x", before, after)
	}
	return nil
}
