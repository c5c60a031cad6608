// Package chunk partitions a point index range into bounded-size batches.
//
// Chunking is purely a memory device: processing the batches in order is
// equivalent to processing the whole range at once, but caps the scratch
// memory a consumer needs per batch.
package chunk

import "iter"

// Range is a half-open interval [Lo, Hi) of point indices.
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return r.Hi - r.Lo }

// Ranges returns a lazy sequence of ranges covering [0, n) in strictly
// ascending order: non-overlapping, exhaustive, each of length at most
// size, with only the last possibly shorter. n <= 0 yields nothing.
// size must be positive; callers are expected to validate it upfront, and
// a non-positive size yields nothing rather than looping forever.
func Ranges(n, size int) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		if size <= 0 {
			return
		}
		for lo := 0; lo < n; lo += size {
			if !yield(Range{Lo: lo, Hi: min(lo+size, n)}) {
				return
			}
		}
	}
}
