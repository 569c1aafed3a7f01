// SPDX-License-Identifier: MIT

package spiketrain

import "slices"

// Train is a spike train: event timestamps sorted ascending.
// Trains returned by this package are never mutated afterwards.
type Train []float64

// Clone returns an independent copy of t. A nil train clones to an empty one.
func (t Train) Clone() Train {
	out := make(Train, len(t))
	copy(out, t)

	return out
}

// Sorted reports whether the timestamps are in ascending order.
func (t Train) Sorted() bool {
	return slices.IsSorted(t)
}

// Rate returns the empirical event rate len(t)/duration.
// A non-positive duration yields 0.
func (t Train) Rate(duration float64) float64 {
	if duration <= 0 {
		return 0
	}

	return float64(len(t)) / duration
}
