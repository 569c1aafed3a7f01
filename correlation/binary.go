// SPDX-License-Identifier: MIT

package correlation

import (
	"math"
	"sort"

	"github.com/katalvlaran/cospit/spiketrain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BinaryVector is a per-bin occupancy indicator derived from a spike train.
type BinaryVector []bool

// Constant reports whether every entry equals the first (zero variance).
// Empty vectors are constant.
func (v BinaryVector) Constant() bool {
	for _, b := range v {
		if b != v[0] {
			return false
		}
	}

	return true
}

// Binarize converts a train into an occupancy vector.
//
// Implementation:
//   - Stage 1: validate duration and binWidth; edges := round-half-even(duration/binWidth + 1).
//   - Stage 2: place edges evenly on [0, duration]; the vector has edges-1 bins.
//     Bins are half-open [e_k, e_k+1) except the last, which also holds duration.
//   - Stage 3: histogram the events inside [0, duration]; a bin is true when its
//     count is at least one. Events outside the window are ignored.
//
// Errors:
//   - ErrInvalidBinning, ErrUnsorted (wrapped with "Binarize").
//
// Complexity:
//   - Time O(k + B) for k events and B bins, Space O(B).
func Binarize(train spiketrain.Train, duration, binWidth float64) (BinaryVector, error) {
	if !positiveFinite(duration) || !positiveFinite(binWidth) {
		return nil, corrErrorf(opBinarize, ErrInvalidBinning)
	}
	edges := math.RoundToEven(duration/binWidth + 1)
	if edges < 2 || edges > math.MaxInt32 {
		return nil, corrErrorf(opBinarize, ErrInvalidBinning)
	}
	if !train.Sorted() {
		return nil, corrErrorf(opBinarize, ErrUnsorted)
	}

	dividers := floats.Span(make([]float64, int(edges)), 0, duration)
	// stat.Histogram treats the last divider as exclusive; nudge it so the
	// final bin is closed on duration.
	dividers[len(dividers)-1] = math.Nextafter(duration, math.Inf(1))

	vec := make(BinaryVector, len(dividers)-1)
	lo := sort.SearchFloat64s(train, 0)
	hi := sort.Search(len(train), func(i int) bool { return train[i] > duration })
	if lo >= hi {
		return vec, nil
	}

	counts := stat.Histogram(nil, dividers, train[lo:hi], nil)
	for i, c := range counts {
		vec[i] = c > 0
	}

	return vec, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
