// SPDX-License-Identifier: MIT

package correlation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cospit/spiketrain"
)

// table is the 2×2 contingency table of two occupancy vectors:
// n11 counts bins true in both, n10 true only in the first, and so on.
type table struct {
	n11, n10, n01, n00 int64
}

func tabulate(a, b BinaryVector) table {
	var t table
	for i, x := range a {
		switch {
		case x && b[i]:
			t.n11++
		case x:
			t.n10++
		case b[i]:
			t.n01++
		default:
			t.n00++
		}
	}

	return t
}

// pearson evaluates the phi coefficient
//
//	(n11·n00 − n10·n01) / sqrt(n1·n0·m1·m0)
//
// where n1/n0 count the ones/zeros of the first vector and m1/m0 those of
// the second. It reports false when either vector is constant.
//
// The numerator and both marginal products are exact integers, so equal
// marginals (V against V, or V against its complement) give exactly ±1.
func (t table) pearson() (float64, bool) {
	n1, n0 := t.n11+t.n10, t.n01+t.n00
	m1, m0 := t.n11+t.n01, t.n10+t.n00
	if n1 == 0 || n0 == 0 || m1 == 0 || m0 == 0 {
		return math.NaN(), false
	}

	num := float64(t.n11*t.n00 - t.n10*t.n01)
	pa, pb := n1*n0, m1*m0
	var den float64
	if pa == pb {
		den = float64(pa)
	} else {
		den = math.Sqrt(float64(pa)) * math.Sqrt(float64(pb))
	}

	return math.Max(-1, math.Min(1, num/den)), true
}

// Pearson returns the sample Pearson correlation of two occupancy vectors,
// read as 0/1 values. It is computed from the 2×2 count table, so the
// result always lies in [-1, 1], Pearson(v, v) == 1 and Pearson of v
// against its complement == -1 exactly.
//
// Errors:
//   - ErrLengthMismatch, ErrEmptyVector.
//   - ErrDegenerateCorrelation together with a NaN value when either vector
//     is constant.
func Pearson(a, b BinaryVector) (float64, error) {
	if len(a) != len(b) {
		return math.NaN(), corrErrorf(opPearson, ErrLengthMismatch)
	}
	if len(a) == 0 {
		return math.NaN(), corrErrorf(opPearson, ErrEmptyVector)
	}
	r, ok := tabulate(a, b).pearson()
	if !ok {
		return math.NaN(), corrErrorf(opPearson, ErrDegenerateCorrelation)
	}

	return r, nil
}

// Pairwise binarizes every train and returns the Pearson coefficient of each
// unordered pair in row-major upper-triangle order. The result has
// n(n-1)/2 entries for n trains.
//
// A degenerate pair aborts the call with ErrDegenerateCorrelation wrapped
// with the pair indices; no partial result is returned.
func Pairwise(trains []spiketrain.Train, duration, binWidth float64) ([]float64, error) {
	n := len(trains)
	vectors := make([]BinaryVector, n)
	for i, train := range trains {
		vec, err := Binarize(train, duration, binWidth)
		if err != nil {
			return nil, corrErrorf(opPairwise, fmt.Errorf("train %d: %w", i, err))
		}
		vectors[i] = vec
	}

	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r, ok := tabulate(vectors[i], vectors[j]).pearson()
			if !ok {
				return nil, corrErrorf(opPairwise, fmt.Errorf("pair (%d,%d): %w", i, j, ErrDegenerateCorrelation))
			}
			out = append(out, r)
		}
	}

	return out, nil
}
