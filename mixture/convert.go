// SPDX-License-Identifier: MIT

package mixture

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// TotalCorrelation converts a Pearson coefficient between two trains into
// Brette's total correlation: pcc·sqrt(rateA·rateB). The solver's loss is
// expressed in these absolute co-occurrence-rate units.
func TotalCorrelation(rateA, rateB, pcc float64) float64 {
	return pcc * math.Sqrt(rateA*rateB)
}

// PairCount returns n(n-1)/2, the number of unordered pairs among n trains.
// Non-positive n yields 0.
func PairCount(n int) int {
	if n <= 0 {
		return 0
	}

	return n * (n - 1) / 2
}

// CorrelationMatrix builds the symmetric total-correlation matrix from target
// rates and Pearson coefficients listed in row-major upper-triangle order
// (0,1), (0,2), ..., (1,2), ... . The diagonal is zero.
//
// Errors (wrapped with "CorrelationMatrix"):
//   - ErrShapeMismatch when len(pccs) != PairCount(len(rates)).
//   - ErrEmptyRates when rates is empty.
func CorrelationMatrix(rates, pccs []float64) (*mat.SymDense, error) {
	n := len(rates)
	if len(pccs) != PairCount(n) {
		return nil, mixtureErrorf(opCorrelationMatrix, ErrShapeMismatch)
	}
	if n == 0 {
		return nil, mixtureErrorf(opCorrelationMatrix, ErrEmptyRates)
	}

	c := mat.NewSymDense(n, nil)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c.SetSym(i, j, TotalCorrelation(rates[i], rates[j], pccs[k]))
			k++
		}
	}

	return c, nil
}
