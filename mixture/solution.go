// SPDX-License-Identifier: MIT

package mixture

import "gonum.org/v1/gonum/mat"

// Solution is the output of Solve. Treat it as read-only; it is then safe to
// share between goroutines.
//
// Mixing is n×2n: row i holds, for each source, the probability that one of
// its events is kept in target i. Columns 0..n-1 are the learned sources,
// columns n..2n-1 the residual sources (an identity block). SourceRates has
// the matching 2n rates.
type Solution struct {
	Mixing      *mat.Dense
	SourceRates []float64
}

// Targets returns the number of target trains (rows of Mixing).
func (s *Solution) Targets() int {
	r, _ := s.Mixing.Dims()

	return r
}

// Sources returns the number of source trains.
func (s *Solution) Sources() int { return len(s.SourceRates) }

// Row returns a copy of the mixing probabilities of target i.
// Panics when i is out of range, like mat.Row.
func (s *Solution) Row(i int) []float64 {
	return mat.Row(nil, i, s.Mixing)
}

// ImpliedRates returns Mixing·SourceRates, the expected rate of every target.
// After completion this equals the target rates up to rounding.
func (s *Solution) ImpliedRates() []float64 {
	var out mat.VecDense
	out.MulVec(s.Mixing, mat.NewVecDense(len(s.SourceRates), s.SourceRates))

	return mat.Col(nil, 0, &out)
}

// ImpliedCorrelations returns the total correlations the solution realises:
// Σ_k Mixing[i,k]·Mixing[j,k]·SourceRates[k] off the diagonal, zero on it.
// It uses the same contraction as the solver's correlation term.
func (s *Solution) ImpliedCorrelations() *mat.SymDense {
	n := s.Targets()
	var implied, weighted mat.Dense
	contract(&implied, &weighted, s.Mixing, mat.NewVecDense(len(s.SourceRates), s.SourceRates))

	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out.SetSym(i, j, implied.At(i, j))
		}
	}

	return out
}
