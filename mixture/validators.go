// SPDX-License-Identifier: MIT
// Package: mixture
//
// Purpose:
//   - Provide the canonical input checks for Solve in one place.
//   - Return plain sentinels wrapped with a validator tag so call sites can
//     add their own operation tag uniformly.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing. Matrix checks are O(n²).

package mixture

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRates checks that rates is non-empty and every entry is finite and >= 0.
func ValidateRates(rates []float64) error {
	if len(rates) == 0 {
		return validatorErrorf("ValidateRates", ErrEmptyRates)
	}
	for i, r := range rates {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return validatorErrorf("ValidateRates", fmt.Errorf("rate %d: %w", i, ErrNaNInf))
		}
		if r < 0 {
			return validatorErrorf("ValidateRates", fmt.Errorf("rate %d: %w", i, ErrNegativeRate))
		}
	}

	return nil
}

// ValidateCorrelationMatrix checks that m is a usable total-correlation matrix
// for n targets.
//
// Sequence (first failure wins):
//
//	nil → shape n×n → finite entries → zero diagonal within eps → symmetric within eps.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrNonZeroDiagonal, ErrAsymmetry.
// Complexity: O(n²).
func ValidateCorrelationMatrix(m mat.Matrix, n int, eps float64) error {
	if m == nil {
		return validatorErrorf("ValidateCorrelationMatrix", ErrNilMatrix)
	}
	if r, c := m.Dims(); r != n || c != n {
		return validatorErrorf("ValidateCorrelationMatrix", ErrDimensionMismatch)
	}
	if eps < 0 {
		eps = -eps
	}

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateCorrelationMatrix", ErrNaNInf)
			}
		}
	}
	for i = 0; i < n; i++ {
		if math.Abs(m.At(i, i)) > eps {
			return validatorErrorf("ValidateCorrelationMatrix", ErrNonZeroDiagonal)
		}
	}
	// Scan the strict upper triangle only.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > eps {
				return validatorErrorf("ValidateCorrelationMatrix", ErrAsymmetry)
			}
		}
	}

	return nil
}
