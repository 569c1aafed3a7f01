// SPDX-License-Identifier: MIT
// Package mixture: sentinel error set.
// All entry points return these sentinels (wrapped with an operation tag) and
// tests check them via errors.Is. No entry point panics on user-supplied data;
// panics are reserved for nonsensical option values (programmer error).

package mixture

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when the number of correlation coefficients
	// is not n(n-1)/2 for n target rates.
	ErrShapeMismatch = errors.New("mixture: coefficient count does not match upper triangle size")

	// ErrEmptyRates is returned when no target rates are supplied.
	ErrEmptyRates = errors.New("mixture: no target rates")

	// ErrNegativeRate is returned when a target rate is negative.
	ErrNegativeRate = errors.New("mixture: negative target rate")

	// ErrNilMatrix indicates that a nil correlation matrix was passed.
	ErrNilMatrix = errors.New("mixture: nil correlation matrix")

	// ErrDimensionMismatch indicates the correlation matrix is not n×n for n targets.
	ErrDimensionMismatch = errors.New("mixture: dimension mismatch")

	// ErrAsymmetry signals the correlation matrix is not symmetric within eps.
	ErrAsymmetry = errors.New("mixture: correlation matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a diagonal entry of the correlation matrix is not ~0.
	ErrNonZeroDiagonal = errors.New("mixture: correlation diagonal not zero within eps")

	// ErrNaNInf signals a NaN or ±Inf rate or correlation.
	ErrNaNInf = errors.New("mixture: NaN or Inf encountered")

	// ErrOptimizationFailed is matched by every *OptimizationError.
	ErrOptimizationFailed = errors.New("mixture: optimization failed")
)

// OptimizationError reports a completed source-rate vector with a negative
// (or NaN) entry. Rates holds the full vector, learned sources first and
// residual sources after, for diagnosis.
type OptimizationError struct {
	Rates []float64
}

func (e *OptimizationError) Error() string {
	return fmt.Sprintf("%s, not all source rates are non-negative: %v", ErrOptimizationFailed, e.Rates)
}

// Unwrap lets errors.Is(err, ErrOptimizationFailed) match.
func (e *OptimizationError) Unwrap() error { return ErrOptimizationFailed }

// Operation tags for error wrapping.
const (
	opSolve             = "Solve"
	opCorrelationMatrix = "CorrelationMatrix"
)

// mixtureErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func mixtureErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
