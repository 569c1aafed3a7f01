// SPDX-License-Identifier: MIT

package correlation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBinning is returned when duration or bin width is not a positive
	// finite number, or when they leave fewer than one bin.
	ErrInvalidBinning = errors.New("correlation: invalid duration or bin width")

	// ErrUnsorted is returned when a train's timestamps are not ascending.
	ErrUnsorted = errors.New("correlation: spike train is not sorted")

	// ErrLengthMismatch is returned when two occupancy vectors differ in length.
	ErrLengthMismatch = errors.New("correlation: vector length mismatch")

	// ErrEmptyVector is returned for zero-length occupancy vectors.
	ErrEmptyVector = errors.New("correlation: empty vector")

	// ErrDegenerateCorrelation is returned when either vector has zero variance.
	ErrDegenerateCorrelation = errors.New("correlation: zero-variance vector")

	// ErrInvalidDuration is returned by Rates for a non-positive duration.
	ErrInvalidDuration = errors.New("correlation: duration must be positive and finite")
)

const (
	opBinarize = "Binarize"
	opPearson  = "Pearson"
	opPairwise = "Pairwise"
	opRates    = "Rates"
)

func corrErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
