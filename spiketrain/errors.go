// SPDX-License-Identifier: MIT

package spiketrain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Call sites wrap them with an operation tag; match with errors.Is.
var (
	// ErrInvalidRate is returned for a negative, NaN or infinite rate.
	ErrInvalidRate = errors.New("spiketrain: rate must be finite and non-negative")

	// ErrInvalidDuration is returned for a negative, NaN or infinite duration.
	ErrInvalidDuration = errors.New("spiketrain: duration must be finite and non-negative")

	// ErrInvalidProbability is returned when a sampling probability is NaN or outside [0, 1].
	ErrInvalidProbability = errors.New("spiketrain: probability must lie in [0, 1]")

	// ErrLengthMismatch is returned by Mix when probabilities and trains differ in length.
	ErrLengthMismatch = errors.New("spiketrain: probabilities and trains differ in length")
)

// Operation tags for error wrapping.
const (
	opPoisson = "Poisson"
	opSample  = "Sample"
	opMix     = "Mix"
)

// trainErrorf tags err with the operation that produced it.
func trainErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
