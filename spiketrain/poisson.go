// SPDX-License-Identifier: MIT

package spiketrain

import (
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"
)

// Poisson draws a homogeneous Poisson spike train with the given rate over
// [0, duration).
//
// Implementation:
//   - Stage 1: validate rate and duration (finite, non-negative).
//   - Stage 2: expected := round-half-even(rate*duration). Zero ⇒ empty train,
//     no randomness consumed.
//   - Stage 3: count ~ Poisson(expected); draw count uniform times on
//     [0, duration); sort ascending.
//
// Inputs:
//   - rate: events per unit time, >= 0.
//   - duration: length of the observation window, >= 0.
//   - src: random source; nil ⇒ deterministic default stream.
//
// Returns:
//   - Train: sorted timestamps in [0, duration).
//
// Errors:
//   - ErrInvalidRate, ErrInvalidDuration (wrapped with "Poisson").
//   - ErrInvalidRate when rate*duration exceeds math.MaxInt32 events.
//
// Complexity:
//   - Time O(k log k) for k drawn events, Space O(k).
func Poisson(rate, duration float64, src rand.Source) (Train, error) {
	if !finiteNonNegative(rate) {
		return nil, trainErrorf(opPoisson, ErrInvalidRate)
	}
	if !finiteNonNegative(duration) {
		return nil, trainErrorf(opPoisson, ErrInvalidDuration)
	}

	expected := math.RoundToEven(rate * duration)
	if expected > math.MaxInt32 {
		return nil, trainErrorf(opPoisson, ErrInvalidRate)
	}
	if expected == 0 {
		return Train{}, nil
	}

	src = sourceOrDefault(src)
	count := int(distuv.Poisson{Lambda: expected, Src: src}.Rand())
	uniform := distuv.Uniform{Min: 0, Max: duration, Src: src}

	train := make(Train, count)
	for i := range train {
		t := uniform.Rand()
		// u*duration can round up to duration for u close to 1.
		if t >= duration {
			t = math.Nextafter(duration, 0)
		}
		train[i] = t
	}
	slices.Sort(train)

	return train, nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
