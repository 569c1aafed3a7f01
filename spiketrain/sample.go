// SPDX-License-Identifier: MIT

package spiketrain

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sample thins a train: every event is kept independently with probability p.
// Exactly one Bernoulli trial is drawn per input event, in order, whatever p
// is, so the amount of randomness consumed depends only on len(train).
//
// p == 0 ⇒ empty train; p == 1 ⇒ an identical copy. The input is not modified.
//
// Errors: ErrInvalidProbability when p is NaN or outside [0, 1].
func Sample(p float64, train Train, src rand.Source) (Train, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, trainErrorf(opSample, ErrInvalidProbability)
	}

	trial := distuv.Bernoulli{P: p, Src: sourceOrDefault(src)}
	kept := make(Train, 0, int(math.Ceil(p*float64(len(train)))))
	for _, t := range train {
		if trial.Rand() == 1 {
			kept = append(kept, t)
		}
	}

	return kept, nil
}

// Mix samples trains[i] with probability ps[i] and merges the survivors into
// one train sorted ascending. Trains are sampled in index order on the same
// source, which fixes the draw order for a given seed.
//
// Errors:
//   - ErrLengthMismatch when len(ps) != len(trains).
//   - ErrInvalidProbability (with the offending index) from Sample.
//
// Complexity: O(K log K) for K kept events in total.
func Mix(ps []float64, trains []Train, src rand.Source) (Train, error) {
	if len(ps) != len(trains) {
		return nil, trainErrorf(opMix, ErrLengthMismatch)
	}

	src = sourceOrDefault(src)
	merged := make(Train, 0)
	for i, train := range trains {
		kept, err := Sample(ps[i], train, src)
		if err != nil {
			return nil, trainErrorf(opMix, fmt.Errorf("train %d: %w", i, err))
		}
		merged = append(merged, kept...)
	}
	slices.Sort(merged)

	return merged, nil
}
