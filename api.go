// SPDX-License-Identifier: MIT

package cospit

import (
	"math/rand/v2"

	"github.com/katalvlaran/cospit/correlation"
	"github.com/katalvlaran/cospit/mixture"
	"github.com/katalvlaran/cospit/spiketrain"
)

// GenerateCorrelatedSpikeTrains generates one spike train per target rate over
// [0, duration) whose pairwise Pearson coefficients approximate pccs.
//
// pccs lists coefficients in row-major upper-triangle order and must have
// n(n-1)/2 entries for n rates (ErrShapeMismatch otherwise, reported before
// any randomness is consumed). opts tune the solver, e.g.
// mixture.WithTrainingSteps. A solver failure is returned as-is: retry with
// more steps or different targets.
func GenerateCorrelatedSpikeTrains(targetRates, pccs []float64, duration float64, src rand.Source, opts ...mixture.Option) ([]spiketrain.Train, error) {
	g, err := NewGenerator(targetRates, pccs, opts...)
	if err != nil {
		return nil, err
	}

	return g.Generate(duration, src)
}

// CalculatePearsonCorrelations bins every train with binWidth over [0, duration]
// and returns the Pearson coefficient of each pair in row-major upper-triangle
// order. See correlation.Pairwise.
func CalculatePearsonCorrelations(trains []spiketrain.Train, duration, binWidth float64) ([]float64, error) {
	return correlation.Pairwise(trains, duration, binWidth)
}
