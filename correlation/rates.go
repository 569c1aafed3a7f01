// SPDX-License-Identifier: MIT

package correlation

import (
	"math"

	"github.com/katalvlaran/cospit/spiketrain"
)

// Rates returns the empirical event rate of each train over duration.
func Rates(trains []spiketrain.Train, duration float64) ([]float64, error) {
	if !(duration > 0) || math.IsInf(duration, 0) {
		return nil, corrErrorf(opRates, ErrInvalidDuration)
	}
	out := make([]float64, len(trains))
	for i, train := range trains {
		out[i] = train.Rate(duration)
	}

	return out, nil
}
