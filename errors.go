// SPDX-License-Identifier: MIT

package cospit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cospit/correlation"
	"github.com/katalvlaran/cospit/mixture"
)

// Re-exported sentinels so callers of the facade need not import subpackages.
var (
	// ErrShapeMismatch: coefficient count is not n(n-1)/2 for n target rates.
	ErrShapeMismatch = mixture.ErrShapeMismatch

	// ErrOptimizationFailed: the solver left a negative source rate.
	ErrOptimizationFailed = mixture.ErrOptimizationFailed

	// ErrDegenerateCorrelation: a measured train has a constant occupancy vector.
	ErrDegenerateCorrelation = correlation.ErrDegenerateCorrelation

	// ErrInvalidBatchCount is returned by GenerateBatches for a negative count.
	ErrInvalidBatchCount = errors.New("cospit: batch count must be >= 0")
)

const (
	opNewGenerator = "NewGenerator"
	opGenerate     = "Generate"
	opBatches      = "GenerateBatches"
)

func cospitErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
