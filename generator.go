// SPDX-License-Identifier: MIT

package cospit

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"

	"github.com/katalvlaran/cospit/mixture"
	"github.com/katalvlaran/cospit/spiketrain"
	"golang.org/x/sync/errgroup"
)

// Generator holds a solved mixture for fixed target rates and correlations.
// It is immutable after construction and safe for concurrent use, provided
// every goroutine brings its own random source.
type Generator struct {
	rates    []float64
	solution *mixture.Solution
}

// NewGenerator converts the Pearson coefficients to total correlations and
// runs the mixture solver once.
//
// Implementation:
//   - Stage 1: check len(pccs) == n(n-1)/2 (ErrShapeMismatch, before any work).
//   - Stage 2: build the symmetric total-correlation matrix.
//   - Stage 3: mixture.Solve with opts.
//
// Errors (wrapped with "NewGenerator"):
//   - ErrShapeMismatch, validation sentinels of package mixture, and
//     *mixture.OptimizationError (matches ErrOptimizationFailed).
func NewGenerator(targetRates, pccs []float64, opts ...mixture.Option) (*Generator, error) {
	if len(pccs) != mixture.PairCount(len(targetRates)) {
		return nil, cospitErrorf(opNewGenerator, ErrShapeMismatch)
	}
	c, err := mixture.CorrelationMatrix(targetRates, pccs)
	if err != nil {
		return nil, cospitErrorf(opNewGenerator, err)
	}
	sol, err := mixture.Solve(targetRates, c, opts...)
	if err != nil {
		return nil, cospitErrorf(opNewGenerator, err)
	}

	return &Generator{rates: slices.Clone(targetRates), solution: sol}, nil
}

// Solution returns the solver output. Do not modify it.
func (g *Generator) Solution() *mixture.Solution { return g.solution }

// Targets returns the number of trains each realisation produces.
func (g *Generator) Targets() int { return len(g.rates) }

// TargetRates returns a copy of the requested rates.
func (g *Generator) TargetRates() []float64 { return slices.Clone(g.rates) }

// Generate draws one realisation of the target trains over [0, duration).
//
// Draw order on src: one Poisson train per source in source order, then for
// each target (in order) one Bernoulli trial per event of every source (in
// source order). A nil src resolves to spiketrain.NewSource(0).
//
// Errors: spiketrain.ErrInvalidDuration for a negative or non-finite duration.
func (g *Generator) Generate(duration float64, src rand.Source) ([]spiketrain.Train, error) {
	if src == nil {
		src = spiketrain.NewSource(0)
	}
	sol := g.solution

	sources := make([]spiketrain.Train, sol.Sources())
	for k, rate := range sol.SourceRates {
		train, err := spiketrain.Poisson(rate, duration, src)
		if err != nil {
			return nil, cospitErrorf(opGenerate, fmt.Errorf("source %d: %w", k, err))
		}
		sources[k] = train
	}

	targets := make([]spiketrain.Train, sol.Targets())
	for i := range targets {
		train, err := spiketrain.Mix(sol.Row(i), sources, src)
		if err != nil {
			return nil, cospitErrorf(opGenerate, fmt.Errorf("target %d: %w", i, err))
		}
		targets[i] = train
	}

	return targets, nil
}

// GenerateBatches draws `batches` independent realisations in parallel.
// Batch b uses spiketrain.DeriveSource(seed, b), so the result depends only on
// (seed, batches, duration) and never on scheduling. Results are in batch order.
//
// The first failing batch cancels the rest; a cancelled ctx stops batches
// that have not started and returns ctx.Err().
func (g *Generator) GenerateBatches(ctx context.Context, batches int, duration float64, seed uint64) ([][]spiketrain.Train, error) {
	if batches < 0 {
		return nil, cospitErrorf(opBatches, ErrInvalidBatchCount)
	}

	out := make([][]spiketrain.Train, batches)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for b := 0; b < batches; b++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trains, err := g.Generate(duration, spiketrain.DeriveSource(seed, uint64(b)))
			if err != nil {
				return fmt.Errorf("batch %d: %w", b, err)
			}
			out[b] = trains

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, cospitErrorf(opBatches, err)
	}

	return out, nil
}
