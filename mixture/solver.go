// SPDX-License-Identifier: MIT

package mixture

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Solve finds latent source rates and mixing probabilities that reproduce the
// target rates exactly and the target total correlations approximately.
//
// Implementation:
//   - Stage 1: validate rates and the correlation matrix.
//   - Stage 2: start from sourceRates = targetRates and mixing = I (every
//     target fed entirely by its own independent source).
//   - Stage 3: run TrainingSteps projected gradient steps (see descent.step)
//     with slow rate b = scale/n and fast rate a = b/n.
//   - Stage 4: complete the solution with one residual source per target,
//     rate R[i] − (P·nu)[i], mixed through an identity block.
//
// Inputs:
//   - targetRates: n finite, non-negative rates.
//   - correlations: n×n total-correlation matrix, symmetric, zero diagonal.
//   - opts: WithTrainingSteps, WithLearningRateScale, WithEpsilon, WithLogger, WithLogEvery.
//
// Returns:
//   - *Solution with Mixing n×2n and SourceRates of length 2n.
//
// Errors (wrapped with "Solve"):
//   - ErrEmptyRates, ErrNegativeRate, ErrNaNInf from ValidateRates.
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrNonZeroDiagonal,
//     ErrAsymmetry from ValidateCorrelationMatrix.
//   - *OptimizationError (matches ErrOptimizationFailed) when a completed
//     source rate is negative. Completed rates are never clamped.
//
// Determinism:
//   - Fixed iteration count, no early exit, fixed loop orders.
//
// Complexity:
//   - Time O(steps·n³) with dense products, Space O(n²).
func Solve(targetRates []float64, correlations mat.Matrix, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts...)
	if err := ValidateRates(targetRates); err != nil {
		return nil, mixtureErrorf(opSolve, err)
	}
	n := len(targetRates)
	if err := ValidateCorrelationMatrix(correlations, n, o.eps); err != nil {
		return nil, mixtureErrorf(opSolve, err)
	}

	var (
		targets     = mat.NewVecDense(n, slices.Clone(targetRates))
		sourceRates = mat.NewVecDense(n, slices.Clone(targetRates))
		mixing      = identity(n)
		slow        = o.learningRateScale / float64(n)
		fast        = slow / float64(n)
		d           = newDescent(n)
	)

	for step := 0; step < o.trainingSteps; step++ {
		d.step(mixing, sourceRates, targets, correlations, fast, slow)
		if o.logger != nil && o.logEvery > 0 && step%o.logEvery == 0 {
			o.logger.Debug("mixture step",
				"step", step,
				"correlation_error", mat.Norm(d.correlationError, 2),
				"rate_violations", d.violations,
			)
		}
	}

	sol, err := complete(mixing, sourceRates, targets)
	if err != nil {
		if o.logger != nil {
			o.logger.Warn("mixture optimization failed",
				"targets", n, "steps", o.trainingSteps, "error", err)
		}
		return nil, mixtureErrorf(opSolve, err)
	}
	if o.logger != nil {
		o.logger.Info("mixture solved",
			"targets", n,
			"steps", o.trainingSteps,
			"min_residual_rate", slices.Min(sol.SourceRates[n:]),
		)
	}

	return sol, nil
}

// descent holds the scratch matrices of one gradient step so the loop does
// not allocate. Naming follows the algebra:
//
//	weighted         = P·diag(nu)
//	implied          = P·diag(nu)·Pᵀ          (X)
//	correlationError = X − C, diagonal zeroed  (A)
//	errorMixing      = A·P
type descent struct {
	n int

	weighted         *mat.Dense
	implied          *mat.Dense
	correlationError *mat.Dense
	errorMixing      *mat.Dense
	mixingGrad       *mat.Dense // dP
	mixingRateGrad   *mat.Dense // dP_rate
	sourceGrad       *mat.VecDense
	sourceRateGrad   *mat.VecDense
	impliedRates     *mat.VecDense
	penalty          *mat.VecDense // Heaviside(P·nu − R)

	violations int // targets whose implied rate exceeds the target this step
}

func newDescent(n int) *descent {
	return &descent{
		n:                n,
		weighted:         mat.NewDense(n, n, nil),
		implied:          mat.NewDense(n, n, nil),
		correlationError: mat.NewDense(n, n, nil),
		errorMixing:      mat.NewDense(n, n, nil),
		mixingGrad:       mat.NewDense(n, n, nil),
		mixingRateGrad:   mat.NewDense(n, n, nil),
		sourceGrad:       mat.NewVecDense(n, nil),
		sourceRateGrad:   mat.NewVecDense(n, nil),
		impliedRates:     mat.NewVecDense(n, nil),
		penalty:          mat.NewVecDense(n, nil),
	}
}

// step performs one projected gradient update of mixing (P) and sourceRates (nu)
// in place. Both gradients are taken at the pre-update state.
//
//	dP_corr  = 4·A·P·diag(nu)            dnu_corr[k] = 2·(Pᵀ·A·P)[k,k]
//	dP_rate  = U ⊗ nu                    dnu_rate    = Uᵀ·P
//	P  -= fast·dP_corr  + slow·dP_rate   then clip to [0, 1]
//	nu -= fast·dnu_corr + slow·dnu_rate  then clip to [0, +Inf)
//
// U is the one-sided rate penalty: 1 where P·nu exceeds R, else 0.
func (d *descent) step(mixing *mat.Dense, sourceRates, targets *mat.VecDense, correlations mat.Matrix, fast, slow float64) {
	n := d.n

	contract(d.implied, d.weighted, mixing, sourceRates)
	d.correlationError.Sub(d.implied, correlations)
	for i := 0; i < n; i++ {
		d.correlationError.Set(i, i, 0) // self-correlation is not optimized
	}

	// Correlation-matching term.
	d.mixingGrad.Mul(d.correlationError, d.weighted)
	d.mixingGrad.Scale(4*fast, d.mixingGrad)
	d.errorMixing.Mul(d.correlationError, mixing)
	for k := 0; k < n; k++ {
		d.sourceGrad.SetVec(k, 2*fast*mat.Dot(mixing.ColView(k), d.errorMixing.ColView(k)))
	}

	// Rate-feasibility term.
	d.impliedRates.MulVec(mixing, sourceRates)
	d.violations = 0
	for i := 0; i < n; i++ {
		if d.impliedRates.AtVec(i) > targets.AtVec(i) {
			d.penalty.SetVec(i, 1)
			d.violations++
		} else {
			d.penalty.SetVec(i, 0)
		}
	}
	d.mixingRateGrad.Outer(slow, d.penalty, sourceRates)
	d.sourceRateGrad.MulVec(mixing.T(), d.penalty)

	d.mixingGrad.Add(d.mixingGrad, d.mixingRateGrad)
	d.sourceGrad.AddScaledVec(d.sourceGrad, slow, d.sourceRateGrad)

	mixing.Sub(mixing, d.mixingGrad)
	sourceRates.SubVec(sourceRates, d.sourceGrad)

	// Projection.
	mixing.Apply(func(_, _ int, v float64) float64 {
		return clip(v, 0, 1)
	}, mixing)
	for k := 0; k < n; k++ {
		if sourceRates.AtVec(k) < 0 {
			sourceRates.SetVec(k, 0)
		}
	}
}

// complete appends the residual sources: SourceRates = [nu, R − P·nu] and
// Mixing = [P | I]. It fails when any completed rate is negative or NaN.
func complete(mixing *mat.Dense, sourceRates, targets *mat.VecDense) (*Solution, error) {
	n := targets.Len()

	var implied mat.VecDense
	implied.MulVec(mixing, sourceRates)

	rates := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		rates[i] = sourceRates.AtVec(i)
		rates[n+i] = targets.AtVec(i) - implied.AtVec(i)
	}

	full := mat.NewDense(n, 2*n, nil)
	full.Slice(0, n, 0, n).(*mat.Dense).Copy(mixing)
	for i := 0; i < n; i++ {
		full.Set(i, n+i, 1)
	}

	for _, r := range rates {
		if r < 0 || math.IsNaN(r) {
			return nil, &OptimizationError{Rates: rates}
		}
	}

	return &Solution{Mixing: full, SourceRates: rates}, nil
}

// contract computes dst = mixing·diag(rates)·mixingᵀ, leaving
// mixing·diag(rates) in weighted. Empty receivers are sized on first use.
func contract(dst, weighted *mat.Dense, mixing mat.Matrix, rates mat.Vector) {
	weighted.Apply(func(_, k int, v float64) float64 {
		return v * rates.AtVec(k)
	}, mixing)
	dst.Mul(weighted, mixing.T())
}

func identity(n int) *mat.Dense {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	out := mat.NewDense(n, n, nil)
	out.Copy(mat.NewDiagDense(n, ones))

	return out
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
