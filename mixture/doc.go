// Package mixture implements Brette's (2009) mixture method for correlated
// spike trains.
//
// Given target rates R (one per target train) and a symmetric "total
// correlation" matrix C with zero diagonal, Solve finds non-negative latent
// source rates nu and a mixing-probability matrix P such that thinning source
// k with probability P[i,k] and merging the survivors yields a target train i
// with rate R[i] and pairwise co-occurrence rates close to C[i,j]:
//
//	rate(i)    = Σ_k P[i,k]·nu[k]          (exact after completion)
//	corr(i, j) = Σ_k P[i,k]·P[j,k]·nu[k]   (best effort, gradient descent)
//
// Total correlation is Brette's unnormalised convention; TotalCorrelation
// converts a Pearson coefficient into it and CorrelationMatrix builds the
// symmetric matrix from an upper-triangle coefficient list.
//
// Under the hood, Solve runs a fixed number of projected gradient steps on a
// two-term loss (correlation matching plus a one-sided rate-feasibility term),
// then appends one residual source per target so the rates match exactly.
// A negative residual means the request was infeasible within the given
// steps; Solve reports it as an *OptimizationError rather than clamping.
//
// Configuration follows the functional-options pattern (WithTrainingSteps,
// WithLearningRateScale, WithEpsilon, WithLogger, WithLogEvery). All
// computations are deterministic and allocate only per call; a Solution is
// read-only and safe to share between goroutines.
package mixture
