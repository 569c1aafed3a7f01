// Package cospit generates correlated spike trains with Brette's (2009)
// mixture method (https://doi.org/10.1162/neco.2009.12-07-657).
//
// 🚀 What is cospit?
//
//	A small, pure-Go kernel that turns target rates and pairwise Pearson
//	correlation coefficients into Poisson spike trains with those statistics:
//		• mixture/      the solver: latent source rates + mixing probabilities
//		• spiketrain/   Poisson trains, Bernoulli thinning, merging, RNG policy
//		• correlation/  binary binning and Pearson estimation for verification
//
// Pipeline:
//
//	pccs ──TotalCorrelation──▶ C ──mixture.Solve──▶ (P, nu)
//	nu ──spiketrain.Poisson──▶ sources ──spiketrain.Mix(P[i])──▶ target i
//
// Coefficients are given in row-major upper-triangle order: for n trains,
// (0,1), (0,2), ..., (0,n-1), (1,2), ..., (n-2,n-1). CalculatePearsonCorrelations
// reports measured coefficients in the same order, so the two can be compared
// element by element.
//
// Randomness is always injected (a math/rand/v2 Source); the same seed gives
// the same trains. Sources are drawn first in source order, then each target
// is mixed in target order. A Generator solves once and can then draw any
// number of realisations, sequentially or in parallel (GenerateBatches).
//
// The correlation targets are met only approximately by the solver, and then
// only in expectation by the random draws: always re-measure the output.
//
//	go get github.com/katalvlaran/cospit
package cospit
