// Package spiketrain generates and thins Poisson spike trains.
//
// A spike train is an ordered sequence of event timestamps inside
// [0, duration). The package provides the two leaf collaborators of the
// mixture method:
//
//   - Poisson draws an independent homogeneous Poisson train.
//   - Sample and Mix thin trains by a per-event Bernoulli trial and merge the
//     survivors into one sorted train.
//
// Randomness is always injected as a math/rand/v2 Source. Nothing in this
// package touches the process-wide generator: a nil Source resolves to the
// deterministic default stream (see NewSource), so every result is
// reproducible for a fixed seed.
//
// Draw order:
//
//	Poisson: one Poisson count, then one uniform per event.
//	Sample:  one Bernoulli trial per input event, in input order.
//	Mix:     Sample for trains[0], trains[1], ... on the same Source.
//
// Concurrency:
//
//	All functions are pure apart from consuming the Source. A *rand.Rand is
//	NOT goroutine-safe; give each goroutine its own stream (DeriveSource).
package spiketrain
