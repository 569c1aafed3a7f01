// SPDX-License-Identifier: MIT

// Package mixture: functional configuration for the solver. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective settings.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package mixture

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLearningRateScale scales both gradient step sizes.
	// The slow (rate) step is scale/n, the fast (correlation) step is scale/n².
	DefaultLearningRateScale = 1e-4

	// DefaultTrainingSteps is the fixed number of gradient iterations.
	DefaultTrainingSteps = 20000

	// DefaultEpsilon is the tolerance for symmetry and zero-diagonal checks.
	DefaultEpsilon = 1e-9

	// DefaultLogEvery disables per-step progress records.
	DefaultLogEvery = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLearningRateInvalid = "mixture: WithLearningRateScale: scale must be finite and > 0"
	panicTrainingStepsNeg    = "mixture: WithTrainingSteps: steps must be >= 0"
	panicEpsilonInvalid      = "mixture: WithEpsilon: eps must be finite, non-negative"
	panicLogEveryNeg         = "mixture: WithLogEvery: interval must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	learningRateScale float64      // > 0; DefaultLearningRateScale
	trainingSteps     int          // >= 0; DefaultTrainingSteps
	eps               float64      // >= 0; DefaultEpsilon
	logger            *slog.Logger // nil ⇒ silent
	logEvery          int          // >= 0; DefaultLogEvery
}

// WithLearningRateScale sets the scale of both learning rates.
// Panics unless scale is finite and strictly positive.
func WithLearningRateScale(scale float64) Option {
	if !(scale > 0) || math.IsInf(scale, 0) {
		panic(panicLearningRateInvalid)
	}

	return func(o *Options) { o.learningRateScale = scale }
}

// WithTrainingSteps sets the number of gradient iterations. Zero skips the
// descent entirely: the solution is then the identity mixing with all rates
// on the learned sources and zero residuals.
// Panics when steps < 0.
func WithTrainingSteps(steps int) Option {
	if steps < 0 {
		panic(panicTrainingStepsNeg)
	}

	return func(o *Options) { o.trainingSteps = steps }
}

// WithEpsilon sets the tolerance used when validating the correlation matrix.
// Panics unless eps is finite and non-negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger routes solver progress to l. A nil logger silences the solver.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithLogEvery emits a debug record every k gradient steps (0 disables them).
// Completion and failure records are emitted regardless when a logger is set.
// Panics when k < 0.
func WithLogEvery(k int) Option {
	if k < 0 {
		panic(panicLogEveryNeg)
	}

	return func(o *Options) { o.logEvery = k }
}

// NewOptions resolves opts on top of the defaults. It is exported so callers
// can inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// LearningRateScale returns the effective learning-rate scale.
func (o Options) LearningRateScale() float64 { return o.learningRateScale }

// TrainingSteps returns the effective number of gradient steps.
func (o Options) TrainingSteps() int { return o.trainingSteps }

// Epsilon returns the effective validation tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// gatherOptions applies user-provided setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		learningRateScale: DefaultLearningRateScale,
		trainingSteps:     DefaultTrainingSteps,
		eps:               DefaultEpsilon,
		logEvery:          DefaultLogEvery,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
