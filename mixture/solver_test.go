package mixture_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/cospit/mixture"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// mustCorrelations builds a total-correlation matrix or fails the test.
func mustCorrelations(t *testing.T, rates, pccs []float64) *mat.SymDense {
	t.Helper()
	c, err := mixture.CorrelationMatrix(rates, pccs)
	require.NoError(t, err)

	return c
}

// requireValidSolution checks the structural invariants of any solution.
func requireValidSolution(t *testing.T, sol *mixture.Solution, rates []float64) {
	t.Helper()
	n := len(rates)
	require.Equal(t, n, sol.Targets())
	require.Equal(t, 2*n, sol.Sources())

	r, c := sol.Mixing.Dims()
	require.Equal(t, n, r)
	require.Equal(t, 2*n, c)
	for i := 0; i < n; i++ {
		for k := 0; k < 2*n; k++ {
			p := sol.Mixing.At(i, k)
			require.GreaterOrEqual(t, p, 0.0)
			require.LessOrEqual(t, p, 1.0)
			if k >= n {
				// residual block is the identity
				want := 0.0
				if k-n == i {
					want = 1
				}
				require.Equal(t, want, p)
			}
		}
	}
	for _, nu := range sol.SourceRates {
		require.GreaterOrEqual(t, nu, 0.0)
	}
	require.InDeltaSlice(t, rates, sol.ImpliedRates(), 1e-9)
}

// TestSolve_ZeroSteps returns [I | I] with all rate on the learned sources.
func TestSolve_ZeroSteps(t *testing.T) {
	rates := []float64{5, 7, 11}
	sol, err := mixture.Solve(rates, mustCorrelations(t, rates, []float64{0.1, 0.2, 0.3}),
		mixture.WithTrainingSteps(0))
	require.NoError(t, err)
	requireValidSolution(t, sol, rates)

	require.Equal(t, []float64{5, 7, 11, 0, 0, 0}, sol.SourceRates)
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			want := 0.0
			if i == k {
				want = 1
			}
			require.Equal(t, want, sol.Mixing.At(i, k))
		}
	}
}

// TestSolve_ZeroCorrelation keeps the mixing at the identity: with no target
// correlation and exact rates both gradient terms vanish.
func TestSolve_ZeroCorrelation(t *testing.T) {
	rates := []float64{10, 25, 40, 3}
	sol, err := mixture.Solve(rates, mustCorrelations(t, rates, make([]float64, 6)),
		mixture.WithTrainingSteps(500))
	require.NoError(t, err)
	requireValidSolution(t, sol, rates)

	learned := sol.Mixing.Slice(0, 4, 0, 4)
	require.True(t, mat.EqualApprox(learned, mat.NewDiagDense(4, []float64{1, 1, 1, 1}), 1e-12))
	require.InDeltaSlice(t, []float64{10, 25, 40, 3, 0, 0, 0, 0}, sol.SourceRates, 1e-9)
}

// TestSolve_MatchesFeasibleTargets checks the realised correlations on a
// feasible three-train request with the default schedule.
func TestSolve_MatchesFeasibleTargets(t *testing.T) {
	rates := []float64{20, 30, 40}
	pccs := []float64{0.1, 0.2, 0.15}
	sol, err := mixture.Solve(rates, mustCorrelations(t, rates, pccs))
	require.NoError(t, err)
	requireValidSolution(t, sol, rates)

	implied := sol.ImpliedCorrelations()
	k := 0
	for i := 0; i < 3; i++ {
		require.Equal(t, 0.0, implied.At(i, i))
		for j := i + 1; j < 3; j++ {
			got := implied.At(i, j) / math.Sqrt(rates[i]*rates[j])
			require.InDelta(t, pccs[k], got, 1e-4, "pair (%d,%d)", i, j)
			k++
		}
	}
}

// TestSolve_InfeasibleFails reports an OptimizationError instead of clamping.
// Two 10 Hz trains cannot share 99% of their events through the learned
// sources alone: the residual rates go negative.
func TestSolve_InfeasibleFails(t *testing.T) {
	rates := []float64{10, 10}
	_, err := mixture.Solve(rates, mustCorrelations(t, rates, []float64{0.99}))
	require.ErrorIs(t, err, mixture.ErrOptimizationFailed)

	var oe *mixture.OptimizationError
	require.True(t, errors.As(err, &oe))
	require.Len(t, oe.Rates, 4)
	negative := false
	for _, r := range oe.Rates {
		negative = negative || r < 0
	}
	require.True(t, negative, "rates %v", oe.Rates)
	require.Contains(t, err.Error(), "optimization failed")
}

// TestSolve_InfeasibleFailsAfterOneStep shows failure is deterministic even
// for a single step.
func TestSolve_InfeasibleFailsAfterOneStep(t *testing.T) {
	rates := []float64{10, 10}
	_, err := mixture.Solve(rates, mustCorrelations(t, rates, []float64{0.99}),
		mixture.WithTrainingSteps(1))
	require.ErrorIs(t, err, mixture.ErrOptimizationFailed)
}

// TestSolve_NegativeCorrelationIsUnreachable: thinning shared sources can only
// add co-occurrences, so a negative target leaves the trains independent.
func TestSolve_NegativeCorrelationIsUnreachable(t *testing.T) {
	rates := []float64{20, 30}
	sol, err := mixture.Solve(rates, mustCorrelations(t, rates, []float64{-0.2}),
		mixture.WithTrainingSteps(2000))
	require.NoError(t, err)
	requireValidSolution(t, sol, rates)
	require.InDelta(t, 0.0, sol.ImpliedCorrelations().At(0, 1), 1e-9)
}

// TestSolve_Deterministic runs the same request twice.
func TestSolve_Deterministic(t *testing.T) {
	rates := []float64{15, 25, 35}
	c := mustCorrelations(t, rates, []float64{0.05, 0.1, 0.2})

	a, err := mixture.Solve(rates, c, mixture.WithTrainingSteps(3000))
	require.NoError(t, err)
	b, err := mixture.Solve(rates, c, mixture.WithTrainingSteps(3000))
	require.NoError(t, err)

	require.Equal(t, a.SourceRates, b.SourceRates)
	require.True(t, mat.Equal(a.Mixing, b.Mixing))
}

// TestSolve_ValidationErrors checks input errors surface before any descent.
func TestSolve_ValidationErrors(t *testing.T) {
	_, err := mixture.Solve(nil, nil)
	require.ErrorIs(t, err, mixture.ErrEmptyRates)

	_, err = mixture.Solve([]float64{1, -1}, mat.NewDense(2, 2, nil))
	require.ErrorIs(t, err, mixture.ErrNegativeRate)

	_, err = mixture.Solve([]float64{1, 1}, nil)
	require.ErrorIs(t, err, mixture.ErrNilMatrix)

	_, err = mixture.Solve([]float64{1, 1}, mat.NewDense(3, 3, nil))
	require.ErrorIs(t, err, mixture.ErrDimensionMismatch)

	_, err = mixture.Solve([]float64{1, 1}, mat.NewDense(2, 2, []float64{0, 1, 0.5, 0}))
	require.ErrorIs(t, err, mixture.ErrAsymmetry)

	_, err = mixture.Solve([]float64{1, 1}, mat.NewDense(2, 2, []float64{0.5, 0, 0, 0}))
	require.ErrorIs(t, err, mixture.ErrNonZeroDiagonal)
}

// TestSolve_Logging emits progress and completion records when a logger is set.
func TestSolve_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rates := []float64{20, 30}
	_, err := mixture.Solve(rates, mustCorrelations(t, rates, []float64{0.1}),
		mixture.WithTrainingSteps(3000),
		mixture.WithLogger(logger),
		mixture.WithLogEvery(1000),
	)
	require.NoError(t, err)

	out := buf.String()
	require.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("msg=\"mixture step\"")))
	require.Contains(t, out, "msg=\"mixture solved\"")
	require.Contains(t, out, "correlation_error=")

	buf.Reset()
	_, err = mixture.Solve([]float64{10, 10}, mustCorrelations(t, []float64{10, 10}, []float64{0.99}),
		mixture.WithTrainingSteps(5),
		mixture.WithLogger(logger),
	)
	require.ErrorIs(t, err, mixture.ErrOptimizationFailed)
	require.Contains(t, buf.String(), "msg=\"mixture optimization failed\"")
}

// TestSolution_ImpliedStatistics checks the implied rates and correlations of
// a hand-built solution: corr(0,1) = 0.5·1·4 + 0.25·0.5·8 = 3.
func TestSolution_ImpliedStatistics(t *testing.T) {
	sol := &mixture.Solution{
		Mixing: mat.NewDense(2, 4, []float64{
			0.5, 0.25, 1, 0,
			1, 0.5, 0, 1,
		}),
		SourceRates: []float64{4, 8, 1, 2},
	}

	require.Equal(t, []float64{5, 10}, sol.ImpliedRates())
	require.Equal(t, []float64{0.5, 0.25, 1, 0}, sol.Row(0))

	c := sol.ImpliedCorrelations()
	require.Equal(t, 2, c.SymmetricDim())
	require.InDelta(t, 3.0, c.At(0, 1), 1e-12)
	require.InDelta(t, 3.0, c.At(1, 0), 1e-12)
	require.Equal(t, 0.0, c.At(0, 0))
	require.Equal(t, 0.0, c.At(1, 1))
}
