package fit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRSquared verifies the coefficient of determination on known values.
func TestRSquared(t *testing.T) {
	t.Run("PerfectFit", func(t *testing.T) {
		observed := []float64{1, 2, 3, 4}
		require.Equal(t, 1.0, rSquared(observed, observed))
	})

	t.Run("KnownResiduals", func(t *testing.T) {
		observed := []float64{1, 2, 3}
		predicted := []float64{1, 2, 4}
		// SS_res = 1, SS_tot = 2.
		require.InDelta(t, 0.5, rSquared(observed, predicted), 1e-12)
	})

	t.Run("NoVariance", func(t *testing.T) {
		observed := []float64{2, 2, 2}
		predicted := []float64{1.9, 2.0, 2.1}
		require.Zero(t, rSquared(observed, predicted), "zero observed variance should define R² as 0")
	})

	t.Run("Empty", func(t *testing.T) {
		require.Zero(t, rSquared(nil, nil))
	})
}

// TestRMSE verifies the root mean squared error on known values.
func TestRMSE(t *testing.T) {
	observed := []float64{1, 2, 3, 4}
	predicted := []float64{1, 2, 3, 6}
	// One residual of 2 over four points: √(4/4) = 1.
	require.InDelta(t, 1.0, rmse(observed, predicted), 1e-12)
	require.Zero(t, rmse(nil, nil))
}

// TestRelativeError verifies the percentage-of-estimate rules, including
// the zero-estimate and infinite-error edge cases.
func TestRelativeError(t *testing.T) {
	t.Run("Finite", func(t *testing.T) {
		rse := relativeError(Finite(0.5), 2.0)
		require.True(t, rse.IsFinite())
		require.InDelta(t, 25.0, rse.Float(), 1e-12)
	})

	t.Run("NegativeEstimate", func(t *testing.T) {
		rse := relativeError(Finite(0.5), -2.0)
		require.True(t, rse.IsFinite())
		require.InDelta(t, 25.0, rse.Float(), 1e-12, "relative error should use the magnitude of the estimate")
	})

	t.Run("ZeroEstimate", func(t *testing.T) {
		require.False(t, relativeError(Finite(0.5), 0).IsFinite())
	})

	t.Run("InfiniteStandardError", func(t *testing.T) {
		require.False(t, relativeError(Infinite(), 2.0).IsFinite())
	})
}
