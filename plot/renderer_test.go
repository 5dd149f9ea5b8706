package plot

import (
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/mmfit/dataset"
	"github.com/arloliu/mmfit/fit"
	"github.com/arloliu/mmfit/internal/hash"
)

// ============================================================================
// Test Helpers
// ============================================================================

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// kineticSeries builds a noise-free series following the given parameters.
func kineticSeries(label string, vmax, km float64) dataset.Series {
	concentrations := []float64{0.25, 0.5, 1, 2, 4, 8}

	series := dataset.Series{Label: label, ID: hash.SeriesID(label)}
	for i, s := range concentrations {
		obs := dataset.Observation{Row: i, S: s, V: fit.MichaelisMenten(vmax, km, s)}
		series.Included = append(series.Included, obs)
		series.TransformIncluded = append(series.TransformIncluded, obs)
	}

	return series
}

// withExcludedPoint appends one excluded observation to the series.
func withExcludedPoint(series dataset.Series) dataset.Series {
	obs := dataset.Observation{Row: len(series.Included), S: 16, V: 0.2}
	series.Excluded = append(series.Excluded, obs)
	series.TransformExcluded = append(series.TransformExcluded, obs)

	return series
}

// createTestResults fits two noise-free series through the nonlinear engine.
func createTestResults(t *testing.T) *fit.BatchResult {
	t.Helper()

	engine, err := fit.NewEngine()
	require.NoError(t, err)

	batch := engine.FitBatch([]dataset.Series{
		kineticSeries("v0", 1.0, 0.5),
		withExcludedPoint(kineticSeries("v1", 2.0, 4.0)),
	})
	require.Len(t, batch.Results(), 2)

	return batch
}

// createTestLinearResults fits the same series through the linearized path.
func createTestLinearResults(t *testing.T) *fit.LinearBatchResult {
	t.Helper()

	engine, err := fit.NewEngine()
	require.NoError(t, err)

	batch := engine.FitLinearBatch([]dataset.Series{
		kineticSeries("v0", 1.0, 0.5),
		withExcludedPoint(kineticSeries("v1", 2.0, 4.0)),
	})
	require.Len(t, batch.Results(), 2)

	return batch
}

// TestNewRenderer_Defaults verifies the default rendering configuration.
func TestNewRenderer_Defaults(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)
	require.Equal(t, DefaultWidth, renderer.width)
	require.Equal(t, DefaultHeight, renderer.height)
	require.Equal(t, DefaultCurveSamples, renderer.curveSamples)
}

// TestNewRenderer_Options verifies option application and validation.
func TestNewRenderer_Options(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		renderer, err := NewRenderer(WithDimensions(1024, 768), WithCurveSamples(50))
		require.NoError(t, err)
		require.Equal(t, 1024, renderer.width)
		require.Equal(t, 768, renderer.height)
		require.Equal(t, 50, renderer.curveSamples)
	})

	t.Run("InvalidDimensions", func(t *testing.T) {
		_, err := NewRenderer(WithDimensions(0, 600))
		require.Error(t, err)

		_, err = NewRenderer(WithDimensions(800, -1))
		require.Error(t, err)
	})

	t.Run("InvalidCurveSamples", func(t *testing.T) {
		_, err := NewRenderer(WithCurveSamples(1))
		require.Error(t, err)
	})
}

// TestLinspace verifies sample counts, exact endpoints and monotonicity.
func TestLinspace(t *testing.T) {
	xs := linspace(0, 1.2, 5)
	require.Len(t, xs, 5)
	require.Equal(t, 0.0, xs[0])
	require.Equal(t, 1.2, xs[4], "the upper endpoint should be hit exactly")
	for i := 1; i < len(xs); i++ {
		require.Greater(t, xs[i], xs[i-1])
	}
	require.InDelta(t, 0.3, xs[1], 1e-12)
	require.InDelta(t, 0.9, xs[3], 1e-12)

	two := linspace(-1, 1, 2)
	require.Equal(t, []float64{-1, 1}, two)
}

// TestSeriesColor verifies palette assignment and cycling.
func TestSeriesColor(t *testing.T) {
	require.Equal(t, set2Palette[0], seriesColor(0))
	require.Equal(t, set2Palette[7], seriesColor(7))
	require.Equal(t, set2Palette[0], seriesColor(8), "colors should cycle past the palette size")

	half := faded(seriesColor(2))
	require.Equal(t, uint8(128), half.A)
	require.Equal(t, set2Palette[2].R, half.R)
}

// TestLegendLabel verifies the single-line legend format.
func TestLegendLabel(t *testing.T) {
	require.Equal(t, "Fit v0 (R²=0.998)", legendLabel("v0", 0.9984))
}

// TestNamedSeries verifies that only named series reach the legend.
func TestNamedSeries(t *testing.T) {
	series := []chart.Series{
		chart.ContinuousSeries{Name: "fitted", XValues: []float64{0, 1}, YValues: []float64{0, 1}},
		chart.ContinuousSeries{XValues: []float64{0, 1}, YValues: []float64{1, 0}},
	}

	named := namedSeries(series)
	require.Len(t, named, 1)
	require.Equal(t, "fitted", named[0].GetName())
}
