// Package mmfit estimates Michaelis-Menten kinetic parameters from enzyme
// assay data.
//
// Mmfit takes a table of substrate concentrations and per-series reaction
// velocities (e.g., one column per enzyme variant), fits the saturation
// model v = Vmax*S/(Km+S) to every series, and reports the estimated
// parameters with their uncertainties.
//
// # Core Features
//
//   - Nonlinear least-squares fitting (Levenberg-Marquardt) of Vmax and Km
//   - Linearized Lineweaver-Burk regression with back-propagated errors
//   - Standard errors, relative errors, R² and RMSE per fitted series
//   - Row, column and point exclusions without mutating the raw table
//   - Batch fitting with optional bounded concurrency
//   - Best-Km tracking across every batch
//   - Hash-based series identification (64-bit xxHash64) for stable lookups
//   - PNG rendering of kinetic curves, double-reciprocal plots and residuals
//
// # Basic Usage
//
// Fitting velocity columns:
//
//	import "github.com/arloliu/mmfit"
//
//	// Build a table: substrate column plus two velocity columns
//	table, _ := dataset.FromValues(
//	    []float64{0.25, 0.5, 1, 2, 4, 8},
//	    [][]float64{
//	        {0.33, 0.50, 0.67, 0.80, 0.89, 0.94},
//	        {0.12, 0.22, 0.40, 0.67, 1.00, 1.33},
//	    },
//	)
//	table.SetLabel(0, "wild type")
//	table.SetLabel(1, "mutant")
//
//	// Exclude an outlier from the second column
//	sel := dataset.NewSelection(table.Columns())
//	sel.ExcludePoint(1, 5)
//
//	batch, _ := mmfit.Fit(table, sel)
//	for _, res := range batch.Results() {
//	    fmt.Println(res.Summary())
//	}
//
// Rendering the fitted curves:
//
//	renderer, _ := mmfit.NewRenderer()
//	png, _ := renderer.Kinetics(batch.Results())
//	os.WriteFile("kinetics.png", png, 0o644)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the dataset,
// fit and plot packages, simplifying the most common use cases. For
// fine-grained control (custom initial guesses, per-series fitting,
// chart dimensions), use those packages directly.
package mmfit

import (
	"github.com/arloliu/mmfit/dataset"
	"github.com/arloliu/mmfit/fit"
	"github.com/arloliu/mmfit/internal/hash"
	"github.com/arloliu/mmfit/plot"
)

// NewTable creates an empty assay table with the given number of rows and
// velocity columns.
//
// Cells hold raw text and are only interpreted when series are prepared,
// so the table can absorb pasted data as-is, including blank and
// non-numeric cells.
//
// Parameters:
//   - rows: Number of observation rows (must be positive)
//   - cols: Number of velocity columns (must be positive)
//
// Returns:
//   - *dataset.Table: The created table with every row included.
//   - error: An error if either dimension is not positive.
func NewTable(rows, cols int) (*dataset.Table, error) {
	return dataset.NewTable(rows, cols)
}

// FromValues creates a fully populated assay table from numeric slices.
//
// This is the quickest way to get programmatic data into the pipeline: s
// holds the substrate concentrations and cols holds one velocity slice per
// column, each the same length as s.
//
// Parameters:
//   - s: Substrate concentrations, one per row
//   - cols: Velocity columns, indexed [col][row]
//
// Returns:
//   - *dataset.Table: The created table.
//   - error: An error if any column length differs from len(s).
//
// Example:
//
//	table, err := mmfit.FromValues(
//	    []float64{0.5, 1, 2, 4},
//	    [][]float64{{0.4, 0.6, 0.8, 0.9}},
//	)
func FromValues(s []float64, cols [][]float64) (*dataset.Table, error) {
	return dataset.FromValues(s, cols)
}

// NewSelection creates a selection sized for a table with the given number
// of velocity columns. Every column starts active with no excluded points.
func NewSelection(cols int) dataset.Selection {
	return dataset.NewSelection(cols)
}

// NewEngine creates a fit engine with custom options.
//
// Use this instead of Fit or FitLinear when fitting the same configuration
// repeatedly, or when single-series fitting is needed.
//
// Parameters:
//   - opts: Optional configuration functions (see fit.Option)
//
// Returns:
//   - *fit.Engine: The created engine.
//   - error: An error if the configuration is invalid.
//
// Available options:
//   - fit.WithMaxIterations(n)
//   - fit.WithTolerance(tol)
//   - fit.WithConcurrency(n)
//   - fit.WithInitialGuess(fn)
func NewEngine(opts ...fit.Option) (*fit.Engine, error) {
	return fit.NewEngine(opts...)
}

// Fit prepares every active series of the table under the selection and
// fits the Michaelis-Menten model to each with nonlinear least squares.
//
// Parameters:
//   - table: Assay table holding the substrate and velocity columns
//   - sel: Column activity and point exclusions to apply
//   - opts: Optional engine configuration (see fit.Option)
//
// Returns:
//   - *fit.BatchResult: Per-series outcomes in column order, plus the
//     smallest positive fitted Km across the batch.
//   - error: An error if the engine configuration is invalid.
//
// Failures are per-series: a column with too few points or a fit that does
// not converge yields a failed outcome without affecting the others.
//
// Example:
//
//	batch, err := mmfit.Fit(table, sel, fit.WithConcurrency(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, res := range batch.Results() {
//	    fmt.Println(res.Summary())
//	}
func Fit(table *dataset.Table, sel dataset.Selection, opts ...fit.Option) (*fit.BatchResult, error) {
	engine, err := fit.NewEngine(opts...)
	if err != nil {
		return nil, err
	}

	return engine.FitBatch(table.Prepare(sel)), nil
}

// FitLinear prepares every active series of the table under the selection
// and fits each with ordinary least squares in double-reciprocal
// (Lineweaver-Burk) coordinates.
//
// Kinetic parameters are derived from the line: Vmax = 1/intercept and
// Km = slope/intercept, with uncertainties propagated from the coefficient
// errors. Only observations with nonzero S and V contribute, since the
// reciprocal transform is undefined elsewhere.
//
// Parameters:
//   - table: Assay table holding the substrate and velocity columns
//   - sel: Column activity and point exclusions to apply
//   - opts: Optional engine configuration (see fit.Option)
//
// Returns:
//   - *fit.LinearBatchResult: Per-series outcomes in column order.
//   - error: An error if the engine configuration is invalid.
//
// Example:
//
//	batch, err := mmfit.FitLinear(table, sel)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, res := range batch.Results() {
//	    fmt.Println(res.Summary())
//	}
func FitLinear(table *dataset.Table, sel dataset.Selection, opts ...fit.Option) (*fit.LinearBatchResult, error) {
	engine, err := fit.NewEngine(opts...)
	if err != nil {
		return nil, err
	}

	return engine.FitLinearBatch(table.Prepare(sel)), nil
}

// NewRenderer creates a PNG chart renderer with custom options.
//
// Parameters:
//   - opts: Optional configuration functions (see plot.Option)
//
// Returns:
//   - *plot.Renderer: The created renderer.
//   - error: An error if the configuration is invalid.
//
// Available options:
//   - plot.WithDimensions(width, height)
//   - plot.WithCurveSamples(n)
func NewRenderer(opts ...plot.Option) (*plot.Renderer, error) {
	return plot.NewRenderer(opts...)
}

// SeriesID converts a series label to its 64-bit hash identifier.
//
// Mmfit uses xxHash64 to identify series independently of their column
// position, so results can be matched back to labels after columns are
// reordered or a table is re-prepared.
//
// The hash function guarantees:
//   - Deterministic: same label always produces same output
//   - Collision-resistant: extremely low probability of collisions
//   - Fast: ~1-2 ns per hash on modern CPUs
//
// Example:
//
//	id := mmfit.SeriesID("wild type")
//	res := batch.ResultByID(id)
func SeriesID(label string) uint64 {
	return hash.SeriesID(label)
}
