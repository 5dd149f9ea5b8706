// Package errs defines sentinel errors shared across mmfit packages.
//
// All errors are wrapped with fmt.Errorf("%w: ...") at the failure site so
// callers can match them with errors.Is while still receiving contextual
// detail in the message.
package errs

import "errors"

// Table construction and access errors.
var (
	// ErrInvalidDimensions indicates a table was constructed with a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("invalid table dimensions")

	// ErrRowOutOfRange indicates a row index outside the declared row count.
	ErrRowOutOfRange = errors.New("row index out of range")

	// ErrColumnOutOfRange indicates a column index outside the declared
	// value-column count.
	ErrColumnOutOfRange = errors.New("column index out of range")
)

// Fit failure taxonomy. Every per-series fit failure unwraps to exactly one
// of these sentinels.
var (
	// ErrInsufficientData indicates a series carried fewer usable points
	// than the fit requires (two for both the hyperbolic and the
	// linearized fit).
	ErrInsufficientData = errors.New("insufficient data points")

	// ErrNonConvergence indicates the iterative solver exhausted its
	// iteration budget without meeting the convergence tolerance.
	ErrNonConvergence = errors.New("fit did not converge")

	// ErrInvalidInput indicates the solver could not evaluate the model or
	// a step system on the given data (non-finite residuals, singular
	// normal equations at the seed).
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDegenerateRegression indicates the linearized fit received points
	// whose transformed x values carry no spread, leaving the slope
	// undefined.
	ErrDegenerateRegression = errors.New("degenerate regression")
)

// Rendering errors.
var (
	// ErrNoResults indicates a renderer was invoked without any fitted
	// results to draw.
	ErrNoResults = errors.New("no results to render")
)
