package fit

import (
	"fmt"
	"math"

	"github.com/arloliu/mmfit/internal/options"
)

const (
	// DefaultMaxIterations is the default solver iteration budget.
	DefaultMaxIterations = 200

	// DefaultTolerance is the default relative convergence tolerance,
	// the classic MINPACK least-squares default.
	DefaultTolerance = 1.49012e-08
)

// GuessFunc produces the solver seed (Vmax₀, Km₀) from a series' included
// substrate concentrations and velocities. The slices are never empty.
type GuessFunc func(s, v []float64) (vmax0, km0 float64)

// Option represents a functional option for configuring the Engine.
type Option = options.Option[*Engine]

// Configuration setter methods.

func (e *Engine) setMaxIterations(n int) error {
	if n <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", n)
	}
	e.maxIterations = n

	return nil
}

func (e *Engine) setTolerance(tol float64) error {
	if math.IsNaN(tol) || tol <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", tol)
	}
	e.tolerance = tol

	return nil
}

func (e *Engine) setConcurrency(n int) error {
	if n < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", n)
	}
	e.concurrency = n

	return nil
}

func (e *Engine) setGuess(guess GuessFunc) error {
	if guess == nil {
		return fmt.Errorf("guess function must not be nil")
	}
	e.guess = guess

	return nil
}

// WithMaxIterations sets the solver iteration budget. Exhausting the
// budget fails the series with NonConvergence.
func WithMaxIterations(n int) Option {
	return options.New(func(e *Engine) error {
		return e.setMaxIterations(n)
	})
}

// WithTolerance sets the relative convergence tolerance of the nonlinear
// solver.
func WithTolerance(tol float64) Option {
	return options.New(func(e *Engine) error {
		return e.setTolerance(tol)
	})
}

// WithConcurrency sets the number of series fitted in parallel by the
// batch operations. Output ordering and best-Km tie-breaking are
// identical to the serial run at any setting.
func WithConcurrency(n int) Option {
	return options.New(func(e *Engine) error {
		return e.setConcurrency(n)
	})
}

// WithInitialGuess replaces the seed heuristic of the nonlinear solver.
//
// The default heuristic (Vmax₀ = max velocity, Km₀ = mean substrate
// concentration) is part of the reproducibility contract: the solver runs
// from a single seed with no retries, so changing the heuristic can
// change which series converge. Override it only when the caller knows
// the kinetics better than the default.
func WithInitialGuess(guess GuessFunc) Option {
	return options.New(func(e *Engine) error {
		return e.setGuess(guess)
	})
}
