package fit

import (
	"errors"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/mmfit/dataset"
	"github.com/arloliu/mmfit/errs"
	"github.com/arloliu/mmfit/internal/options"
)

// Engine fits prepared series to the Michaelis-Menten model. It holds
// solver configuration only, with no per-series or cross-call mutable state,
// so a single Engine is safe for concurrent use and every fit invocation
// is independent.
type Engine struct {
	maxIterations int
	tolerance     float64
	concurrency   int
	guess         GuessFunc
}

// NewEngine creates an Engine.
//
// Parameters:
//   - opts: Optional solver configuration (iteration budget, tolerance,
//     batch concurrency, seed heuristic)
//
// Returns:
//   - *Engine: New engine ready for fitting
//   - error: Configuration error if invalid options provided
func NewEngine(opts ...Option) (*Engine, error) {
	engine := &Engine{
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
		concurrency:   1,
		guess:         defaultGuess,
	}

	if err := options.Apply(engine, opts...); err != nil {
		return nil, err
	}

	return engine, nil
}

// defaultGuess is the deterministic seed heuristic: Vmax₀ is the largest
// included velocity, Km₀ the mean included substrate concentration.
func defaultGuess(s, v []float64) (vmax0, km0 float64) {
	return floats.Max(v), stat.Mean(s, nil)
}

// FitSeries fits the Michaelis-Menten model to the series' included
// observations and returns a fresh FitResult.
//
// On failure the returned error is a *FitFailure scoped to this series;
// it unwraps to the matching sentinel in the errs package. Excluded
// observations never influence the estimates; their residuals are
// evaluated against the accepted fit for diagnostics.
func (e *Engine) FitSeries(series dataset.Series) (*FitResult, error) {
	if len(series.Included) < dataset.MinSeriesPoints {
		return nil, newFailure(series, FailureInsufficientData)
	}

	s := make([]float64, len(series.Included))
	v := make([]float64, len(series.Included))
	for i, obs := range series.Included {
		s[i] = obs.S
		v[i] = obs.V
	}

	vmax0, km0 := e.guess(s, v)

	sol, err := levmar(s, v, vmax0, km0, e.maxIterations, e.tolerance)
	if err != nil {
		if errors.Is(err, errs.ErrNonConvergence) {
			return nil, newFailure(series, FailureNonConvergence)
		}

		return nil, newFailure(series, FailureInvalidInput)
	}

	predicted := make([]float64, len(s))
	residuals := make([]float64, len(s))
	for i := range s {
		predicted[i] = MichaelisMenten(sol.vmax, sol.km, s[i])
		residuals[i] = v[i] - predicted[i]
	}

	excludedResiduals := make([]float64, len(series.Excluded))
	for i, obs := range series.Excluded {
		excludedResiduals[i] = obs.V - MichaelisMenten(sol.vmax, sol.km, obs.S)
	}

	vmaxSE, kmSE := sol.standardErrors()

	return &FitResult{
		Label:             series.Label,
		SeriesID:          series.ID,
		Vmax:              sol.vmax,
		Km:                sol.km,
		VmaxSE:            vmaxSE,
		KmSE:              kmSE,
		VmaxRSE:           relativeError(vmaxSE, sol.vmax),
		KmRSE:             relativeError(kmSE, sol.km),
		RSquared:          rSquared(v, predicted),
		RMSE:              rmse(v, predicted),
		Predicted:         predicted,
		Residuals:         residuals,
		ExcludedResiduals: excludedResiduals,
		Included:          slices.Clone(series.Included),
		Excluded:          slices.Clone(series.Excluded),
		Iterations:        sol.iterations,
	}, nil
}

// FitBatch fits every series and collects one terminal Outcome per
// series, in input order. Per-series failures never abort the batch.
//
// The returned BestKm names the series with the smallest strictly
// positive fitted Km; ties keep the first series in input order. It is
// recomputed from scratch on every call and is nil when no series
// qualifies.
func (e *Engine) FitBatch(series []dataset.Series) *BatchResult {
	outcomes := make([]Outcome, len(series))

	if e.concurrency > 1 && len(series) > 1 {
		var group errgroup.Group
		group.SetLimit(e.concurrency)
		for i, s := range series {
			i, s := i, s
			group.Go(func() error {
				outcomes[i] = e.fitOutcome(s)
				return nil
			})
		}
		_ = group.Wait()
	} else {
		for i, s := range series {
			outcomes[i] = e.fitOutcome(s)
		}
	}

	return &BatchResult{
		Outcomes: outcomes,
		BestKm:   scanBestKm(outcomes),
	}
}

func (e *Engine) fitOutcome(series dataset.Series) Outcome {
	out := Outcome{
		Label:    series.Label,
		SeriesID: series.ID,
		Status:   StatusFitting,
	}

	result, err := e.FitSeries(series)
	if err != nil {
		out.Status = StatusFailed
		var failure *FitFailure
		if errors.As(err, &failure) {
			out.Failure = failure
		}

		return out
	}

	out.Status = StatusFitted
	out.Result = result

	return out
}

// scanBestKm walks outcomes in input order, so tie-breaking is identical
// whether the batch ran serially or concurrently.
func scanBestKm(outcomes []Outcome) *BestKm {
	var best *BestKm
	for _, out := range outcomes {
		if out.Status != StatusFitted || out.Result.Km <= 0 {
			continue
		}
		if best == nil || out.Result.Km < best.Km {
			best = &BestKm{
				Label:    out.Label,
				SeriesID: out.SeriesID,
				Km:       out.Result.Km,
			}
		}
	}

	return best
}

// FitLinearBatch performs the linearized fit on every series and collects
// one terminal LinearOutcome per series, in input order. Per-series
// failures never abort the batch.
func (e *Engine) FitLinearBatch(series []dataset.Series) *LinearBatchResult {
	outcomes := make([]LinearOutcome, len(series))

	if e.concurrency > 1 && len(series) > 1 {
		var group errgroup.Group
		group.SetLimit(e.concurrency)
		for i, s := range series {
			i, s := i, s
			group.Go(func() error {
				outcomes[i] = e.fitLinearOutcome(s)
				return nil
			})
		}
		_ = group.Wait()
	} else {
		for i, s := range series {
			outcomes[i] = e.fitLinearOutcome(s)
		}
	}

	return &LinearBatchResult{Outcomes: outcomes}
}

func (e *Engine) fitLinearOutcome(series dataset.Series) LinearOutcome {
	out := LinearOutcome{
		Label:    series.Label,
		SeriesID: series.ID,
		Status:   StatusFitting,
	}

	result, err := e.FitLinearSeries(series)
	if err != nil {
		out.Status = StatusFailed
		var failure *FitFailure
		if errors.As(err, &failure) {
			out.Failure = failure
		}

		return out
	}

	out.Status = StatusFitted
	out.Result = result

	return out
}
