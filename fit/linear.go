package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/mmfit/dataset"
	"github.com/arloliu/mmfit/errs"
)

// FitLinearSeries performs the Lineweaver-Burk regression for the series:
// ordinary least squares of 1/v on 1/S over the transform-eligible
// included observations, with the kinetics parameters derived from the
// line.
//
// Fewer than two transform-eligible included points fail the series with
// InsufficientData; transformed x values without spread (or any other
// undefined regression) fail it with DegenerateRegression. Both are
// per-series failures, so batch operations skip the series and continue.
func (e *Engine) FitLinearSeries(series dataset.Series) (*LinearFitResult, error) {
	included := transformPoints(series.TransformIncluded)
	if len(included) < dataset.MinSeriesPoints {
		return nil, newFailure(series, FailureInsufficientData)
	}
	excluded := transformPoints(series.TransformExcluded)

	xs := make([]float64, len(included))
	ys := make([]float64, len(included))
	for i, p := range included {
		xs[i] = p.X
		ys[i] = p.Y
	}

	ols, err := solveOLS(xs, ys)
	if err != nil {
		return nil, newFailure(series, FailureDegenerateRegression)
	}

	kin := deriveKinetics(ols)

	predicted := make([]float64, len(xs))
	for i, x := range xs {
		predicted[i] = ols.slope*x + ols.intercept
	}

	return &LinearFitResult{
		Label:       series.Label,
		SeriesID:    series.ID,
		Slope:       ols.slope,
		Intercept:   ols.intercept,
		SlopeSE:     ols.slopeSE,
		InterceptSE: ols.interceptSE,
		Vmax:        kin.vmax,
		Km:          kin.km,
		VmaxSE:      kin.vmaxSE,
		KmSE:        kin.kmSE,
		VmaxRSE:     kin.vmaxRSE,
		KmRSE:       kin.kmRSE,
		XIntercept:  kin.xIntercept,
		RSquared:    rSquared(ys, predicted),
		RMSE:        rmse(ys, predicted),
		Included:    included,
		Excluded:    excluded,
	}, nil
}

// derivedKinetics holds the kinetics parameters recovered from the
// regression line.
type derivedKinetics struct {
	vmax, km       Quantity
	vmaxSE, kmSE   Quantity
	vmaxRSE, kmRSE Quantity
	xIntercept     float64
}

// deriveKinetics recovers the kinetics parameters from the fitted line:
// Vmax = 1/intercept and Km = slope/intercept, both infinite when the
// intercept is zero. The x-intercept is -1/Km, or 0 when Km is zero or
// infinite.
func deriveKinetics(ols *olsFit) derivedKinetics {
	kin := derivedKinetics{
		vmax: Infinite(),
		km:   Infinite(),
	}
	if ols.intercept != 0 {
		kin.vmax = Finite(1 / ols.intercept)
		kin.km = Finite(ols.slope / ols.intercept)
	}

	kin.vmaxRSE = relativeError(ols.interceptSE, ols.intercept)
	kin.kmRSE = kmRelativeError(ols.slopeSE, ols.interceptSE, ols.slope, ols.intercept)
	kin.vmaxSE = absoluteError(kin.vmaxRSE, kin.vmax)
	kin.kmSE = absoluteError(kin.kmRSE, kin.km)

	if kin.km.IsFinite() && kin.km.Float() != 0 {
		kin.xIntercept = -1 / kin.km.Float()
	}

	return kin
}

// transformPoints maps transform-eligible observations into
// Lineweaver-Burk coordinates. Reciprocals that overflow to ±Inf
// (subnormal inputs) are dropped rather than fed into the regression.
func transformPoints(obs []dataset.Observation) []TransformedPoint {
	points := make([]TransformedPoint, 0, len(obs))
	for _, o := range obs {
		x, y := o.Reciprocal()
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		points = append(points, TransformedPoint{Row: o.Row, X: x, Y: y})
	}

	return points
}

// olsFit holds the regression line y = slope·x + intercept and the
// coefficient standard errors.
type olsFit struct {
	slope, intercept     float64
	slopeSE, interceptSE Quantity
}

// solveOLS fits the line by ordinary least squares and derives the
// coefficient standard errors from the residual variance. With exactly
// two points the line is exact and the errors are infinite (no residual
// degrees of freedom).
func solveOLS(xs, ys []float64) (*olsFit, error) {
	n := float64(len(xs))
	meanX := stat.Mean(xs, nil)

	sxx := 0.0
	for _, x := range xs {
		dx := x - meanX
		sxx += dx * dx
	}
	if sxx == 0 {
		return nil, fmt.Errorf("%w: no spread in x values", errs.ErrDegenerateRegression)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) || math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		return nil, fmt.Errorf("%w: non-finite coefficients", errs.ErrDegenerateRegression)
	}

	fit := &olsFit{
		slope:       slope,
		intercept:   intercept,
		slopeSE:     Infinite(),
		interceptSE: Infinite(),
	}

	if dof := len(xs) - 2; dof > 0 {
		ssr := 0.0
		for i := range xs {
			r := ys[i] - (slope*xs[i] + intercept)
			ssr += r * r
		}
		s2 := ssr / float64(dof)
		fit.slopeSE = Finite(math.Sqrt(s2 / sxx))
		fit.interceptSE = Finite(math.Sqrt(s2 * (1/n + meanX*meanX/sxx)))
	}

	return fit, nil
}

// kmRelativeError propagates the relative error of Km = slope/intercept
// by quadrature of the two coefficient relative errors. The covariance
// between slope and intercept is not part of the propagation.
func kmRelativeError(slopeSE, interceptSE Quantity, slope, intercept float64) Quantity {
	if slope == 0 || intercept == 0 || !slopeSE.IsFinite() || !interceptSE.IsFinite() {
		return Infinite()
	}

	rm := slopeSE.Float() / slope
	rc := interceptSE.Float() / intercept

	return Finite(math.Sqrt(rm*rm+rc*rc) * 100)
}

// absoluteError back-propagates a relative error into an absolute one:
// SE = RSE/100 * |estimate|, defined only when both factors are finite.
func absoluteError(rse, estimate Quantity) Quantity {
	if !rse.IsFinite() || !estimate.IsFinite() {
		return Infinite()
	}

	return Finite(rse.Float() / 100 * math.Abs(estimate.Float()))
}
