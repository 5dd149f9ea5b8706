package fit

import (
	"fmt"

	"github.com/arloliu/mmfit/dataset"
)

// FitResult is the immutable outcome of one successful nonlinear
// Michaelis-Menten fit. It is created fresh on every fit invocation and
// superseded by the next one, never mutated in place.
//
// VmaxSE and KmSE come from the diagonal of the parameter covariance
// matrix; they are infinite when the covariance is undefined (no residual
// degrees of freedom, or a singular JᵀJ at the solution). The relative
// errors are percentages of the estimates and are infinite when an
// estimate is zero.
type FitResult struct {
	Label    string
	SeriesID uint64

	Vmax float64
	Km   float64

	VmaxSE  Quantity
	KmSE    Quantity
	VmaxRSE Quantity
	KmRSE   Quantity

	RSquared float64
	RMSE     float64

	// Predicted and Residuals align index-for-index with Included;
	// ExcludedResiduals aligns with Excluded and is computed against the
	// same fitted parameters for diagnostic overlays only.
	Predicted         []float64
	Residuals         []float64
	ExcludedResiduals []float64

	Included []dataset.Observation
	Excluded []dataset.Observation

	// Iterations is the number of solver iterations spent.
	Iterations int
}

// Estimate evaluates the fitted model at substrate concentration s.
func (r *FitResult) Estimate(s float64) float64 {
	return MichaelisMenten(r.Vmax, r.Km, s)
}

// Summary returns the multi-line legend text for the fit:
//
//	Fit v0 (R²=0.998)
//	Vmax = 1.02e+00 (± 3.1e-02 | 3%)
//	Km   = 2.05e-01 (± 1.5e-02 | 7%)
func (r *FitResult) Summary() string {
	return fmt.Sprintf("Fit %s (R²=%.3f)\nVmax = %.2e (± %s | %s%%)\nKm   = %.2e (± %s | %s%%)",
		r.Label, r.RSquared,
		r.Vmax, formatQuantity(r.VmaxSE, "%.1e"), formatQuantity(r.VmaxRSE, "%.0f"),
		r.Km, formatQuantity(r.KmSE, "%.1e"), formatQuantity(r.KmRSE, "%.0f"))
}

// TransformedPoint is one observation in Lineweaver-Burk coordinates:
// x = 1/S, y = 1/v. Row records the table row of the source observation.
type TransformedPoint struct {
	Row int
	X   float64
	Y   float64
}

// LinearFitResult is the immutable outcome of one successful linearized
// (Lineweaver-Burk) fit: the regression line y = Slope·x + Intercept over
// the transform-eligible included points, and the kinetics parameters
// derived from it.
//
// The derived Vmax (=1/Intercept) and Km (=Slope/Intercept) are infinite
// when the intercept is zero. Their relative errors use first-order
// propagation without the slope/intercept covariance term; the absolute
// errors are propagated back from the relative ones. XIntercept is -1/Km,
// with 0 as the defined fallback when Km is zero or infinite.
type LinearFitResult struct {
	Label    string
	SeriesID uint64

	Slope     float64
	Intercept float64

	SlopeSE     Quantity
	InterceptSE Quantity

	Vmax    Quantity
	Km      Quantity
	VmaxSE  Quantity
	KmSE    Quantity
	VmaxRSE Quantity
	KmRSE   Quantity

	XIntercept float64
	RSquared   float64
	RMSE       float64

	Included []TransformedPoint
	Excluded []TransformedPoint
}

// Estimate evaluates the fitted regression line at x = 1/S.
func (r *LinearFitResult) Estimate(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// Summary returns the multi-line legend text for the linearized fit, in
// the same layout as FitResult.Summary.
func (r *LinearFitResult) Summary() string {
	return fmt.Sprintf("Fit %s (R²=%.3f)\nVmax = %s (± %s | %s%%)\nKm   = %s (± %s | %s%%)",
		r.Label, r.RSquared,
		formatQuantity(r.Vmax, "%.2e"), formatQuantity(r.VmaxSE, "%.1e"), formatQuantity(r.VmaxRSE, "%.0f"),
		formatQuantity(r.Km, "%.2e"), formatQuantity(r.KmSE, "%.1e"), formatQuantity(r.KmRSE, "%.0f"))
}

// formatQuantity renders a Quantity with the given verb, or "inf" for the
// infinite state.
func formatQuantity(q Quantity, verb string) string {
	if !q.IsFinite() {
		return "inf"
	}

	return fmt.Sprintf(verb, q.Float())
}

// Outcome is the terminal record of one series' nonlinear fit within a
// batch: Status is StatusFitted with Result set, or StatusFailed with
// Failure set.
type Outcome struct {
	Label    string
	SeriesID uint64
	Status   Status
	Result   *FitResult
	Failure  *FitFailure
}

// LinearOutcome is the terminal record of one series' linearized fit
// within a batch.
type LinearOutcome struct {
	Label    string
	SeriesID uint64
	Status   Status
	Result   *LinearFitResult
	Failure  *FitFailure
}

// BestKm identifies the series with the smallest strictly positive Km of
// a batch. The Lineweaver-Burk plot uses it to pick a sensible x range
// when no fitted x-intercept is available.
type BestKm struct {
	Label    string
	SeriesID uint64
	Km       float64
}

// BatchResult holds the outcomes of one FitBatch invocation, in input
// order. BestKm is recomputed from scratch on every batch, never merged
// with previous batches, and is nil when no series fitted with a
// positive Km.
type BatchResult struct {
	Outcomes []Outcome
	BestKm   *BestKm
}

// Results returns the successful fit results of the batch, in input
// order.
func (b *BatchResult) Results() []*FitResult {
	results := make([]*FitResult, 0, len(b.Outcomes))
	for _, out := range b.Outcomes {
		if out.Status == StatusFitted {
			results = append(results, out.Result)
		}
	}

	return results
}

// ResultByID returns the successful fit result for the given series ID,
// or nil when the series is absent or failed.
func (b *BatchResult) ResultByID(id uint64) *FitResult {
	for _, out := range b.Outcomes {
		if out.SeriesID == id && out.Status == StatusFitted {
			return out.Result
		}
	}

	return nil
}

// LinearBatchResult holds the outcomes of one FitLinearBatch invocation,
// in input order.
type LinearBatchResult struct {
	Outcomes []LinearOutcome
}

// Results returns the successful linearized fit results of the batch, in
// input order.
func (b *LinearBatchResult) Results() []*LinearFitResult {
	results := make([]*LinearFitResult, 0, len(b.Outcomes))
	for _, out := range b.Outcomes {
		if out.Status == StatusFitted {
			results = append(results, out.Result)
		}
	}

	return results
}

// ResultByID returns the successful linearized fit result for the given
// series ID, or nil when the series is absent or failed.
func (b *LinearBatchResult) ResultByID(id uint64) *LinearFitResult {
	for _, out := range b.Outcomes {
		if out.SeriesID == id && out.Status == StatusFitted {
			return out.Result
		}
	}

	return nil
}
