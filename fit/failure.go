package fit

import (
	"fmt"

	"github.com/arloliu/mmfit/dataset"
	"github.com/arloliu/mmfit/errs"
)

// FailureKind classifies why a single series could not be fitted.
type FailureKind uint8

const (
	FailureInsufficientData     FailureKind = 0x1 // FailureInsufficientData means fewer than 2 usable points.
	FailureNonConvergence       FailureKind = 0x2 // FailureNonConvergence means the solver exhausted its budget.
	FailureInvalidInput         FailureKind = 0x3 // FailureInvalidInput means degenerate numeric input.
	FailureDegenerateRegression FailureKind = 0x4 // FailureDegenerateRegression means the linear fit is undefined.
)

func (k FailureKind) String() string {
	switch k {
	case FailureInsufficientData:
		return "InsufficientData"
	case FailureNonConvergence:
		return "NonConvergence"
	case FailureInvalidInput:
		return "InvalidInput"
	case FailureDegenerateRegression:
		return "DegenerateRegression"
	default:
		return "Unknown"
	}
}

// sentinel maps the kind to its package-level sentinel error.
func (k FailureKind) sentinel() error {
	switch k {
	case FailureInsufficientData:
		return errs.ErrInsufficientData
	case FailureNonConvergence:
		return errs.ErrNonConvergence
	case FailureInvalidInput:
		return errs.ErrInvalidInput
	case FailureDegenerateRegression:
		return errs.ErrDegenerateRegression
	default:
		return nil
	}
}

// FitFailure is the terminal error for one series' fit. It is scoped to
// that series only; batch operations collect failures per series and keep
// fitting the rest.
//
// FitFailure unwraps to the matching sentinel in the errs package, so
// callers can test with errors.Is(err, errs.ErrNonConvergence) and
// friends.
type FitFailure struct {
	Label    string
	SeriesID uint64
	Kind     FailureKind
}

// newFailure builds a FitFailure for the given series.
func newFailure(series dataset.Series, kind FailureKind) *FitFailure {
	return &FitFailure{
		Label:    series.Label,
		SeriesID: series.ID,
		Kind:     kind,
	}
}

// Error implements the error interface.
func (f *FitFailure) Error() string {
	if err := f.Unwrap(); err != nil {
		return fmt.Sprintf("series %q: %v", f.Label, err)
	}

	return fmt.Sprintf("series %q: unknown failure", f.Label)
}

// Unwrap returns the sentinel error matching the failure kind.
func (f *FitFailure) Unwrap() error {
	return f.Kind.sentinel()
}
