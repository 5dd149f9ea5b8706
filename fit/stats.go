package fit

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// rSquared computes the coefficient of determination between observed and
// predicted values: 1 − SS_res/SS_tot. When the observed values carry no
// variance (SS_tot = 0), the result is defined as 0 rather than a division
// by zero.
func rSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := stat.Mean(observed, nil)
	ssTot := 0.0
	ssRes := 0.0

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// rmse computes the root mean squared error between observed and predicted
// values.
func rmse(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

// relativeError expresses a standard error as a percentage of its
// estimate: |SE/estimate|·100. A zero estimate or an infinite standard
// error yields an infinite relative error.
func relativeError(se Quantity, estimate float64) Quantity {
	if estimate == 0 || !se.IsFinite() {
		return Infinite()
	}

	return Finite(se.Float() / math.Abs(estimate) * 100)
}
