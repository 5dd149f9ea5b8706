package fit

import (
	"math"
	"strconv"
)

// Quantity is a derived statistic that is either an ordinary finite value
// or infinite/undefined. Zero denominators and missing degrees of freedom
// are normalized to the infinite state instead of raw IEEE infinities or
// NaNs, so the contract is explicit at the type level.
//
// The zero value is the infinite state.
type Quantity struct {
	value  float64
	finite bool
}

// Finite wraps a finite value as a Quantity. Non-finite input (NaN, ±Inf)
// collapses to the infinite state, preserving the invariant that a finite
// Quantity always holds a usable number.
func Finite(v float64) Quantity {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Quantity{}
	}

	return Quantity{value: v, finite: true}
}

// Infinite returns the infinite/undefined Quantity.
func Infinite() Quantity {
	return Quantity{}
}

// IsFinite reports whether the quantity holds an ordinary finite value.
func (q Quantity) IsFinite() bool {
	return q.finite
}

// Float returns the value as a float64, bridging back to IEEE semantics:
// the infinite state yields +Inf.
func (q Quantity) Float() float64 {
	if !q.finite {
		return math.Inf(1)
	}

	return q.value
}

// String returns the value in compact form, or "inf" for the infinite
// state.
func (q Quantity) String() string {
	if !q.finite {
		return "inf"
	}

	return strconv.FormatFloat(q.value, 'g', -1, 64)
}
