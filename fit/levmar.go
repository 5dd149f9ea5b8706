package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/mmfit/errs"
)

// Levenberg-Marquardt damping schedule. The damping factor starts small so
// the first steps are near Gauss-Newton, grows by dampingScale on every
// rejected step and shrinks by the same factor on every accepted one.
const (
	initialDamping = 1e-3
	dampingScale   = 10.0
	minDamping     = 1e-12
	maxDamping     = 1e12
)

// lmSolution carries the converged parameters together with the terms
// needed to derive the parameter covariance.
type lmSolution struct {
	vmax, km   float64
	ssr        float64
	points     int
	iterations int
	jtj        *mat.SymDense // JᵀJ evaluated at the solution
}

// levmar minimizes Σ(v_i − model(s_i))² over (Vmax, Km) with the
// Levenberg-Marquardt method, starting from the single seed (vmax0, km0).
//
// The normal-equation step (JᵀJ + λ·diag(JᵀJ))·δ = Jᵀr is solved by
// Cholesky factorization; trial steps that fail to reduce the sum of
// squares, or that drive the model non-finite, raise the damping and are
// retried. Convergence is declared when the step or the cost reduction
// falls below tol relative to the current state, or when the gradient
// vanishes exactly.
//
// Errors unwrap to errs.ErrInvalidInput (model undefined at the seed,
// unsolvable step system) or errs.ErrNonConvergence (budget exhausted, no
// descent step within the damping range).
func levmar(s, v []float64, vmax0, km0 float64, maxIterations int, tol float64) (*lmSolution, error) {
	vmax, km := vmax0, km0

	residuals := make([]float64, len(s))
	trial := make([]float64, len(s))

	ssr, ok := computeResiduals(s, v, vmax, km, residuals)
	if !ok {
		return nil, fmt.Errorf("%w: model not finite at initial guess Vmax=%g, Km=%g",
			errs.ErrInvalidInput, vmax, km)
	}

	lambda := initialDamping

	for iter := 1; iter <= maxIterations; iter++ {
		var jtj00, jtj01, jtj11, jtr0, jtr1 float64
		for i := range s {
			dv, dk := michaelisMentenGrad(vmax, km, s[i])
			jtj00 += dv * dv
			jtj01 += dv * dk
			jtj11 += dk * dk
			jtr0 += dv * residuals[i]
			jtr1 += dk * residuals[i]
		}

		// Exactly zero gradient: stationary point, nothing to improve.
		if jtr0 == 0 && jtr1 == 0 {
			return newSolution(s, vmax, km, ssr, iter), nil
		}

		// Adapt the damping until a step improves the sum of squares.
		for {
			a := mat.NewSymDense(2, []float64{
				jtj00 * (1 + lambda), jtj01,
				jtj01, jtj11 * (1 + lambda),
			})

			var chol mat.Cholesky
			if !chol.Factorize(a) {
				lambda *= dampingScale
				if lambda > maxDamping {
					return nil, fmt.Errorf("%w: singular normal equations", errs.ErrInvalidInput)
				}
				continue
			}

			delta := mat.NewVecDense(2, nil)
			if err := chol.SolveVecTo(delta, mat.NewVecDense(2, []float64{jtr0, jtr1})); err != nil {
				lambda *= dampingScale
				if lambda > maxDamping {
					return nil, fmt.Errorf("%w: unsolvable step system", errs.ErrInvalidInput)
				}
				continue
			}

			dVmax, dKm := delta.AtVec(0), delta.AtVec(1)
			trialVmax, trialKm := vmax+dVmax, km+dKm

			trialSSR, ok := computeResiduals(s, v, trialVmax, trialKm, trial)
			if ok && trialSSR <= ssr {
				stepConverged := math.Hypot(dVmax, dKm) <= tol*(tol+math.Hypot(vmax, km))
				costConverged := ssr-trialSSR <= tol*trialSSR

				vmax, km = trialVmax, trialKm
				copy(residuals, trial)
				ssr = trialSSR
				lambda = math.Max(lambda/dampingScale, minDamping)

				if stepConverged || costConverged {
					return newSolution(s, vmax, km, ssr, iter), nil
				}

				break
			}

			lambda *= dampingScale
			if lambda > maxDamping {
				return nil, fmt.Errorf("%w: no descent step within damping range", errs.ErrNonConvergence)
			}
		}
	}

	return nil, fmt.Errorf("%w: %d iterations exhausted", errs.ErrNonConvergence, maxIterations)
}

// newSolution evaluates JᵀJ at the final parameters so the covariance is
// derived at the solution, not at the last pre-step point.
func newSolution(s []float64, vmax, km, ssr float64, iterations int) *lmSolution {
	var jtj00, jtj01, jtj11 float64
	for _, si := range s {
		dv, dk := michaelisMentenGrad(vmax, km, si)
		jtj00 += dv * dv
		jtj01 += dv * dk
		jtj11 += dk * dk
	}

	return &lmSolution{
		vmax:       vmax,
		km:         km,
		ssr:        ssr,
		points:     len(s),
		iterations: iterations,
		jtj:        mat.NewSymDense(2, []float64{jtj00, jtj01, jtj01, jtj11}),
	}
}

// standardErrors derives the parameter standard errors from the
// covariance matrix (JᵀJ)⁻¹·s² with s² = SSR/(points−2). Without residual
// degrees of freedom, or with a singular JᵀJ at the solution, the
// covariance is undefined and both errors are infinite.
func (sol *lmSolution) standardErrors() (vmaxSE, kmSE Quantity) {
	dof := sol.points - 2
	if dof <= 0 {
		return Infinite(), Infinite()
	}

	var chol mat.Cholesky
	if !chol.Factorize(sol.jtj) {
		return Infinite(), Infinite()
	}

	var cov mat.SymDense
	if err := chol.InverseTo(&cov); err != nil {
		return Infinite(), Infinite()
	}

	s2 := sol.ssr / float64(dof)

	return Finite(math.Sqrt(cov.At(0, 0) * s2)), Finite(math.Sqrt(cov.At(1, 1) * s2))
}

// computeResiduals fills r with v − model(s) and returns the sum of
// squared residuals. ok is false when any residual, or the sum itself, is
// not finite.
func computeResiduals(s, v []float64, vmax, km float64, r []float64) (ssr float64, ok bool) {
	for i := range s {
		r[i] = v[i] - MichaelisMenten(vmax, km, s[i])
		if math.IsNaN(r[i]) || math.IsInf(r[i], 0) {
			return 0, false
		}
		ssr += r[i] * r[i]
	}
	if math.IsInf(ssr, 0) {
		return 0, false
	}

	return ssr, true
}
