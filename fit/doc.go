// Package fit performs Michaelis-Menten regression on prepared kinetics
// series, both the direct nonlinear fit and the linearized
// Lineweaver-Burk fit.
//
// The entry point is the Engine, a reusable, configuration-only fitting
// session. Every fit invocation computes a fresh result from the series it
// is handed; the engine holds no per-series state between calls, so the
// caller owns partitioning (see the dataset package) and result
// lifetimes.
//
// # Nonlinear fit
//
// FitSeries fits v = Vmax·S/(Km+S) to a series' included observations by
// unconstrained Levenberg-Marquardt least squares with an analytic
// Jacobian. The initial guess is deterministic: Vmax₀ is the largest
// included velocity and Km₀ the mean included substrate concentration.
// The solver runs from that single seed and is
// never retried with alternate seeds, so a series either converges or
// reports NonConvergence; which of the two happens is stable across runs.
//
// On success the result carries the parameter estimates, their standard
// errors from the covariance matrix (JᵀJ)⁻¹·s², relative standard errors
// in percent, R², RMSE, and residuals for both included and excluded
// points. Excluded points never influence the estimates; their residuals
// are computed against the accepted fit for diagnostic overlays only.
//
// # Linearized fit
//
// FitLinearSeries regresses 1/v on 1/S over the series' transform-eligible
// included observations by ordinary least squares, then derives
// Vmax = 1/intercept and Km = slope/intercept with first-order error
// propagation. The propagation carries no slope/intercept covariance
// term; the x-intercept (-1/Km) is reported for plot scaling.
//
// # Edge values
//
// Quantities that can be driven to infinity or become undefined by the
// data (relative errors of zero estimates, derived parameters with a zero
// intercept, standard errors without residual degrees of freedom) are
// represented as a tagged Quantity rather than raw IEEE infinities, making
// the finite/infinite contract explicit. R² is defined as 0 when the
// observed values carry no variance.
//
// # Batches
//
// FitBatch and FitLinearBatch fit many series and never abort on a
// per-series failure: each series produces a terminal Outcome (Fitted or
// Failed with a taxonomy kind), in input order. FitBatch additionally
// reports the series with the smallest strictly positive Km, recomputed
// from scratch on every batch, which the Lineweaver-Burk plot uses for
// scaling. With WithConcurrency, independent series fit in parallel while
// output order and best-Km tie-breaking stay identical to the serial run.
//
// # Usage
//
//	engine, err := fit.NewEngine()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	batch := engine.FitBatch(table.Prepare(sel))
//	for _, out := range batch.Outcomes {
//	    if out.Status == fit.StatusFailed {
//	        fmt.Printf("%s: %v\n", out.Label, out.Failure)
//	        continue
//	    }
//	    fmt.Println(out.Result.Summary())
//	}
//	if batch.BestKm != nil {
//	    fmt.Printf("smallest Km: %s (%g)\n", batch.BestKm.Label, batch.BestKm.Km)
//	}
package fit
