// Package plot renders fitted kinetics as PNG charts.
//
// Three views are provided, all built from fit results alone so rendering
// never re-runs a fit:
//
//   - Kinetics: observed velocities with the fitted Michaelis-Menten
//     curves, one color per series.
//   - LineweaverBurk: transformed observations with the fitted regression
//     lines and bold axes through the origin.
//   - Residuals: one series' residuals around zero with a ±5% tolerance
//     band of the predicted velocity.
//
// Excluded observations are drawn at half opacity in every view; they are
// diagnostic overlays and never part of a fit.
//
// # Usage
//
//	renderer, err := plot.NewRenderer(plot.WithDimensions(1024, 768))
//	if err != nil {
//		return err
//	}
//
//	png, err := renderer.Kinetics(batch.Results())
//	if err != nil {
//		return err
//	}
//	os.WriteFile("kinetics.png", png, 0o644)
package plot
