package fit

// MichaelisMenten evaluates the kinetics model v = Vmax·s/(Km+s) at
// substrate concentration s.
func MichaelisMenten(vmax, km, s float64) float64 {
	return vmax * s / (km + s)
}

// michaelisMentenGrad returns the partial derivatives of the model with
// respect to Vmax and Km at substrate concentration s.
func michaelisMentenGrad(vmax, km, s float64) (dVmax, dKm float64) {
	d := km + s
	dVmax = s / d
	dKm = -vmax * s / (d * d)

	return dVmax, dKm
}
