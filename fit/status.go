package fit

// Status is the lifecycle state of one series' fit:
// Unfit → Fitting → {Fitted | Failed}. Fitted and Failed are terminal
// until the next fit invocation, which always starts a fresh transition;
// there is no partial or incremental re-fit.
type Status uint8

const (
	StatusUnfit   Status = 0x0 // StatusUnfit means no fit has been attempted.
	StatusFitting Status = 0x1 // StatusFitting means a fit is in progress.
	StatusFitted  Status = 0x2 // StatusFitted means the fit succeeded (terminal).
	StatusFailed  Status = 0x3 // StatusFailed means the fit failed (terminal).
)

func (s Status) String() string {
	switch s {
	case StatusUnfit:
		return "Unfit"
	case StatusFitting:
		return "Fitting"
	case StatusFitted:
		return "Fitted"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
