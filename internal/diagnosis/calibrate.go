package diagnosis

import "fmt"

// Calibrated confidence points. Each evidence band maps to the midpoint of
// its calibration range so that repeated evaluations are byte-identical;
// the low-clarity image band has no published floor, so its point is the
// midpoint of [0, 0.50).
const (
	confSirirajStrong   = 0.90  // range 0.85–0.95
	confSirirajModerate = 0.72  // range 0.60–0.84
	confSirirajWeak     = 0.495 // range 0.40–0.59
	confImageHigh       = 0.90  // range 0.80–1.00
	confImageMedium     = 0.645 // range 0.50–0.79
	confImageLow        = 0.25  // range below 0.50
)

// Calibrate maps an outcome's evidence strength to a confidence in [0, 1].
// The mapping is fixed and deterministic; an outcome carrying an unknown
// band is a programming error and is reported rather than guessed at.
func Calibrate(o *Outcome) (float64, error) {
	switch o.Method {
	case MethodSirirajScore:
		switch o.Magnitude {
		case MagnitudeStrong:
			return confSirirajStrong, nil
		case MagnitudeModerate:
			return confSirirajModerate, nil
		case MagnitudeWeak:
			return confSirirajWeak, nil
		}
		return 0, fmt.Errorf("calibrate: unknown magnitude band %q", o.Magnitude)

	case MethodImageAnalysis:
		switch o.Clarity {
		case ClarityHigh:
			return confImageHigh, nil
		case ClarityMedium:
			return confImageMedium, nil
		case ClarityLow:
			return confImageLow, nil
		}
		return 0, fmt.Errorf("calibrate: unknown clarity band %q", o.Clarity)
	}

	return 0, fmt.Errorf("calibrate: unknown method %q", o.Method)
}
