package diagnosis

import (
	"math"

	"strokeaid/internal/assessment"
)

// Siriraj score coefficients. These are fixed clinical constants from the
// published bedside score; they must not be tuned or approximated.
const (
	sirirajLOCWeight      = 2.5
	sirirajVomitingWeight = 2.0
	sirirajHeadacheWeight = 2.0
	sirirajDBPWeight      = 0.1
	sirirajAtheromaWeight = 3.0
	sirirajConstant       = 12.0
)

// Interpretation thresholds. Score > 1 reads hemorrhagic, score < -1 reads
// ischemic, and the closed interval [-1, 1] is indeterminate.
const (
	hemorrhagicThreshold = 1.0
	ischemicThreshold    = -1.0
	strongMagnitude      = 2.0
)

// Score computes the Siriraj stroke score from bedside signs:
//
//	2.5*LOC + 2*vomiting + 2*headache + 0.1*DBP - 3*atheroma - 12
//
// where LOC is 0/1/2 for conscious/drowsy/comatose and atheroma is 1 when
// any of hypertension, diabetes, or smoking history is present.
//
// Score is pure and total over validated assessments; the validator
// guarantees the clinical fields are present whenever this path is taken.
func Score(a *assessment.PatientAssessment) float64 {
	var loc float64
	if a.LOC != nil {
		switch *a.LOC {
		case assessment.Drowsy:
			loc = 1
		case assessment.Comatose:
			loc = 2
		}
	}

	var v, h, atheroma float64
	if a.Vomiting != nil && *a.Vomiting {
		v = 1
	}
	if a.Headache != nil && *a.Headache {
		h = 1
	}
	if a.HasRiskHistory() {
		atheroma = 1
	}

	var dbp float64
	if a.DiastolicBP != nil {
		dbp = *a.DiastolicBP
	}

	return sirirajLOCWeight*loc +
		sirirajVomitingWeight*v +
		sirirajHeadacheWeight*h +
		sirirajDBPWeight*dbp -
		sirirajAtheromaWeight*atheroma -
		sirirajConstant
}

// Interpret maps a Siriraj score to a stroke type and a magnitude band.
// Boundary behavior: exactly 1.0 and -1.0 fall in the indeterminate zone.
func Interpret(score float64) (StrokeType, MagnitudeBand) {
	var st StrokeType
	switch {
	case score > hemorrhagicThreshold:
		st = Hemorrhagic
	case score < ischemicThreshold:
		st = Ischemic
	default:
		st = Uncertain
	}

	abs := math.Abs(score)
	var band MagnitudeBand
	switch {
	case abs > strongMagnitude:
		band = MagnitudeStrong
	case abs > hemorrhagicThreshold:
		band = MagnitudeModerate
	default:
		band = MagnitudeWeak
	}

	return st, band
}
