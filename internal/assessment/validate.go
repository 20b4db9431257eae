package assessment

import (
	"fmt"
	"strings"
)

// Raw is an unvalidated patient-data record as submitted by the caller
// (typically decoded from JSON). Optional fields are pointers so that
// "absent" and "zero" stay distinguishable.
type Raw struct {
	TimeSinceOnsetMinutes *float64 `json:"time_since_onset_minutes"`
	FaceDroop             *bool    `json:"face_droop"`
	SpeechSlurred         *bool    `json:"speech_slurred"`
	ArmWeakness           *string  `json:"arm_weakness"`
	SystolicBP            *float64 `json:"systolic_blood_pressure"`
	DiastolicBP           *float64 `json:"diastolic_blood_pressure"`
	HistoryHypertension   *bool    `json:"history_hypertension"`
	HistoryDiabetes       *bool    `json:"history_diabetes"`
	HistorySmoking        *bool    `json:"history_smoking"`
	LOC                   *string  `json:"level_of_consciousness"`
	Vomiting              *bool    `json:"vomiting"`
	Headache              *bool    `json:"headache"`
	CTScan                *CTScan  `json:"ct_scan,omitempty"`
}

// ValidationError reports a malformed input field. The caller can fix the
// input and resubmit; the engine never retries validation on its own.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid assessment: field %q: %s", e.Field, e.Message)
}

// MissingDataError is a ValidationError for a field that is mandatory in
// the submitted configuration but absent. Matched with errors.As; it
// unwraps to its embedded ValidationError so callers that only care about
// "bad input" can match the broader type.
type MissingDataError struct {
	ValidationError
}

func (e *MissingDataError) Unwrap() error { return &e.ValidationError }

func newMissingDataError(field string) *MissingDataError {
	return &MissingDataError{ValidationError{
		Field:   field,
		Message: "required but missing",
	}}
}

// Validate normalizes and validates a raw record into a PatientAssessment.
//
// Rules:
//   - numeric fields must be non-negative;
//   - arm weakness and LOC must be one of their enumerated literals;
//   - booleans default to false when omitted, except vomiting and headache,
//     which are mandatory when no CT image is supplied;
//   - without a CT image, diastolic blood pressure and LOC are mandatory too.
//
// No other field is silently defaulted.
func Validate(raw *Raw) (*PatientAssessment, error) {
	if raw == nil {
		return nil, &ValidationError{Field: "assessment", Message: "empty record"}
	}

	if raw.TimeSinceOnsetMinutes == nil {
		return nil, newMissingDataError("time_since_onset_minutes")
	}
	if *raw.TimeSinceOnsetMinutes < 0 {
		return nil, &ValidationError{
			Field:   "time_since_onset_minutes",
			Message: fmt.Sprintf("must be non-negative, got %v", *raw.TimeSinceOnsetMinutes),
		}
	}

	arm, err := parseArmWeakness(raw.ArmWeakness)
	if err != nil {
		return nil, err
	}

	if raw.SystolicBP != nil && *raw.SystolicBP < 0 {
		return nil, &ValidationError{
			Field:   "systolic_blood_pressure",
			Message: fmt.Sprintf("must be non-negative, got %v", *raw.SystolicBP),
		}
	}
	if raw.DiastolicBP != nil && *raw.DiastolicBP < 0 {
		return nil, &ValidationError{
			Field:   "diastolic_blood_pressure",
			Message: fmt.Sprintf("must be non-negative, got %v", *raw.DiastolicBP),
		}
	}

	a := &PatientAssessment{
		TimeSinceOnsetMinutes: *raw.TimeSinceOnsetMinutes,
		FaceDroop:             boolOrFalse(raw.FaceDroop),
		SpeechSlurred:         boolOrFalse(raw.SpeechSlurred),
		ArmWeakness:           arm,
		SystolicBP:            raw.SystolicBP,
		DiastolicBP:           raw.DiastolicBP,
		HistoryHypertension:   boolOrFalse(raw.HistoryHypertension),
		HistoryDiabetes:       boolOrFalse(raw.HistoryDiabetes),
		HistorySmoking:        boolOrFalse(raw.HistorySmoking),
		Vomiting:              raw.Vomiting,
		Headache:              raw.Headache,
		CTScan:                raw.CTScan,
	}

	if raw.LOC != nil {
		loc, err := parseConsciousness(*raw.LOC)
		if err != nil {
			return nil, err
		}
		a.LOC = &loc
	}

	// Without an image the Siriraj path is the only strategy, so its
	// clinical inputs become mandatory. Their absence is never papered
	// over with defaults.
	if !a.HasImage() {
		if a.DiastolicBP == nil {
			return nil, newMissingDataError("diastolic_blood_pressure")
		}
		if a.LOC == nil {
			return nil, newMissingDataError("level_of_consciousness")
		}
		if a.Vomiting == nil {
			return nil, newMissingDataError("vomiting")
		}
		if a.Headache == nil {
			return nil, newMissingDataError("headache")
		}
	}

	return a, nil
}

func parseArmWeakness(v *string) (ArmWeakness, error) {
	if v == nil {
		return "", newMissingDataError("arm_weakness")
	}
	switch ArmWeakness(strings.ToLower(strings.TrimSpace(*v))) {
	case ArmNone:
		return ArmNone, nil
	case ArmLeft:
		return ArmLeft, nil
	case ArmRight:
		return ArmRight, nil
	case ArmBoth:
		return ArmBoth, nil
	}
	return "", &ValidationError{
		Field:   "arm_weakness",
		Message: fmt.Sprintf("must be one of none, left, right, both; got %q", *v),
	}
}

func parseConsciousness(v string) (Consciousness, error) {
	switch Consciousness(strings.ToLower(strings.TrimSpace(v))) {
	case Conscious:
		return Conscious, nil
	case Drowsy:
		return Drowsy, nil
	case Comatose:
		return Comatose, nil
	}
	return "", &ValidationError{
		Field:   "level_of_consciousness",
		Message: fmt.Sprintf("must be one of conscious, drowsy, comatose; got %q", v),
	}
}

func boolOrFalse(v *bool) bool {
	return v != nil && *v
}
