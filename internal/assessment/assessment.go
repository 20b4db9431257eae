package assessment

// ArmWeakness describes which arm(s) show motor weakness.
type ArmWeakness string

const (
	ArmNone  ArmWeakness = "none"
	ArmLeft  ArmWeakness = "left"
	ArmRight ArmWeakness = "right"
	ArmBoth  ArmWeakness = "both"
)

// Consciousness is the patient's level of consciousness (LOC).
type Consciousness string

const (
	Conscious Consciousness = "conscious"
	Drowsy    Consciousness = "drowsy"
	Comatose  Consciousness = "comatose"
)

// CTScan is an opaque reference to a CT image. Either Data or URI is set;
// the engine never inspects the pixels.
type CTScan struct {
	// MediaType is the MIME type of the image, e.g. "image/png".
	MediaType string `json:"media_type,omitempty"`
	// Data holds the raw image bytes.
	Data []byte `json:"data,omitempty"`
	// URI points at the image when the bytes live elsewhere.
	URI string `json:"uri,omitempty"`
}

// PatientAssessment is a validated, immutable patient record.
// Construct one via Validate; do not build it by hand.
//
// The pointer fields are those that are only mandatory on the Siriraj
// path (no CT image supplied). When a CT image is present they may be nil.
type PatientAssessment struct {
	TimeSinceOnsetMinutes float64
	FaceDroop             bool
	SpeechSlurred         bool
	ArmWeakness           ArmWeakness
	SystolicBP            *float64
	DiastolicBP           *float64
	HistoryHypertension   bool
	HistoryDiabetes       bool
	HistorySmoking        bool
	LOC                   *Consciousness
	Vomiting              *bool
	Headache              *bool
	CTScan                *CTScan
}

// HasImage reports whether a CT image was supplied.
func (a *PatientAssessment) HasImage() bool {
	return a.CTScan != nil && (len(a.CTScan.Data) > 0 || a.CTScan.URI != "")
}

// HasRiskHistory reports whether any vascular risk factor is present
// (hypertension, diabetes, or smoking). This is the A term of the
// Siriraj score.
func (a *PatientAssessment) HasRiskHistory() bool {
	return a.HistoryHypertension || a.HistoryDiabetes || a.HistorySmoking
}
