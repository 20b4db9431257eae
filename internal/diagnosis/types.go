package diagnosis

// StrokeType is the classification verdict.
type StrokeType string

const (
	Ischemic    StrokeType = "ischemic"
	Hemorrhagic StrokeType = "hemorrhagic"
	Uncertain   StrokeType = "uncertain"
)

// Method identifies which classification strategy produced a verdict.
type Method string

const (
	MethodImageAnalysis Method = "image-analysis"
	MethodSirirajScore  Method = "siriraj-score"
)

// MagnitudeBand is the qualitative strength of a Siriraj score.
type MagnitudeBand string

const (
	MagnitudeStrong   MagnitudeBand = "strong"
	MagnitudeModerate MagnitudeBand = "moderate"
	MagnitudeWeak     MagnitudeBand = "weak"
)

// ClarityBand is the qualitative confidence signal returned by the external
// image-analysis capability about how unambiguous its classification is.
type ClarityBand string

const (
	ClarityHigh   ClarityBand = "high"
	ClarityMedium ClarityBand = "medium"
	ClarityLow    ClarityBand = "low"
)

// Outcome is the tagged result of classification. Exactly one strategy
// produced it: Method selects the variant, and only the matching evidence
// field is meaningful (Magnitude for the Siriraj path, Clarity for the
// image path). Downstream calibration switches on Method exhaustively.
type Outcome struct {
	StrokeType StrokeType
	Method     Method

	// Magnitude is set iff Method == MethodSirirajScore.
	Magnitude MagnitudeBand
	// Score is the raw Siriraj score behind Magnitude. Informational.
	Score float64

	// Clarity is set iff Method == MethodImageAnalysis.
	Clarity ClarityBand
}

// ImageFinding is the external image capability's verdict. The router never
// reinterprets or overrides it.
type ImageFinding struct {
	StrokeType StrokeType
	Clarity    ClarityBand
}
