package diagnosis

import (
	"context"

	"strokeaid/internal/assessment"
)

// ImageClassifier is the port to the external image-analysis capability.
// The engine treats it as a black box: it hands over the scan plus the
// non-image clinical fields as context and consumes the verdict unchanged.
//
// Implementations must honor ctx cancellation. The engine is responsible
// for bounding the call with a timeout.
type ImageClassifier interface {
	ClassifyImage(ctx context.Context, scan *assessment.CTScan, a *assessment.PatientAssessment) (*ImageFinding, error)
}

// Router chooses between the two classification strategies. The choice is
// a strict either/or on image presence; the Siriraj score is never used as
// a tiebreaker for the image path.
type Router struct {
	classifier ImageClassifier
}

// NewRouter creates a router. classifier may be nil when no image capability
// is configured; image-bearing assessments then fail as unavailable rather
// than being rerouted.
func NewRouter(classifier ImageClassifier) *Router {
	return &Router{classifier: classifier}
}

// Classify routes the assessment to one strategy and returns the tagged
// outcome. Image-path failures (including ctx expiry) are returned as
// *ClassificationUnavailableError.
func (r *Router) Classify(ctx context.Context, a *assessment.PatientAssessment) (*Outcome, error) {
	if a.HasImage() {
		return r.classifyByImage(ctx, a)
	}

	score := Score(a)
	st, band := Interpret(score)
	return &Outcome{
		StrokeType: st,
		Method:     MethodSirirajScore,
		Magnitude:  band,
		Score:      score,
	}, nil
}

func (r *Router) classifyByImage(ctx context.Context, a *assessment.PatientAssessment) (*Outcome, error) {
	if r.classifier == nil {
		return nil, &ClassificationUnavailableError{}
	}

	finding, err := r.classifier.ClassifyImage(ctx, a.CTScan, a)
	if err != nil {
		return nil, &ClassificationUnavailableError{Err: err}
	}

	return &Outcome{
		StrokeType: finding.StrokeType,
		Method:     MethodImageAnalysis,
		Clarity:    finding.Clarity,
	}, nil
}
