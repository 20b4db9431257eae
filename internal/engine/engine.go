// Package engine wires the assessment validator, classification router,
// confidence calibrator, eligibility rule, and protocol selector into the
// single evaluate operation exposed to callers.
package engine

import (
	"context"
	"time"

	"strokeaid/internal/assessment"
	"strokeaid/internal/diagnosis"
	"strokeaid/internal/protocol"
)

// DiagnosisResult is the immutable output of one evaluation. It is produced
// once and never mutated; evaluating the same assessment twice through the
// Siriraj path yields identical results.
type DiagnosisResult struct {
	StrokeType           diagnosis.StrokeType `json:"stroke_type"`
	Confidence           float64              `json:"confidence"`
	ThrombolyticEligible bool                 `json:"thrombolytic_eligible"`
	MethodUsed           diagnosis.Method     `json:"method_used"`
	ActionProtocol       string               `json:"action_protocol"`
}

// Config holds evaluation settings.
type Config struct {
	// Agent is the thrombolytic regime used by the protocol selector.
	Agent protocol.AgentConfig

	// ImageTimeout bounds the one external image-analysis call. The rest
	// of the pipeline is pure and needs no deadline. Zero means the
	// caller's ctx alone bounds the call.
	ImageTimeout time.Duration
}

// DefaultConfig returns the standard regime and a 60s image deadline.
func DefaultConfig() Config {
	return Config{
		Agent:        protocol.DefaultAgent(),
		ImageTimeout: 60 * time.Second,
	}
}

// Service evaluates patient assessments. It holds no mutable state between
// invocations and is safe for arbitrarily many concurrent callers.
type Service struct {
	router *diagnosis.Router
	cfg    Config
}

// New creates an evaluation service. classifier may be nil when no image
// capability is configured.
func New(classifier diagnosis.ImageClassifier, cfg Config) *Service {
	return &Service{
		router: diagnosis.NewRouter(classifier),
		cfg:    cfg,
	}
}

// Evaluate runs the full pipeline on a raw record:
// validate → route → calibrate → eligibility → protocol.
//
// Failures are typed: *assessment.ValidationError (and its
// *assessment.MissingDataError subtype) for bad input,
// *diagnosis.ClassificationUnavailableError when the image capability fails
// or times out, and *protocol.ConfigurationError for a bad agent regime.
// No partial result is ever returned alongside an error.
func (s *Service) Evaluate(ctx context.Context, raw *assessment.Raw) (*DiagnosisResult, error) {
	a, err := assessment.Validate(raw)
	if err != nil {
		return nil, err
	}
	return s.EvaluateValidated(ctx, a)
}

// EvaluateValidated runs the pipeline on an already-validated assessment.
func (s *Service) EvaluateValidated(ctx context.Context, a *assessment.PatientAssessment) (*DiagnosisResult, error) {
	if a.HasImage() && s.cfg.ImageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ImageTimeout)
		defer cancel()
	}

	outcome, err := s.router.Classify(ctx, a)
	if err != nil {
		return nil, err
	}

	confidence, err := diagnosis.Calibrate(outcome)
	if err != nil {
		return nil, err
	}

	eligible := diagnosis.Eligible(outcome.StrokeType, a.TimeSinceOnsetMinutes)

	text, err := protocol.Select(outcome.StrokeType, eligible, s.cfg.Agent)
	if err != nil {
		return nil, err
	}

	return &DiagnosisResult{
		StrokeType:           outcome.StrokeType,
		Confidence:           confidence,
		ThrombolyticEligible: eligible,
		MethodUsed:           outcome.Method,
		ActionProtocol:       text,
	}, nil
}
