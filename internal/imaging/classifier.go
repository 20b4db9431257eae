package imaging

import (
	"context"
	"encoding/json"
	"fmt"

	"strokeaid/internal/assessment"
	"strokeaid/internal/diagnosis"
	"strokeaid/internal/llm"
)

const classifyMaxTokens = 1024

// Classifier reads CT scans through an LLM provider. It implements
// diagnosis.ImageClassifier.
type Classifier struct {
	provider llm.Provider
}

// NewClassifier creates a CT classifier backed by the given provider.
// The provider's model must be vision-capable.
func NewClassifier(provider llm.Provider) *Classifier {
	return &Classifier{provider: provider}
}

// verdict mirrors the ct-classification schema.
type verdict struct {
	StrokeType string `json:"stroke_type"`
	Clarity    string `json:"clarity"`
	Reasoning  string `json:"reasoning"`
}

// ClassifyImage sends the scan plus the clinical context to the LLM and
// returns its verdict unchanged. Errors are returned raw; the caller owns
// the unavailability wrapping.
func (c *Classifier) ClassifyImage(ctx context.Context, scan *assessment.CTScan, a *assessment.PatientAssessment) (*diagnosis.ImageFinding, error) {
	if scan == nil || len(scan.Data) == 0 {
		return nil, fmt.Errorf("scan bytes are required; resolve the image URI before classification")
	}

	mediaType := scan.MediaType
	if mediaType == "" {
		mediaType = "image/png"
	}

	prompt, err := buildUserPrompt(a)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "ct-classification")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{
				Role:    llm.RoleUser,
				Content: prompt,
				Images:  []llm.Image{{MediaType: mediaType, Data: scan.Data}},
			},
		},
		Schema:    classificationSchema(),
		MaxTokens: classifyMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var v verdict
	if err := json.Unmarshal(resp.Content, &v); err != nil {
		return nil, fmt.Errorf("parse classification verdict: %w", err)
	}

	finding, err := mapVerdict(v)
	if err != nil {
		return nil, err
	}
	return finding, nil
}

func mapVerdict(v verdict) (*diagnosis.ImageFinding, error) {
	var st diagnosis.StrokeType
	switch v.StrokeType {
	case "ischemic":
		st = diagnosis.Ischemic
	case "hemorrhagic":
		st = diagnosis.Hemorrhagic
	case "uncertain":
		st = diagnosis.Uncertain
	default:
		return nil, fmt.Errorf("unknown stroke type in verdict: %q", v.StrokeType)
	}

	var clarity diagnosis.ClarityBand
	switch v.Clarity {
	case "high":
		clarity = diagnosis.ClarityHigh
	case "medium":
		clarity = diagnosis.ClarityMedium
	case "low":
		clarity = diagnosis.ClarityLow
	default:
		return nil, fmt.Errorf("unknown clarity in verdict: %q", v.Clarity)
	}

	return &diagnosis.ImageFinding{StrokeType: st, Clarity: clarity}, nil
}
