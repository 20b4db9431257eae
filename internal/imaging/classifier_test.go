package imaging

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"strokeaid/internal/assessment"
	"strokeaid/internal/diagnosis"
	"strokeaid/internal/llm"
)

func scanAndAssessment() (*assessment.CTScan, *assessment.PatientAssessment) {
	scan := &assessment.CTScan{
		MediaType: "image/png",
		Data:      []byte("fake-png-bytes"),
	}
	return scan, &assessment.PatientAssessment{
		TimeSinceOnsetMinutes: 95,
		FaceDroop:             true,
		SpeechSlurred:         false,
		ArmWeakness:           assessment.ArmLeft,
		HistoryHypertension:   true,
		CTScan:                scan,
	}
}

func TestClassifyImageMapsVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"stroke_type":"hemorrhagic","clarity":"high","reasoning":"hyperdense basal ganglia collection"}`),
	})
	c := NewClassifier(mock)

	scan, a := scanAndAssessment()
	finding, err := c.ClassifyImage(context.Background(), scan, a)
	if err != nil {
		t.Fatalf("ClassifyImage: %v", err)
	}
	if finding.StrokeType != diagnosis.Hemorrhagic {
		t.Errorf("StrokeType = %q, want hemorrhagic", finding.StrokeType)
	}
	if finding.Clarity != diagnosis.ClarityHigh {
		t.Errorf("Clarity = %q, want high", finding.Clarity)
	}
}

func TestClassifyImageSendsScanAndContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"stroke_type":"ischemic","clarity":"medium","reasoning":"subtle loss of grey-white differentiation"}`),
	})
	c := NewClassifier(mock)

	scan, a := scanAndAssessment()
	if _, err := c.ClassifyImage(context.Background(), scan, a); err != nil {
		t.Fatalf("ClassifyImage: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]

	if req.Schema == nil || req.Schema.Name != "ct-classification" {
		t.Errorf("Schema = %+v, want ct-classification", req.Schema)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("sent %d messages, want 1", len(req.Messages))
	}
	msg := req.Messages[0]
	if len(msg.Images) != 1 || string(msg.Images[0].Data) != "fake-png-bytes" {
		t.Errorf("image attachment = %+v", msg.Images)
	}
	for _, want := range []string{
		"95 minutes",
		"Facial droop: yes",
		"Slurred speech: no",
		"Arm weakness: left",
		"Blood pressure: not recorded",
		"Level of consciousness: not recorded",
		"Vomiting: not recorded",
	} {
		if !strings.Contains(msg.Content, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg.Content)
		}
	}
}

func TestClassifyImageRendersRecordedOptionals(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"stroke_type":"uncertain","clarity":"low","reasoning":"motion artifact"}`),
	})
	c := NewClassifier(mock)

	scan, a := scanAndAssessment()
	sys, dia := 180.0, 100.0
	loc := assessment.Drowsy
	vomiting := true
	a.SystolicBP = &sys
	a.DiastolicBP = &dia
	a.LOC = &loc
	a.Vomiting = &vomiting

	if _, err := c.ClassifyImage(context.Background(), scan, a); err != nil {
		t.Fatalf("ClassifyImage: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Blood pressure: 180/100 mmHg",
		"Level of consciousness: drowsy",
		"Vomiting: yes",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestClassifyImageRejectsUnknownVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"stroke_type":"massive","clarity":"high","reasoning":"x"}`),
	})
	c := NewClassifier(mock)

	scan, a := scanAndAssessment()
	if _, err := c.ClassifyImage(context.Background(), scan, a); err == nil {
		t.Error("expected error for unknown stroke type")
	}
}

func TestClassifyImagePropagatesProviderError(t *testing.T) {
	wantErr := &llm.ErrProviderUnavailable{}
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})
	c := NewClassifier(mock)

	scan, a := scanAndAssessment()
	_, err := c.ClassifyImage(context.Background(), scan, a)
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want the provider error unwrapped", err)
	}
}

func TestClassifyImageRequiresBytes(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewClassifier(mock)

	scan := &assessment.CTScan{URI: "https://pacs.example/scan/123"}
	_, a := scanAndAssessment()
	if _, err := c.ClassifyImage(context.Background(), scan, a); err == nil {
		t.Error("expected error for scan without bytes")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}

func TestClassifyImageDefaultsMediaType(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"stroke_type":"ischemic","clarity":"high","reasoning":"x"}`),
	})
	c := NewClassifier(mock)

	scan, a := scanAndAssessment()
	scan.MediaType = ""
	if _, err := c.ClassifyImage(context.Background(), scan, a); err != nil {
		t.Fatalf("ClassifyImage: %v", err)
	}
	if got := mock.Calls[0].Messages[0].Images[0].MediaType; got != "image/png" {
		t.Errorf("MediaType = %q, want image/png default", got)
	}
}
