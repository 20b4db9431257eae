package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggingWritesOneLinePerCall(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 50, OutputTokens: 10, TotalTokens: 60},
	})

	var buf strings.Builder
	p := WithLogging(mock, &buf)

	ctx := WithPurpose(context.Background(), "ct-classification")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("log output = %q, want exactly one line", out)
	}
	for _, want := range []string{"purpose=ct-classification", "tokens_in=50", "tokens_out=10", "cost_usd="} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %q", out, want)
		}
	}
}

func TestLoggingNilWriterPassesThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, nil)
	if p != Provider(mock) {
		t.Error("nil writer should return the inner provider unchanged")
	}
}

func TestLoggingRecordsErrors(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})

	var buf strings.Builder
	p := WithLogging(mock, &buf)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(buf.String(), "error=") {
		t.Errorf("log line %q missing error field", buf.String())
	}
}

func TestEstimateCost(t *testing.T) {
	usage := Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}
	got := EstimateCost("gpt-4o", usage)
	if got != 12.50 {
		t.Errorf("EstimateCost(gpt-4o, 1M/1M) = %v, want 12.50", got)
	}
	if EstimateCost("unknown-model", usage) != 0 {
		t.Error("unknown model should cost 0")
	}
}

func TestLookupCostPrefixMatch(t *testing.T) {
	if _, ok := LookupCost("gpt-4o-2024-11-20"); !ok {
		t.Error("dated gpt-4o ID should resolve via prefix match")
	}
}
