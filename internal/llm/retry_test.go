package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"
)

// failNTimesProvider fails with the given error n times, then succeeds.
type failNTimesProvider struct {
	mu    sync.Mutex
	n     int
	err   error
	calls int
}

func (f *failNTimesProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.n {
		return nil, f.err
	}
	return &Response{Content: json.RawMessage(`{}`), Model: "fail-n"}, nil
}

func (f *failNTimesProvider) ModelID() string { return "fail-n" }

func (f *failNTimesProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryRecoversFromTransientError(t *testing.T) {
	inner := &failNTimesProvider{n: 2, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, fastRetry(3))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp == nil {
		t.Fatal("nil response")
	}
	if inner.callCount() != 3 {
		t.Errorf("calls = %d, want 3", inner.callCount())
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	inner := &failNTimesProvider{n: 10, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %v, want *ErrProviderUnavailable", err)
	}
	if inner.callCount() != 3 {
		t.Errorf("calls = %d, want 3", inner.callCount())
	}
}

func TestRetryNeverRetriesContextErrors(t *testing.T) {
	inner := &failNTimesProvider{n: 10, err: context.DeadlineExceeded}
	p := WithRetry(inner, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want DeadlineExceeded", err)
	}
	if inner.callCount() != 1 {
		t.Errorf("calls = %d, want 1", inner.callCount())
	}
}

func TestRetryInvalidResponseRetriedOnce(t *testing.T) {
	inner := &failNTimesProvider{n: 10, err: &ErrInvalidResponse{Err: errors.New("bad json")}}
	p := WithRetry(inner, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *ErrInvalidResponse", err)
	}
	if inner.callCount() != 2 {
		t.Errorf("calls = %d, want 2 (original plus one retry)", inner.callCount())
	}
}

func TestRetryMaxTokensNotRetried(t *testing.T) {
	inner := &failNTimesProvider{n: 10, err: &ErrMaxTokensExceeded{}}
	p := WithRetry(inner, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("error = %v, want *ErrMaxTokensExceeded", err)
	}
	if inner.callCount() != 1 {
		t.Errorf("calls = %d, want 1", inner.callCount())
	}
}

func TestRetryHonorsCancelledContext(t *testing.T) {
	inner := &failNTimesProvider{n: 10, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Hour,
		MaxWait:     time.Hour,
		Multiplier:  2.0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want Canceled", err)
	}
}
