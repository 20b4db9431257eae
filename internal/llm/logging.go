package llm

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LoggingProvider is a decorator that writes one line per LLM call to an
// injected writer. Nothing is persisted; the log is operational visibility
// for an otherwise opaque external call.
type LoggingProvider struct {
	inner Provider

	mu sync.Mutex
	w  io.Writer
}

// WithLogging wraps a Provider with request logging. A nil writer disables
// logging.
func WithLogging(p Provider, w io.Writer) Provider {
	if w == nil {
		return p
	}
	return &LoggingProvider{inner: p, w: w}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	id := uuid.NewString()
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)
	elapsed := time.Since(start)

	purpose := PurposeFrom(ctx)

	if err != nil {
		l.logf("llm id=%s purpose=%s model=%s elapsed=%s error=%q\n",
			id, purpose, l.inner.ModelID(), elapsed.Round(time.Millisecond), err)
		return nil, err
	}

	cost := EstimateCost(resp.Model, resp.Usage)
	l.logf("llm id=%s purpose=%s model=%s tokens_in=%d tokens_out=%d elapsed=%s cost_usd=%.6f\n",
		id, purpose, resp.Model, resp.Usage.InputTokens, resp.Usage.OutputTokens,
		elapsed.Round(time.Millisecond), cost)

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format, args...)
}
