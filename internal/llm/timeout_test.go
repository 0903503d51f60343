package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// slowProvider blocks until the context is cancelled or the delay elapses.
type slowProvider struct {
	delay time.Duration
}

func (s *slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.delay):
		return &Response{Content: json.RawMessage(`{"ok":true}`), Model: "slow"}, nil
	}
}

func (s *slowProvider) ModelID() string { return "slow" }

func TestTimeout_ExpiryIsProviderUnavailable(t *testing.T) {
	p := WithTimeout(&slowProvider{delay: time.Second}, 5*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped DeadlineExceeded, got: %v", err)
	}
}

func TestTimeout_FastCallPassesThrough(t *testing.T) {
	p := WithTimeout(&slowProvider{delay: 0}, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestTimeout_ZeroTimeoutUnwrapped(t *testing.T) {
	inner := NewMockProvider()
	if p := WithTimeout(inner, 0); p != inner {
		t.Fatal("non-positive timeout should return the provider unwrapped")
	}
}

func TestTimeout_CallerCancellationNotRewrapped(t *testing.T) {
	p := WithTimeout(&slowProvider{delay: time.Second}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected Canceled, got: %v", err)
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		t.Fatal("caller cancellation must not be reported as provider unavailability")
	}
}

func TestTimeout_ModelIDDelegates(t *testing.T) {
	p := WithTimeout(&slowProvider{}, time.Second)
	if p.ModelID() != "slow" {
		t.Fatalf("expected 'slow', got %q", p.ModelID())
	}
}
