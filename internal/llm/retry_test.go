package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

var gradeJSON = json.RawMessage(`{"acceptable":true,"feedback":""}`)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func gradeRequest() Request {
	return Request{
		System:   "You are a language tutor.",
		Messages: []Message{{Role: RoleUser, Content: "Grade: haus -> house"}},
	}
}

func TestRetry_FirstAttemptSucceeds(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: gradeJSON})
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), gradeRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(gradeJSON) {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientOutageThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: gradeJSON},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), gradeRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(gradeJSON) {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	outage := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	mock := NewMockProvider(outage, outage, outage)
	p := WithRetry(mock, retryConfig())

	if _, err := p.Generate(context.Background(), gradeRequest()); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"acceptable`)}},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), gradeRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_SchemaViolationRetriedOnce(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{
		Content: json.RawMessage(`{"verdict":"yes"}`),
		Err:     errors.New("missing acceptable"),
	}}
	mock := NewMockProvider(bad, bad,
		MockResponse{Content: gradeJSON}, // Never reached.
	)
	p := WithRetry(mock, retryConfig())

	if _, err := p.Generate(context.Background(), gradeRequest()); err == nil {
		t.Fatal("expected error")
	}
	// One re-ask after the first violation, then stop.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_CanceledContextStops(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: gradeJSON},
	)
	p := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, gradeRequest()); err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_RateLimitWaitsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: gradeJSON},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), gradeRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(gradeJSON) {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), retryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
