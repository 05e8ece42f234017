package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry_NoRetriesRunsOnce(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), RetryConfig{}, func() (int, error) {
		calls++
		return 0, errUpstream
	})
	if !errors.Is(err, errUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestRetry_RetriesTransientFailures(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), RetryConfig{
		MaxRetries:      2,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
	}, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errUpstream
		}
		return "ok", nil
	})
	if err != nil || got != "ok" {
		t.Fatalf("expected success on third attempt, got %q err=%v", got, err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRetry_StopsOnPermanentError(t *testing.T) {
	calls := 0
	errBadRequest := errors.New("bad request")
	_, err := Retry(context.Background(), RetryConfig{
		MaxRetries:      5,
		InitialInterval: time.Millisecond,
	}, func() (int, error) {
		calls++
		return 0, Permanent(errBadRequest)
	})
	if !errors.Is(err, errBadRequest) {
		t.Fatalf("expected bad request error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single call, got %d", calls)
	}
}

func TestNormalizeRetryConfig(t *testing.T) {
	cfg := NormalizeRetryConfig(RetryConfig{MaxRetries: -3})
	if cfg.MaxRetries != 0 || cfg.InitialInterval <= 0 || cfg.MaxInterval < cfg.InitialInterval {
		t.Fatalf("unexpected normalized config: %+v", cfg)
	}
}
