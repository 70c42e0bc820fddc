package retry

import (
	"context"
	"errors"
	"testing"
)

func TestRetry_SuccessOnFirstTry(t *testing.T) {
	counter := 0
	err := NewDefaultRetrier().Do(context.Background(), func() error {
		counter++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != 1 {
		t.Errorf("expected 1 attempt, got %d", counter)
	}
}

func TestRetry_SuccessAfterRetries(t *testing.T) {
	config := NewDefaultConfig()
	config.InitialDelay = 0
	config.Jitter = 0
	retrier := NewRetrier(config)

	counter := 0
	err := retrier.Do(context.Background(), func() error {
		counter++
		if counter < 3 {
			return errors.New("temporary error")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != 3 {
		t.Errorf("expected 3 attempts, got %d", counter)
	}
}

func TestRetry_MaxRetriesExceeded(t *testing.T) {
	config := NewDefaultConfig()
	config.MaxRetries = 2
	config.InitialDelay = 0
	config.Jitter = 0
	retrier := NewRetrier(config)

	expectedErr := errors.New("permanent error")
	counter := 0
	err := retrier.Do(context.Background(), func() error {
		counter++
		return expectedErr
	})
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected %v, got %v", expectedErr, err)
	}
	if counter != 3 {
		t.Errorf("expected 3 attempts, got %d", counter)
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	err := NewDefaultRetrier().Do(ctx, func() error {
		cancel()
		return errors.New("operation error after cancel")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
