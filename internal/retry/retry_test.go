// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// recorder is a WaitFunc that records delays instead of sleeping.
type recorder struct {
	delays []time.Duration
}

func (r *recorder) wait(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return nil
}

func TestDo_SucceedsFirstTry(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	calls := 0
	v, err := Do(context.Background(), Policy{MaxRetries: 3, Backoff: time.Second, Wait: rec.wait},
		func(context.Context) (string, error) {
			calls++
			return "ok", nil
		})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if v != "ok" || calls != 1 {
		t.Errorf("v=%q calls=%d, want ok/1", v, calls)
	}
	if len(rec.delays) != 0 {
		t.Errorf("unexpected waits: %v", rec.delays)
	}
}

func TestDo_LinearBackoffAndAttemptCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		maxRetries   int
		wantAttempts int
		wantDelays   []time.Duration
	}{
		{maxRetries: 0, wantAttempts: 1, wantDelays: nil},
		{maxRetries: 1, wantAttempts: 2, wantDelays: []time.Duration{2 * time.Second}},
		{maxRetries: 3, wantAttempts: 4, wantDelays: []time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second}},
		{maxRetries: -2, wantAttempts: 1, wantDelays: nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("max_retries=%d", tt.maxRetries), func(t *testing.T) {
			t.Parallel()
			rec := &recorder{}
			sentinel := errors.New("provider down")
			attempts := 0
			_, err := Do(context.Background(),
				Policy{MaxRetries: tt.maxRetries, Backoff: 2 * time.Second, Name: "test", Wait: rec.wait},
				func(context.Context) (int, error) {
					attempts++
					return 0, fmt.Errorf("attempt %d: %w", attempts, sentinel)
				})
			if attempts != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", attempts, tt.wantAttempts)
			}
			if len(rec.delays) != len(tt.wantDelays) {
				t.Fatalf("delays = %v, want %v", rec.delays, tt.wantDelays)
			}
			for i := range rec.delays {
				if rec.delays[i] != tt.wantDelays[i] {
					t.Errorf("delay[%d] = %v, want %v", i, rec.delays[i], tt.wantDelays[i])
				}
			}
			want := fmt.Sprintf("attempt %d: provider down", tt.wantAttempts)
			if err == nil || err.Error() != want {
				t.Errorf("err = %v, want %q", err, want)
			}
		})
	}
}

func TestDo_FinalErrorUnchanged(t *testing.T) {
	t.Parallel()
	final := errors.New("final")
	attempts := 0
	_, err := Do(context.Background(), Policy{MaxRetries: 2, Wait: (&recorder{}).wait},
		func(context.Context) (struct{}, error) {
			attempts++
			if attempts == 3 {
				return struct{}{}, final
			}
			return struct{}{}, errors.New("transient")
		})
	if err != final {
		t.Errorf("err = %v, want the identical final error value", err)
	}
}

func TestDo_ExhaustedReturnsZeroValue(t *testing.T) {
	t.Parallel()
	v, err := Do(context.Background(), Policy{MaxRetries: 1, Wait: (&recorder{}).wait},
		func(context.Context) ([]string, error) {
			return []string{"partial"}, errors.New("boom")
		})
	if err == nil {
		t.Fatal("expected error")
	}
	if v != nil {
		t.Errorf("v = %v, want nil slice after exhausted retries", v)
	}
}

func TestDo_RecoversAfterFailures(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	attempts := 0
	v, err := Do(context.Background(), Policy{MaxRetries: 3, Backoff: time.Millisecond, Wait: rec.wait},
		func(context.Context) (int, error) {
			attempts++
			if attempts < 3 {
				return 0, errors.New("flaky")
			}
			return 42, nil
		})
	if err != nil || v != 42 {
		t.Fatalf("Do = %d, %v; want 42, nil", v, err)
	}
	if len(rec.delays) != 2 || rec.delays[1] != 2*time.Millisecond {
		t.Errorf("delays = %v", rec.delays)
	}
}

func TestDo_ContextCancelledDuringWait(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	opErr := errors.New("boom")
	attempts := 0

	start := time.Now()
	_, err := Do(ctx, Policy{MaxRetries: 5, Backoff: time.Hour},
		func(context.Context) (int, error) {
			attempts++
			cancel()
			return 0, opErr
		})
	if time.Since(start) > 5*time.Second {
		t.Fatal("Do did not return promptly after cancellation")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
	if !errors.Is(err, opErr) || !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want both op error and context.Canceled", err)
	}
}

func TestSleep(t *testing.T) {
	t.Parallel()
	if err := Sleep(context.Background(), time.Millisecond); err != nil {
		t.Errorf("Sleep: %v", err)
	}
	if err := Sleep(context.Background(), 0); err != nil {
		t.Errorf("Sleep(0): %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Sleep on cancelled ctx = %v", err)
	}
}
