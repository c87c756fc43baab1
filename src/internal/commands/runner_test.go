package commands

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRestartableRunner_CleanExit(t *testing.T) {
	calls := 0
	r := NewRestartableRunner(RunnerConfig{Name: "test"}, func(ctx context.Context) error {
		calls++
		return nil
	})

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Expected nil, got %v", err)
	}
	if calls != 1 || r.RestartCount() != 0 {
		t.Errorf("Expected one call and no restarts, got %d calls, %d restarts", calls, r.RestartCount())
	}
}

func TestRestartableRunner_GivesUp(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	r := NewRestartableRunner(RunnerConfig{
		Name:           "test",
		MaxRestarts:    3,
		RestartBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
	}, func(ctx context.Context) error {
		calls++
		return boom
	})

	err := r.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Expected last error to be returned, got %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
	if !errors.Is(r.LastError(), boom) {
		t.Errorf("Expected LastError to be boom, got %v", r.LastError())
	}
}

func TestRestartableRunner_RecoversPanic(t *testing.T) {
	calls := 0
	r := NewRestartableRunner(RunnerConfig{
		Name:           "test",
		RestartBackoff: time.Millisecond,
	}, func(ctx context.Context) error {
		calls++
		if calls == 1 {
			panic("first run fails")
		}
		return nil
	})

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Expected recovery, got %v", err)
	}
	if r.RestartCount() != 1 {
		t.Errorf("Expected 1 restart, got %d", r.RestartCount())
	}
}

func TestRestartableRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRestartableRunner(RunnerConfig{Name: "test"}, func(ctx context.Context) error {
		cancel()
		<-ctx.Done()
		return ctx.Err()
	})

	if err := r.Run(ctx); err != nil {
		t.Errorf("Expected nil after cancellation, got %v", err)
	}
	if r.RestartCount() != 0 {
		t.Errorf("Expected no restarts after cancellation, got %d", r.RestartCount())
	}
}
