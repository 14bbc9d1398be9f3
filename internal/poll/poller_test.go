package poll

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPollerImmediateFetch(t *testing.T) {
	var calls atomic.Int32
	p := New(time.Hour, func(ctx context.Context) {
		calls.Add(1)
	})
	p.Start()
	defer p.Stop()

	deadline := time.After(time.Second)
	for calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("no immediate fetch within 1s")
		case <-time.After(time.Millisecond):
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want exactly 1 before the first tick", got)
	}
}

func TestPollerPeriodicFetch(t *testing.T) {
	var calls atomic.Int32
	p := New(10*time.Millisecond, func(ctx context.Context) {
		calls.Add(1)
	})
	p.Start()
	defer p.Stop()

	deadline := time.After(time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d fetches within 1s", calls.Load())
		case <-time.After(time.Millisecond):
		}
	}
}

func TestPollerStopPreventsFurtherFetches(t *testing.T) {
	var calls atomic.Int32
	p := New(5*time.Millisecond, func(ctx context.Context) {
		calls.Add(1)
	})
	p.Start()

	time.Sleep(20 * time.Millisecond)
	p.Stop()
	after := calls.Load()

	time.Sleep(30 * time.Millisecond)
	if got := calls.Load(); got != after {
		t.Errorf("fetch fired after Stop: %d -> %d", after, got)
	}
}

func TestPollerStopCancelsFetchContext(t *testing.T) {
	ctxCh := make(chan context.Context, 1)
	p := New(time.Hour, func(ctx context.Context) {
		ctxCh <- ctx
	})
	p.Start()

	var ctx context.Context
	select {
	case ctx = <-ctxCh:
	case <-time.After(time.Second):
		t.Fatal("fetch never ran")
	}

	p.Stop()
	if ctx.Err() == nil {
		t.Error("fetch context should be cancelled after Stop")
	}
}

func TestPollerStopWithoutStart(t *testing.T) {
	done := make(chan struct{})
	p := New(time.Hour, func(ctx context.Context) {})
	go func() {
		p.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop without Start should not block")
	}
}

func TestPollerStopIdempotent(t *testing.T) {
	p := New(time.Hour, func(ctx context.Context) {})
	p.Start()
	p.Stop()
	p.Stop()
}
