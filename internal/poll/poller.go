// Package poll provides a cancellable periodic fetcher. A poller is scoped
// to one (resource, identifier) pair; tearing down the owning view must stop
// it synchronously so no fetch fires after cancellation.
package poll

import (
	"context"
	"sync"
	"time"
)

// Poller invokes a fetch function immediately on Start and then once per
// interval until stopped.
type Poller struct {
	interval time.Duration
	fetch    func(ctx context.Context)

	ctx    context.Context
	cancel context.CancelFunc

	startOnce sync.Once
	stopOnce  sync.Once
	doneCh    chan struct{}
}

// New creates a poller. The fetch context is cancelled when the poller is
// stopped, so in-flight requests are abandoned as well.
func New(interval time.Duration, fetch func(ctx context.Context)) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Poller{
		interval: interval,
		fetch:    fetch,
		ctx:      ctx,
		cancel:   cancel,
		doneCh:   make(chan struct{}),
	}
}

// Start launches the polling loop. Calling Start more than once is a no-op.
func (p *Poller) Start() {
	p.startOnce.Do(func() {
		go p.run()
	})
}

func (p *Poller) run() {
	defer close(p.doneCh)

	p.fetch(p.ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			// Re-check cancellation: a tick may already be pending
			// when Stop is called.
			if p.ctx.Err() != nil {
				return
			}
			p.fetch(p.ctx)
		}
	}
}

// Stop cancels the poller and waits for the loop to exit. After Stop
// returns, no further fetch will fire.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.cancel()
		// Only wait if the loop was ever started.
		p.startOnce.Do(func() { close(p.doneCh) })
		<-p.doneCh
	})
}
