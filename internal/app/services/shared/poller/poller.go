// Package poller runs the periodic dashboard refresh. Fetches happen off
// the apply path: a fetch returns an apply closure, and applies from a
// generation older than the latest Stop are discarded so a stale response
// never overwrites fresher state.
package poller

import (
	"context"
	"healthapp-admin/internal/pkg/constvars"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Fetch loads remote state and returns the closure that applies it, or nil
// when there is nothing to apply.
type Fetch func(ctx context.Context) func()

type Poller struct {
	Interval time.Duration
	Log      *zap.Logger

	fetch      Fetch
	generation atomic.Int64

	mu      sync.Mutex
	cancel  context.CancelFunc
	refresh chan struct{}
	done    chan struct{}
}

func New(interval time.Duration, fetch Fetch, logger *zap.Logger) *Poller {
	return &Poller{
		Interval: interval,
		Log:      logger,
		fetch:    fetch,
		refresh:  make(chan struct{}, 1),
	}
}

func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.run(runCtx, p.done)
}

func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	p.generation.Add(1)
	if cancel != nil {
		cancel()
		<-done
	}
}

// Refresh requests an immediate poll without waiting for the next tick.
func (p *Poller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		case <-p.refresh:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	generation := p.generation.Load()
	apply := p.fetch(ctx)
	if apply == nil {
		return
	}
	if p.generation.Load() != generation {
		p.Log.Debug("poller discarding stale poll result",
			zap.Int64(constvars.LoggingGenerationKey, generation),
		)
		return
	}
	apply()
}
