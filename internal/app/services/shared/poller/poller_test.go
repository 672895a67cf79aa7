package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPollerAppliesOnStartAndTick(t *testing.T) {
	var applied atomic.Int32
	fetch := func(ctx context.Context) func() {
		return func() { applied.Add(1) }
	}

	p := New(20*time.Millisecond, fetch, zap.NewNop())
	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool {
		return applied.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestPollerRefreshTriggersImmediatePoll(t *testing.T) {
	var applied atomic.Int32
	fetch := func(ctx context.Context) func() {
		return func() { applied.Add(1) }
	}

	p := New(time.Hour, fetch, zap.NewNop())
	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool {
		return applied.Load() == 1
	}, time.Second, 5*time.Millisecond)

	p.Refresh()
	assert.Eventually(t, func() bool {
		return applied.Load() == 2
	}, time.Second, 5*time.Millisecond)
}

func TestPollerDiscardsResultAfterStop(t *testing.T) {
	var applied atomic.Int32
	fetchStarted := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) func() {
		select {
		case fetchStarted <- struct{}{}:
		default:
		}
		<-release
		return func() { applied.Add(1) }
	}

	p := New(time.Hour, fetch, zap.NewNop())
	p.Start(context.Background())

	<-fetchStarted
	go p.Stop()
	time.Sleep(10 * time.Millisecond)
	close(release)

	assert.Never(t, func() bool {
		return applied.Load() > 0
	}, 100*time.Millisecond, 10*time.Millisecond)
}

func TestPollerNilApplyIsSkipped(t *testing.T) {
	fetch := func(ctx context.Context) func() { return nil }

	p := New(10*time.Millisecond, fetch, zap.NewNop())
	p.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	p.Stop()
}
