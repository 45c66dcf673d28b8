package services

import (
	"context"
	"sync"
	"time"

	"github.com/Renal37/order-dashboard/internal/logger"
	"go.uber.org/zap"
)

// RecurringTask calls run once on Start and then every interval until Stop.
// Each call gets a context that Stop does not cancel, so a request already sent
// runs to completion.
type RecurringTask struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context)

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}

	stopOnce sync.Once
}

func NewRecurringTask(name string, interval time.Duration, run func(ctx context.Context)) *RecurringTask {
	return &RecurringTask{
		name:     name,
		interval: interval,
		run:      run,
		done:     make(chan struct{}),
	}
}

// Start launches the loop. Calling it again, or after Stop, does nothing.
func (t *RecurringTask) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return
	}
	t.started = true

	loopCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	go t.loop(loopCtx)
}

func (t *RecurringTask) loop(ctx context.Context) {
	defer close(t.done)

	logger.Log.Debug("recurring task started", zap.String("task", t.name), zap.Duration("interval", t.interval))

	t.run(context.WithoutCancel(ctx))

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("recurring task stopped", zap.String("task", t.name))
			return
		case <-ticker.C:
			t.run(context.WithoutCancel(ctx))
		}
	}
}

// Stop cancels the loop exactly once and waits for it to exit.
func (t *RecurringTask) Stop() {
	t.stopOnce.Do(func() {
		t.mu.Lock()
		started := t.started
		t.started = true
		cancel := t.cancel
		t.mu.Unlock()

		if !started {
			return
		}

		cancel()
		<-t.done
	})
}
