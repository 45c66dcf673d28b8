package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecurringTask(t *testing.T) {
	t.Run("Should run immediately and on every tick", func(t *testing.T) {
		var runs int32
		ticked := make(chan struct{}, 10)

		task := NewRecurringTask("test", 10*time.Millisecond, func(ctx context.Context) {
			atomic.AddInt32(&runs, 1)
			select {
			case ticked <- struct{}{}:
			default:
			}
		})

		task.Start(context.Background())
		task.Start(context.Background())

		for i := 0; i < 3; i++ {
			select {
			case <-ticked:
			case <-time.After(time.Second):
				t.Fatal("task did not run")
			}
		}

		task.Stop()
		stopped := atomic.LoadInt32(&runs)

		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, stopped, atomic.LoadInt32(&runs))
	})

	t.Run("Should pass a context that outlives Stop", func(t *testing.T) {
		ctxErr := make(chan error, 1)

		task := NewRecurringTask("test", time.Hour, func(ctx context.Context) {
			ctxErr <- ctx.Err()
		})

		ctx, cancel := context.WithCancel(context.Background())
		task.Start(ctx)
		assert.NoError(t, <-ctxErr)

		cancel()
		task.Stop()
	})

	t.Run("Should allow Stop without Start", func(t *testing.T) {
		task := NewRecurringTask("test", time.Hour, func(context.Context) {
			t.Error("task must not run")
		})

		task.Stop()
		task.Start(context.Background())
		task.Stop()
	})
}
