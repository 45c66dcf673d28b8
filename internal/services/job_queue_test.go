package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobQueueService(t *testing.T) {
	t.Run("Should run every enqueued job before shutdown returns", func(t *testing.T) {
		queue := NewJobQueueService(context.Background(), 10, 2)

		var done int32
		for i := 0; i < 10; i++ {
			require.NoError(t, queue.Enqueue(func(ctx context.Context) {
				atomic.AddInt32(&done, 1)
			}))
		}

		queue.Shutdown()
		queue.Shutdown()

		assert.Equal(t, int32(10), atomic.LoadInt32(&done))
		assert.ErrorIs(t, queue.Enqueue(func(ctx context.Context) {}), ErrJobQueueClosed)
	})

	t.Run("Should refuse jobs when full", func(t *testing.T) {
		queue := NewJobQueueService(context.Background(), 1, 1)
		defer queue.Shutdown()

		started := make(chan struct{})
		release := make(chan struct{})

		require.NoError(t, queue.Enqueue(func(ctx context.Context) {
			close(started)
			<-release
		}))
		<-started

		require.NoError(t, queue.Enqueue(func(ctx context.Context) {}))
		assert.ErrorIs(t, queue.Enqueue(func(ctx context.Context) {}), ErrJobQueueIsFull)

		close(release)
	})

	t.Run("Should hold jobs while paused", func(t *testing.T) {
		queue := NewJobQueueService(context.Background(), 1, 1)
		defer queue.Shutdown()

		ran := make(chan struct{})

		queue.PauseAndResume(50 * time.Millisecond)
		require.NoError(t, queue.Enqueue(func(ctx context.Context) { close(ran) }))

		select {
		case <-ran:
			t.Fatal("job ran while the queue was paused")
		case <-time.After(10 * time.Millisecond):
		}

		select {
		case <-ran:
		case <-time.After(time.Second):
			t.Fatal("job did not run after resume")
		}
	})

	t.Run("Should run scheduled jobs after the delay", func(t *testing.T) {
		queue := NewJobQueueService(context.Background(), 1, 1)
		defer queue.Shutdown()

		ran := make(chan struct{})
		queue.ScheduleJob(func(ctx context.Context) { close(ran) }, 5*time.Millisecond)

		select {
		case <-ran:
		case <-time.After(time.Second):
			t.Fatal("scheduled job did not run")
		}
	})
}
