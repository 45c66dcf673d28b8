package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Renal37/order-dashboard/internal/logger"
	"go.uber.org/zap"
)

var (
	ErrJobQueueIsFull = errors.New("job queue is full")
	ErrJobQueueClosed = errors.New("job queue is closed")
)

type Job func(ctx context.Context)

// JobQueueService runs jobs on a fixed pool of workers fed by a bounded channel.
type JobQueueService struct {
	jobs   chan Job
	resume chan struct{}
	paused int32
	wg     sync.WaitGroup

	// mu guards resume; closeMu keeps Enqueue from sending on a closed channel.
	mu      sync.Mutex
	closeMu sync.RWMutex
	closing int32
}

func NewJobQueueService(ctx context.Context, capacity, workers int) *JobQueueService {
	service := &JobQueueService{
		jobs:   make(chan Job, capacity),
		resume: make(chan struct{}),
	}
	service.start(ctx, workers)

	return service
}

func (jqs *JobQueueService) start(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		jqs.wg.Add(1)

		go func() {
			defer jqs.wg.Done()

			for {
				select {
				case job, ok := <-jqs.jobs:
					if !ok {
						return
					}

					jqs.mu.Lock()
					resume := jqs.resume
					paused := atomic.LoadInt32(&jqs.paused) == 1
					jqs.mu.Unlock()

					if paused {
						select {
						case <-resume:
						case <-ctx.Done():
							return
						}
					}

					job(ctx)
				case <-ctx.Done():
					return
				}
			}
		}()
	}
}

// Enqueue never blocks: it fails with ErrJobQueueIsFull when the buffer is full
// and with ErrJobQueueClosed after Shutdown.
func (jqs *JobQueueService) Enqueue(job Job) error {
	jqs.closeMu.RLock()
	defer jqs.closeMu.RUnlock()

	if atomic.LoadInt32(&jqs.closing) == 1 {
		return ErrJobQueueClosed
	}

	select {
	case jqs.jobs <- job:
		return nil
	default:
		return ErrJobQueueIsFull
	}
}

func (jqs *JobQueueService) ScheduleJob(job Job, delay time.Duration) {
	time.AfterFunc(delay, func() {
		if err := jqs.Enqueue(job); err != nil {
			logger.Log.Error("failed to schedule job", zap.Duration("delay", delay), zap.Error(err))
		}
	})
}

func (jqs *JobQueueService) Pause() {
	atomic.CompareAndSwapInt32(&jqs.paused, 0, 1)
}

func (jqs *JobQueueService) Resume() {
	if atomic.CompareAndSwapInt32(&jqs.paused, 1, 0) {
		jqs.mu.Lock()
		defer jqs.mu.Unlock()

		close(jqs.resume)
		jqs.resume = make(chan struct{})
	}
}

// PauseAndResume holds the workers for delay. Jobs keep queueing meanwhile.
func (jqs *JobQueueService) PauseAndResume(delay time.Duration) {
	jqs.Pause()
	time.AfterFunc(delay, func() {
		jqs.Resume()
	})
}

// Shutdown stops accepting jobs, lets the workers drain the queue and waits for
// them. Calls after the first are no-ops.
func (jqs *JobQueueService) Shutdown() {
	if !atomic.CompareAndSwapInt32(&jqs.closing, 0, 1) {
		return
	}

	jqs.closeMu.Lock()
	close(jqs.jobs)
	jqs.closeMu.Unlock()

	jqs.Resume()
	jqs.wg.Wait()
}
