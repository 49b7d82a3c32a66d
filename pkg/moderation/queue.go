package moderation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"
)

const defaultJobTimeout = 2 * time.Minute

type Job func(ctx context.Context) error

// Queue runs jobs on a fixed number of workers. Job errors and panics stop at the queue.
// Cancelling the context passed to NewQueue stops the workers and drops pending jobs.
type Queue struct {
	ctx     context.Context
	jobs    chan Job
	group   *errgroup.Group
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
}

func NewQueue(ctx context.Context, workers int, size int, logger *slog.Logger) *Queue {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if size < 0 {
		size = DefaultQueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	group, ctx := errgroup.WithContext(ctx)
	q := &Queue{
		ctx:     ctx,
		group:   group,
		jobs:    make(chan Job, size),
		logger:  logger,
		timeout: defaultJobTimeout,
	}
	for range workers {
		q.group.Go(q.work)
	}
	return q
}

func (q *Queue) work() error {
	for {
		select {
		case <-q.ctx.Done():
			return q.ctx.Err()
		case job, ok := <-q.jobs:
			if !ok {
				return nil
			}
			q.run(job)
		}
	}
}

func (q *Queue) run(job Job) {
	ctx, cancel := context.WithTimeout(q.ctx, q.timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("becbot: scan job panicked", slog.Any("panic", r))
		}
	}()
	if err := job(ctx); err != nil {
		q.logger.Warn("becbot: scan job failed", tint.Err(err))
	}
}

// Submit enqueues job without blocking. It returns false when the queue is full or closed.
func (q *Queue) Submit(job Job) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return false
	}
	select {
	case q.jobs <- job:
		return true
	default:
		return false
	}
}

// Close stops accepting jobs and waits for the queued ones. It returns the
// context error when the workers were stopped before the queue drained.
func (q *Queue) Close() error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()
	return q.group.Wait()
}
