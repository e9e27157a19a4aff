package tasks

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"conferencecentral/internal/domain"
)

// ErrQueueClosed is returned by Enqueue after Shutdown has started.
var ErrQueueClosed = errors.New("task queue is closed")

const retryBaseDelay = 100 * time.Millisecond

type job struct {
	name string
	task domain.TaskFunc
}

// InProcessQueue runs deferred tasks on a fixed pool of goroutines inside the
// server process. Failed tasks are retried with backoff up to the configured
// number of attempts, then dropped with a log entry.
type InProcessQueue struct {
	logger  *slog.Logger
	jobs    chan job
	retries int

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewInProcessQueue starts workers goroutines draining the queue. retries is
// the number of attempts per task (minimum 1).
func NewInProcessQueue(workers, retries int, logger *slog.Logger) *InProcessQueue {
	if workers < 1 {
		workers = 1
	}
	if retries < 1 {
		retries = 1
	}
	q := &InProcessQueue{
		logger:  logger,
		jobs:    make(chan job, 64),
		retries: retries,
	}
	q.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go q.worker()
	}
	return q
}

// Enqueue submits a task for asynchronous execution. It blocks only while the
// buffer is full, never on task execution.
func (q *InProcessQueue) Enqueue(name string, task domain.TaskFunc) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.jobs <- job{name: name, task: task}
	q.mu.Unlock()
	return nil
}

// Shutdown stops accepting tasks and waits for queued tasks to finish, or for
// ctx to be done, whichever comes first.
func (q *InProcessQueue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *InProcessQueue) worker() {
	defer q.wg.Done()
	for j := range q.jobs {
		q.run(j)
	}
}

func (q *InProcessQueue) run(j job) {
	ctx := context.Background()
	var err error
	for attempt := 1; attempt <= q.retries; attempt++ {
		if err = j.task(ctx); err == nil {
			return
		}
		q.logger.Warn("task attempt failed", "task", j.name, "attempt", attempt, "err", err)
		if attempt < q.retries {
			time.Sleep(retryBaseDelay * time.Duration(attempt))
		}
	}
	q.logger.Error("task dropped after retries", "task", j.name, "attempts", q.retries, "err", err)
}
