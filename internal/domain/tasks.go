package domain

import "context"

// TaskFunc is a unit of deferred work. It must be safe to run more than once;
// delivery is at least once.
type TaskFunc func(ctx context.Context) error

// TaskQueue dispatches deferred work out-of-band from the request that
// enqueued it. Enqueue never blocks on task execution.
type TaskQueue interface {
	Enqueue(name string, task TaskFunc) error
}
