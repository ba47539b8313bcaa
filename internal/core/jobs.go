package core

import (
	"context"
)

//go:generate mockgen -destination=../../mocks/mock_job_dispatcher.go -package=mocks . JobDispatcher

// JobDispatcher accepts review events and queues them for asynchronous processing.
// It decouples the webhook handler from job execution.
type JobDispatcher interface {
	// Dispatch queues the event. It returns an error when the event cannot be
	// queued, for example when the queue is full.
	Dispatch(ctx context.Context, event *ReviewEvent) error
	// Stop drains the queue and waits for in-flight jobs.
	Stop()
}

// Job is a single unit of work triggered by a ReviewEvent.
type Job interface {
	Run(ctx context.Context, event *ReviewEvent) error
}
