package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/review"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingJob struct {
	mu      sync.Mutex
	seen    []int
	release chan struct{}
	running atomic.Int32
}

func (j *recordingJob) Run(_ context.Context, event *core.ReviewEvent) error {
	j.running.Add(1)
	if j.release != nil {
		<-j.release
	}
	j.mu.Lock()
	j.seen = append(j.seen, event.PRNumber)
	j.mu.Unlock()
	return nil
}

func (j *recordingJob) processed() []int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]int(nil), j.seen...)
}

func TestDispatcher_ProcessesQueuedEvents(t *testing.T) {
	job := &recordingJob{}
	d := NewDispatcher(job, 3, 10, discardLogger())

	for i := 1; i <= 5; i++ {
		require.NoError(t, d.Dispatch(context.Background(), &core.ReviewEvent{PRNumber: i}))
	}
	d.Stop()

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, job.processed())
}

func TestDispatcher_RejectsWhenFull(t *testing.T) {
	job := &recordingJob{release: make(chan struct{})}
	d := NewDispatcher(job, 1, 1, discardLogger())

	require.NoError(t, d.Dispatch(context.Background(), &core.ReviewEvent{PRNumber: 1}))
	require.Eventually(t, func() bool { return job.running.Load() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, d.Dispatch(context.Background(), &core.ReviewEvent{PRNumber: 2}))
	err := d.Dispatch(context.Background(), &core.ReviewEvent{PRNumber: 3})
	assert.ErrorIs(t, err, ErrQueueFull)

	close(job.release)
	d.Stop()
	assert.ElementsMatch(t, []int{1, 2}, job.processed())
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	d := NewDispatcher(&recordingJob{}, 0, 0, discardLogger())
	d.Stop()
	d.Stop()

	err := d.Dispatch(context.Background(), &core.ReviewEvent{PRNumber: 1})
	assert.ErrorIs(t, err, ErrDispatcherStopped)
}

type stubHandler struct {
	result review.Result
	calls  int
}

func (s *stubHandler) HandleEvent(context.Context, *core.ReviewEvent) review.Result {
	s.calls++
	return s.result
}

func TestReviewJob_Run(t *testing.T) {
	t.Run("returns the recorded error", func(t *testing.T) {
		failure := errors.New("host unavailable")
		handler := &stubHandler{result: review.Result{State: review.StateAborted, Err: failure}}
		job := NewReviewJob(handler, discardLogger())

		err := job.Run(context.Background(), &core.ReviewEvent{PRNumber: 1})
		assert.ErrorIs(t, err, failure)
		assert.Equal(t, 1, handler.calls)
	})

	t.Run("successful run", func(t *testing.T) {
		decision := core.ApproveDecision("ok")
		handler := &stubHandler{result: review.Result{State: review.StateDone, Decision: &decision}}
		job := NewReviewJob(handler, discardLogger())

		assert.NoError(t, job.Run(context.Background(), &core.ReviewEvent{PRNumber: 1}))
	})

	t.Run("nil dependencies panic", func(t *testing.T) {
		assert.Panics(t, func() { NewReviewJob(nil, discardLogger()) })
		assert.Panics(t, func() { NewReviewJob(&stubHandler{}, nil) })
	})
}
