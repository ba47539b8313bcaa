package jobs

import (
	"context"
	"log/slog"

	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/review"
)

// EventHandler runs one review cycle for an event.
type EventHandler interface {
	HandleEvent(ctx context.Context, event *core.ReviewEvent) review.Result
}

// ReviewJob adapts the review pipeline to core.Job.
type ReviewJob struct {
	pipeline EventHandler
	logger   *slog.Logger
}

// NewReviewJob creates a ReviewJob around a pipeline.
func NewReviewJob(pipeline EventHandler, logger *slog.Logger) core.Job {
	if pipeline == nil {
		panic("review pipeline cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ReviewJob{pipeline: pipeline, logger: logger}
}

// Run executes the pipeline. The returned error is the last failure the
// pipeline recorded, if any; a run can fail partially and still reach DONE.
func (j *ReviewJob) Run(ctx context.Context, event *core.ReviewEvent) error {
	res := j.pipeline.HandleEvent(ctx, event)

	attrs := []any{"state", res.State.String(), "files", res.Files, "changes", res.Changes}
	if res.Reached(review.StateRiskAssessed) {
		attrs = append(attrs, "tier", res.Tier.String())
	}
	if res.Decision != nil {
		attrs = append(attrs, "decision", res.Decision.Kind.String(), "comments", len(res.Decision.Comments))
	}
	if event != nil {
		attrs = append(attrs, "repo", event.RepoFullName, "pr", event.PRNumber)
	}
	j.logger.Info("review job finished", attrs...)

	return res.Err
}
