package main

import (
	"context"
	"sync"

	"github.com/sevigo/pr-warden/internal/core"
)

// recordingFactory hands out a single recordingHost around the real client.
type recordingFactory struct {
	inner core.HostClientFactory
	host  *recordingHost
}

func newRecordingFactory(inner core.HostClientFactory) *recordingFactory {
	return &recordingFactory{inner: inner, host: &recordingHost{}}
}

func (f *recordingFactory) ForInstallation(ctx context.Context, id int64) (core.HostClient, error) {
	client, err := f.inner.ForInstallation(ctx, id)
	if err != nil {
		return nil, err
	}
	f.host.setInner(client)
	return f.host, nil
}

// recordingHost reads from the real host and keeps every write in memory.
type recordingHost struct {
	mu       sync.Mutex
	inner    core.HostClient
	comments []string
	reviews  []core.ReviewDecision
}

func (h *recordingHost) setInner(inner core.HostClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inner = inner
}

func (h *recordingHost) FetchChangedFiles(ctx context.Context, owner, repo string, number int) ([]core.ChangedFile, error) {
	h.mu.Lock()
	inner := h.inner
	h.mu.Unlock()
	return inner.FetchChangedFiles(ctx, owner, repo, number)
}

func (h *recordingHost) PostIssueComment(_ context.Context, _, _ string, _ int, body string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.comments = append(h.comments, body)
	return nil
}

func (h *recordingHost) SubmitReview(_ context.Context, _, _ string, _ int, _ string, decision core.ReviewDecision) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reviews = append(h.reviews, decision)
	return nil
}

func (h *recordingHost) recorded() ([]string, []core.ReviewDecision) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.comments...), append([]core.ReviewDecision(nil), h.reviews...)
}
